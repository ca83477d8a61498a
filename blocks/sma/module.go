// Package sma provides the simple-moving-average indicator block.
package sma

import (
	"context"
	"fmt"
	"math"

	"github.com/vk/signalgridgo/internal/block"
	"github.com/vk/signalgridgo/internal/registry"
	"github.com/vk/signalgridgo/internal/value"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the sma block type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&block.Spec{
		Type:        "sma",
		Category:    "indicator",
		Inputs:      []block.Port{{Name: "in", Kind: value.KindSeries}},
		Outputs:     []block.Port{{Name: "sma", Kind: value.KindSeries}},
		CheckConfig: checkConfig,
		Compute:     compute,
	})
}

func checkConfig(cfg block.Config) error {
	window, ok := cfg.Int("window")
	if !ok {
		return fmt.Errorf("missing numeric 'window'")
	}
	if window < 1 {
		return fmt.Errorf("'window' must be at least 1, got %d", window)
	}
	return nil
}

// compute averages a sliding window over the input. Indices before the
// window is full carry NaN.
func compute(ctx context.Context, in block.Inputs, cfg block.Config) (block.Outputs, error) {
	series, err := in["in"].AsSeries()
	if err != nil {
		return nil, fmt.Errorf("sma input must be a numeric series: %w", err)
	}
	window, _ := cfg.Int("window")

	out := make([]float64, len(series))
	var sum float64
	for i, v := range series {
		sum += v
		if i >= window {
			sum -= series[i-window]
		}
		if i < window-1 {
			out[i] = math.NaN()
		} else {
			out[i] = sum / float64(window)
		}
	}
	return block.Outputs{"sma": value.SeriesVal(out)}, nil
}
