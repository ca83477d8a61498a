// Package vwap provides the cumulative Volume-Weighted-Average-Price block.
package vwap

import (
	"context"
	"math"

	"github.com/vk/signalgridgo/internal/block"
	"github.com/vk/signalgridgo/internal/registry"
	"github.com/vk/signalgridgo/internal/value"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the vwap block type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&block.Spec{
		Type:     "vwap",
		Category: "indicator",
		Inputs: []block.Port{
			{Name: "prices", Kind: value.KindSeries},
			{Name: "volumes", Kind: value.KindSeries},
		},
		Outputs: []block.Port{{Name: "vwap", Kind: value.KindSeries}},
		Compute: compute,
	})
}

// compute produces, at each index, the ratio of the cumulative price×volume
// sum to the cumulative volume sum up to and including that index. Where the
// cumulative volume is exactly zero the output is NaN. Mismatched lengths or
// empty input yield an empty output series.
func compute(ctx context.Context, in block.Inputs, cfg block.Config) (block.Outputs, error) {
	prices, _ := in["prices"].AsSeries()
	volumes, _ := in["volumes"].AsSeries()

	if len(prices) == 0 || len(prices) != len(volumes) {
		return block.Outputs{"vwap": value.SeriesVal([]float64{})}, nil
	}

	out := make([]float64, len(prices))
	var cumPV, cumVol float64
	for i := range prices {
		cumPV += prices[i] * volumes[i]
		cumVol += volumes[i]
		if cumVol == 0 {
			out[i] = math.NaN()
		} else {
			out[i] = cumPV / cumVol
		}
	}
	return block.Outputs{"vwap": value.SeriesVal(out)}, nil
}
