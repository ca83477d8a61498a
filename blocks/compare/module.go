// Package compare provides the threshold-compare block: it turns a numeric
// series into a boolean signal series against a configured threshold.
package compare

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

// Register registers the compare block type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&block.Spec{
		Type:        "compare",
		Category:    "logic",
		Inputs:      []block.Port{{Name: "in", Kind: value.KindSeries}},
		Outputs:     []block.Port{{Name: "out", Kind: value.KindBoolSeries}},
		CheckConfig: checkConfig,
		Compute:     compute,
	})
}

func checkConfig(cfg block.Config) error {
	op, ok := cfg.String("operator")
	if !ok {
		return fmt.Errorf("missing 'operator'")
	}
	switch op {
	case "gt", "greater-than", "lt", "less-than":
	default:
		return fmt.Errorf("unknown operator %q: want 'gt' or 'lt'", op)
	}
	if _, ok := cfg.Float("threshold"); !ok {
		return fmt.Errorf("missing numeric 'threshold'")
	}
	return nil
}

// compute evaluates each element against the threshold. A NaN element always
// evaluates to false regardless of operator. A non-series input is rejected.
func compute(ctx context.Context, in block.Inputs, cfg block.Config) (block.Outputs, error) {
	series, err := in["in"].AsSeries()
	if err != nil {
		return nil, fmt.Errorf("compare input must be a numeric series: %w", err)
	}
	op, _ := cfg.String("operator")
	threshold, _ := cfg.Float("threshold")

	out := make([]bool, len(series))
	for i, v := range series {
		if math.IsNaN(v) {
			continue
		}
		switch op {
		case "gt", "greater-than":
			out[i] = v > threshold
		case "lt", "less-than":
			out[i] = v < threshold
		}
	}
	return block.Outputs{"out": value.BoolSeriesVal(out)}, nil
}
