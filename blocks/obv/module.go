// Package obv provides the On-Balance-Volume indicator block.
package obv

import (
	"context"

	"github.com/vk/signalgridgo/internal/block"
	"github.com/vk/signalgridgo/internal/registry"
	"github.com/vk/signalgridgo/internal/value"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the obv block type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&block.Spec{
		Type:     "obv",
		Category: "indicator",
		Inputs: []block.Port{
			{Name: "prices", Kind: value.KindSeries},
			{Name: "volumes", Kind: value.KindSeries},
		},
		Outputs: []block.Port{{Name: "obv", Kind: value.KindSeries}},
		Compute: compute,
	})
}

// compute produces a running sum where the first element contributes zero
// and each subsequent element adds volume on a price rise, subtracts it on a
// fall, and contributes zero when the price is unchanged. An empty or
// missing price series yields an empty output series.
func compute(ctx context.Context, in block.Inputs, cfg block.Config) (block.Outputs, error) {
	prices, _ := in["prices"].AsSeries()
	volumes, _ := in["volumes"].AsSeries()

	if len(prices) == 0 {
		return block.Outputs{"obv": value.SeriesVal([]float64{})}, nil
	}

	out := make([]float64, len(prices))
	out[0] = 0
	for i := 1; i < len(prices); i++ {
		var vol float64
		if i < len(volumes) {
			vol = volumes[i]
		}
		switch {
		case prices[i] > prices[i-1]:
			out[i] = out[i-1] + vol
		case prices[i] < prices[i-1]:
			out[i] = out[i-1] - vol
		default:
			out[i] = out[i-1]
		}
	}
	return block.Outputs{"obv": value.SeriesVal(out)}, nil
}
