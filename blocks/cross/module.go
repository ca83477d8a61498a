// Package cross provides the crossover detector block: true at each index
// where series "a" crosses from at-or-below to above series "b".
package cross

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

// Register registers the cross block type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&block.Spec{
		Type:     "cross",
		Category: "logic",
		Inputs: []block.Port{
			{Name: "a", Kind: value.KindSeries},
			{Name: "b", Kind: value.KindSeries},
		},
		Outputs: []block.Port{{Name: "out", Kind: value.KindBoolSeries}},
		Compute: compute,
	})
}

// compute marks index i when a[i-1] <= b[i-1] and a[i] > b[i]. Index 0 is
// always false, as is any index where either series carries NaN. The output
// length is the shorter of the two inputs.
func compute(ctx context.Context, in block.Inputs, cfg block.Config) (block.Outputs, error) {
	a, err := in["a"].AsSeries()
	if err != nil {
		return nil, fmt.Errorf("cross input 'a' must be a numeric series: %w", err)
	}
	b, err := in["b"].AsSeries()
	if err != nil {
		return nil, fmt.Errorf("cross input 'b' must be a numeric series: %w", err)
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]bool, n)
	for i := 1; i < n; i++ {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) || math.IsNaN(a[i-1]) || math.IsNaN(b[i-1]) {
			continue
		}
		out[i] = a[i-1] <= b[i-1] && a[i] > b[i]
	}
	return block.Outputs{"out": value.BoolSeriesVal(out)}, nil
}
