// Package logic provides the boolean gate blocks: and, or, not. Binary
// gates combine two signal series element-wise; output length is the
// shorter of the two inputs.
package logic

import (
	"context"
	"fmt"

	"github.com/vk/signalgridgo/internal/block"
	"github.com/vk/signalgridgo/internal/registry"
	"github.com/vk/signalgridgo/internal/value"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the and/or/not gate block types with the registry.
func (m *Module) Register(r *registry.Registry) {
	binaryPorts := []block.Port{
		{Name: "a", Kind: value.KindBoolSeries},
		{Name: "b", Kind: value.KindBoolSeries},
	}
	outPort := []block.Port{{Name: "out", Kind: value.KindBoolSeries}}

	r.Register(&block.Spec{
		Type:     "and",
		Category: "logic",
		Inputs:   binaryPorts,
		Outputs:  outPort,
		Compute: func(ctx context.Context, in block.Inputs, cfg block.Config) (block.Outputs, error) {
			return combine(in, func(a, b bool) bool { return a && b })
		},
	})
	r.Register(&block.Spec{
		Type:     "or",
		Category: "logic",
		Inputs:   binaryPorts,
		Outputs:  outPort,
		Compute: func(ctx context.Context, in block.Inputs, cfg block.Config) (block.Outputs, error) {
			return combine(in, func(a, b bool) bool { return a || b })
		},
	})
	r.Register(&block.Spec{
		Type:     "not",
		Category: "logic",
		Inputs:   []block.Port{{Name: "in", Kind: value.KindBoolSeries}},
		Outputs:  outPort,
		Compute:  computeNot,
	})
}

func combine(in block.Inputs, op func(a, b bool) bool) (block.Outputs, error) {
	a, err := in["a"].AsBoolSeries()
	if err != nil {
		return nil, fmt.Errorf("gate input 'a' must be a boolean series: %w", err)
	}
	b, err := in["b"].AsBoolSeries()
	if err != nil {
		return nil, fmt.Errorf("gate input 'b' must be a boolean series: %w", err)
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = op(a[i], b[i])
	}
	return block.Outputs{"out": value.BoolSeriesVal(out)}, nil
}

func computeNot(ctx context.Context, in block.Inputs, cfg block.Config) (block.Outputs, error) {
	s, err := in["in"].AsBoolSeries()
	if err != nil {
		return nil, fmt.Errorf("not input must be a boolean series: %w", err)
	}
	out := make([]bool, len(s))
	for i, v := range s {
		out[i] = !v
	}
	return block.Outputs{"out": value.BoolSeriesVal(out)}, nil
}
