// Package source provides the pass-through series source block. It gives an
// externally seeded series a named place in the graph: the caller seeds the
// block's "in" port and downstream blocks wire from its "out" port.
package source

import (
	"context"

	"github.com/vk/signalgridgo/internal/block"
	"github.com/vk/signalgridgo/internal/registry"
	"github.com/vk/signalgridgo/internal/value"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the source block type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&block.Spec{
		Type:     "source",
		Category: "feed",
		Inputs:   []block.Port{{Name: "in", Kind: value.KindSeries}},
		Outputs:  []block.Port{{Name: "out", Kind: value.KindSeries}},
		Compute:  compute,
	})
}

func compute(ctx context.Context, in block.Inputs, cfg block.Config) (block.Outputs, error) {
	return block.Outputs{"out": in["in"]}, nil
}
