package registry

import (
	"context"
	"fmt"

	"github.com/vk/signalgridgo/internal/ctxlog"
	"github.com/vk/signalgridgo/internal/graph"
)

// ValidateGraph checks that every block instance in the graph references a
// registered block type and that its configuration record passes the type's
// CheckConfig hook. Configuration is validated here, at graph-construction
// time, not inside compute calls.
func (r *Registry) ValidateGraph(ctx context.Context, g *graph.Graph) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Validating graph against registry.", "block_count", g.Len())

	for _, b := range g.Blocks() {
		spec, ok := r.Spec(b.Type)
		if !ok {
			return fmt.Errorf("block '%s' references unknown block type '%s'", b.ID, b.Type)
		}
		if spec.CheckConfig != nil {
			if err := spec.CheckConfig(b.Config); err != nil {
				return fmt.Errorf("invalid config for block '%s' (type '%s'): %w", b.ID, b.Type, err)
			}
		}
	}

	logger.Debug("Graph validation passed.")
	return nil
}
