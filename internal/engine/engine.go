// Package engine resolves a block graph by fixed-point iteration: repeated
// sequential passes over the blocks in declared order, executing each block
// once as soon as all of its input ports are resolvable, until a full pass
// makes no progress. There is no upfront topological sort and the caller
// never specifies an execution order.
package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/vk/signalgridgo/internal/ctxlog"
	"github.com/vk/signalgridgo/internal/graph"
	"github.com/vk/signalgridgo/internal/registry"
	"github.com/vk/signalgridgo/internal/value"
)

// Renderer is the display-only collaborator that receives the graph after a
// successful run. It has no computational role and must not be able to fail
// the run.
type Renderer interface {
	Render(g *graph.Graph) string
}

// Engine executes graphs against a registry of block types. An Engine is
// stateless across runs; all per-run state lives in a private runState.
type Engine struct {
	registry *registry.Registry
	renderer Renderer
}

// Option configures an Engine.
type Option func(*Engine)

// WithRenderer sets the diagram collaborator invoked after each successful
// run. Without it, the post-success hand-off is skipped.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// New creates an Engine over the given registry.
func New(reg *registry.Registry, opts ...Option) *Engine {
	e := &Engine{registry: reg}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run evaluates the graph once. Seeds are initial cache entries keyed by
// "block.port"; they feed input ports that have no incoming connection (a
// wired port always takes its first connection's value instead). The context
// is the caller's opaque execution bag, forwarded verbatim to every compute
// call.
//
// On success Run returns the complete value cache: every seeded or produced
// "block.port" entry. On failure it returns exactly one of *BlockError or
// *UnresolvedError and no partial cache.
//
// Execution is single-threaded: one compute at a time, blocks visited in
// declared order within each pass. Worst case is quadratic in block count,
// which is fine for editor-authored workflows.
func (e *Engine) Run(ctx context.Context, g *graph.Graph, seeds map[string]value.Value) (map[string]value.Value, error) {
	logger := ctxlog.FromContext(ctx).With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)

	logger.Info("🚀 Starting graph run.", "blocks", g.Len(), "connections", len(g.Connections()), "seeds", len(seeds))
	state := newRunState(ctx, g, seeds)

	pass := 0
	for {
		pass++
		progressed := false

		for _, blk := range g.Blocks() {
			if state.executed[blk.ID] {
				continue
			}
			spec, ok := e.registry.Spec(blk.Type)
			if !ok {
				// Unknown type: the block can never become ready and is
				// reported by the stall check below.
				continue
			}

			inputs, ready := state.gatherInputs(blk, spec)
			if !ready {
				continue
			}

			blockLogger := logger.With("block", blk.ID, "type", blk.Type)
			blockLogger.Debug("Executing block.", "pass", pass)
			out, err := spec.Compute(ctx, inputs, blk.Config)
			if err != nil {
				blockLogger.Error("Block execution failed.", "error", err)
				return nil, &BlockError{BlockID: blk.ID, Err: err}
			}

			for _, port := range spec.Outputs {
				v, produced := out[port.Name]
				if !produced {
					// Omitted output: not yet available, not an error.
					continue
				}
				state.store(ctx, graph.Key(blk.ID, port.Name), v)
			}
			state.executed[blk.ID] = true
			progressed = true
		}

		if !progressed {
			break
		}
	}

	if unresolved := state.unexecuted(g); len(unresolved) > 0 {
		logger.Error("Run stalled with unresolved blocks.", "blocks", unresolved, "passes", pass)
		return nil, &UnresolvedError{BlockIDs: unresolved}
	}

	logger.Info("🏁 Graph run finished.", "values", len(state.cache), "passes", pass)
	e.handOffDiagram(ctx, g)

	return state.cache, nil
}

// handOffDiagram passes the final graph to the renderer collaborator. The
// hand-off is fire-and-forget: a panicking renderer is recovered and logged,
// never surfaced to the caller.
func (e *Engine) handOffDiagram(ctx context.Context, g *graph.Graph) {
	if e.renderer == nil {
		return
	}
	logger := ctxlog.FromContext(ctx)
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Diagram renderer panicked; ignoring.", "panic", r)
		}
	}()
	logger.Debug("Diagram hand-off.", "diagram", e.renderer.Render(g))
}
