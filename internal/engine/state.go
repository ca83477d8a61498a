package engine

import (
	"context"

	"github.com/vk/signalgridgo/internal/block"
	"github.com/vk/signalgridgo/internal/ctxlog"
	"github.com/vk/signalgridgo/internal/graph"
	"github.com/vk/signalgridgo/internal/value"
)

// runState is the per-run execution state: the value cache, the executed
// set, and the destination-to-sources index. It is owned exclusively by one
// Run call and never shared; the cache is append-only for the duration of
// the run.
type runState struct {
	// cache maps "block.port" keys to resolved values. Once set, a key is
	// never overwritten within the run.
	cache map[string]value.Value
	// executed tracks which blocks have already run.
	executed map[string]bool
	// sources maps each destination endpoint key to its source endpoints in
	// connection declaration order. Only the first entry is honored when a
	// port is fed by multiple connections.
	sources map[string][]graph.Endpoint
}

// newRunState seeds the cache from the caller-supplied seed map and builds
// the connection index. The index is an explicit ordered list per
// destination, so tie-breaks follow declaration order deterministically.
func newRunState(ctx context.Context, g *graph.Graph, seeds map[string]value.Value) *runState {
	logger := ctxlog.FromContext(ctx)

	s := &runState{
		cache:    make(map[string]value.Value, len(seeds)),
		executed: make(map[string]bool, g.Len()),
		sources:  make(map[string][]graph.Endpoint),
	}
	for key, v := range seeds {
		s.cache[key] = v
	}
	for _, conn := range g.Connections() {
		key := conn.To.Key()
		if prior := s.sources[key]; len(prior) > 0 {
			// First listed source wins; later ones are recorded but ignored.
			logger.Warn("Multiple connections target the same port; honoring the first.",
				"destination", key, "winner", prior[0].Key(), "shadowed", conn.From.Key())
		}
		s.sources[key] = append(s.sources[key], conn.From)
	}
	return s
}

// gatherInputs collects the resolved values for every declared input port of
// a block. A wired port is ready only when its first declared source has a
// cache entry; an unwired port is ready only when a cache entry exists under
// the block's own key. Returns ok=false if any port is not yet ready.
func (s *runState) gatherInputs(blk *graph.Block, spec *block.Spec) (block.Inputs, bool) {
	in := make(block.Inputs, len(spec.Inputs))
	for _, port := range spec.Inputs {
		dst := graph.Endpoint{Block: blk.ID, Port: port.Name}
		if srcs := s.sources[dst.Key()]; len(srcs) > 0 {
			v, ok := s.cache[srcs[0].Key()]
			if !ok {
				return nil, false
			}
			in[port.Name] = v
			continue
		}
		v, ok := s.cache[dst.Key()]
		if !ok {
			return nil, false
		}
		in[port.Name] = v
	}
	return in, true
}

// store adds a produced value under the given key. The cache is append-only:
// a pre-existing entry (e.g. a seed placed on an output port) is kept and
// the new value is discarded.
func (s *runState) store(ctx context.Context, key string, v value.Value) {
	if _, exists := s.cache[key]; exists {
		ctxlog.FromContext(ctx).Debug("Cache key already set; keeping existing value.", "key", key)
		return
	}
	s.cache[key] = v
}

// unexecuted returns the ids of blocks that never ran, in graph order.
func (s *runState) unexecuted(g *graph.Graph) []string {
	var ids []string
	for _, b := range g.Blocks() {
		if !s.executed[b.ID] {
			ids = append(ids, b.ID)
		}
	}
	return ids
}
