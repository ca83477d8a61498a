// Package registry maps block-type names to their specs. Modules register
// their block types at startup; the app validates a loaded graph against the
// registry before handing it to the engine.
package registry

import (
	"fmt"
	"log/slog"

	"github.com/vk/signalgridgo/internal/block"
)

// Module is the interface every block package implements to plug its block
// types into an application instance.
type Module interface {
	Register(r *Registry)
}

// Registry holds all registered block specs for a single application
// instance, in registration order.
type Registry struct {
	specs map[string]*block.Spec
	order []string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{specs: make(map[string]*block.Spec)}
}

// Register adds a block spec. Registering the same type name twice is a
// programmer error and panics.
func (r *Registry) Register(s *block.Spec) {
	if _, exists := r.specs[s.Type]; exists {
		panic(fmt.Sprintf("block type '%s' already registered", s.Type))
	}
	slog.Debug("Registering block type.", "type", s.Type, "category", s.Category)
	r.specs[s.Type] = s
	r.order = append(r.order, s.Type)
}

// Spec looks up a block spec by type name.
func (r *Registry) Spec(name string) (*block.Spec, bool) {
	s, ok := r.specs[name]
	return s, ok
}

// Types returns the registered type names in registration order.
func (r *Registry) Types() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
