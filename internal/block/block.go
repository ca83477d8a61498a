// Package block defines the contract every computation block implements:
// a typed set of input and output ports, an opaque configuration record,
// and a compute function invoked at most once per run.
package block

import (
	"context"

	"github.com/vk/signalgridgo/internal/value"
)

// Port is a named, typed connection point on a block. Port names are unique
// within their owning side (inputs or outputs) of a block type.
type Port struct {
	Name string
	Kind value.Kind
}

// Config is the per-block-instance configuration record. Keys and value
// shapes are interpreted only by the owning block's compute function and
// its CheckConfig hook; the engine passes it through untouched.
type Config map[string]any

// Inputs maps input port names to their resolved values for one compute
// invocation. Compute functions must not mutate it.
type Inputs map[string]value.Value

// Outputs maps output port names to produced values. A compute function may
// omit entries for ports it chooses not to produce this run; the engine
// treats omission as "not yet available", not as an error.
type Outputs map[string]value.Value

// ComputeFunc performs one block evaluation. The context is the caller's
// opaque execution context, forwarded verbatim by the engine.
type ComputeFunc func(ctx context.Context, in Inputs, cfg Config) (Outputs, error)

// Spec describes a registered block type: its identity, category tag,
// ordered ports, optional configuration validation, and compute function.
// A Spec is immutable once registered.
type Spec struct {
	// Type is the unique block-type name referenced from workflow files.
	Type string
	// Category is a display tag (e.g. "feed", "indicator", "logic").
	Category string
	// Inputs and Outputs are the declared ports, in order.
	Inputs  []Port
	Outputs []Port
	// CheckConfig, when non-nil, validates a block instance's configuration
	// at graph-construction time rather than at call time.
	CheckConfig func(cfg Config) error
	// Compute evaluates the block.
	Compute ComputeFunc
}

// InputPort looks up a declared input port by name.
func (s *Spec) InputPort(name string) (Port, bool) {
	for _, p := range s.Inputs {
		if p.Name == name {
			return p, true
		}
	}
	return Port{}, false
}

// OutputPort looks up a declared output port by name.
func (s *Spec) OutputPort(name string) (Port, bool) {
	for _, p := range s.Outputs {
		if p.Name == name {
			return p, true
		}
	}
	return Port{}, false
}
