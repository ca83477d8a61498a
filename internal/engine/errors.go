package engine

import (
	"fmt"
	"strings"
)

// BlockError reports that one block's compute function failed. It aborts the
// run immediately; no other block executes afterward and no partial value
// map is returned.
type BlockError struct {
	// BlockID identifies the failing block instance.
	BlockID string
	// Err is the underlying cause returned by the compute function.
	Err error
}

// Error implements the error interface.
func (e *BlockError) Error() string {
	return fmt.Sprintf("block '%s' failed: %v", e.BlockID, e.Err)
}

// Unwrap exposes the underlying compute error.
func (e *BlockError) Unwrap() error { return e.Err }

// UnresolvedError reports that the fixed-point loop stalled with one or more
// blocks never becoming ready. It covers both cyclic wiring and permanently
// missing seeds; the two causes are not distinguished in the report.
type UnresolvedError struct {
	// BlockIDs lists every unexecuted block, in graph declaration order.
	BlockIDs []string
}

// Error implements the error interface.
func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("unresolved dependencies for blocks: %s", strings.Join(e.BlockIDs, ", "))
}
