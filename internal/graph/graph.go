// Package graph holds the declarative structure of one workflow: an ordered
// sequence of block instances and an ordered sequence of point-to-point
// connections between named ports. It is a pure data holder; it performs no
// validation of its own and is immutable input to one execution run.
package graph

import (
	"fmt"
	"strings"

	"github.com/vk/signalgridgo/internal/block"
)

// Endpoint addresses one port on one block instance.
type Endpoint struct {
	Block string
	Port  string
}

// Key returns the canonical "block.port" cache key for this endpoint.
func (e Endpoint) Key() string {
	return e.Block + "." + e.Port
}

// String implements fmt.Stringer.
func (e Endpoint) String() string { return e.Key() }

// Key builds the canonical cache key for a block id and port name.
func Key(blockID, port string) string {
	return blockID + "." + port
}

// ParseEndpoint parses a "block.port" address into an Endpoint.
func ParseEndpoint(s string) (Endpoint, error) {
	blockID, port, ok := strings.Cut(s, ".")
	if !ok || blockID == "" || port == "" {
		return Endpoint{}, fmt.Errorf("invalid endpoint %q: want \"block.port\"", s)
	}
	return Endpoint{Block: blockID, Port: port}, nil
}

// Connection is a directed wire from a source block's output port to a
// destination block's input port.
type Connection struct {
	From Endpoint
	To   Endpoint
}

// Block is one instance of a registered block type within a graph.
type Block struct {
	// ID is the instance identifier, unique within the graph.
	ID string
	// Type names the registered block type implementing this instance.
	Type string
	// Config is this instance's configuration record.
	Config block.Config
}

// Graph is an ordered collection of blocks and connections. Order is
// significant: the engine iterates blocks in declared order and resolves
// multi-source tie-breaks by connection declaration order.
type Graph struct {
	blocks      []*Block
	connections []Connection
	byID        map[string]*Block
}

// New assembles a graph from blocks and connections in declaration order.
// No structural validation happens here; a connection referencing a missing
// block or port simply never becomes ready at run time.
func New(blocks []*Block, connections []Connection) *Graph {
	byID := make(map[string]*Block, len(blocks))
	for _, b := range blocks {
		byID[b.ID] = b
	}
	return &Graph{
		blocks:      blocks,
		connections: connections,
		byID:        byID,
	}
}

// Blocks returns the blocks in declared order. Callers must not mutate the
// returned slice.
func (g *Graph) Blocks() []*Block { return g.blocks }

// Connections returns the connections in declared order. Callers must not
// mutate the returned slice.
func (g *Graph) Connections() []Connection { return g.connections }

// BlockByID looks up a block instance by its identifier.
func (g *Graph) BlockByID(id string) (*Block, bool) {
	b, ok := g.byID[id]
	return b, ok
}

// Len returns the number of blocks in the graph.
func (g *Graph) Len() int { return len(g.blocks) }
