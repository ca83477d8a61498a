// Package render turns a resolved graph into a textual diagram. It is a
// display-only consumer: it never influences execution results.
package render

import (
	"fmt"
	"strings"

	"github.com/vk/signalgridgo/internal/graph"
)

// Mermaid renders a graph as a Mermaid flowchart, one node per block and one
// labeled edge per connection, in declaration order.
type Mermaid struct{}

// NewMermaid creates a Mermaid renderer.
func NewMermaid() *Mermaid { return &Mermaid{} }

// Render implements the engine's Renderer contract.
func (m *Mermaid) Render(g *graph.Graph) string {
	var b strings.Builder
	b.WriteString("flowchart LR\n")
	for _, blk := range g.Blocks() {
		fmt.Fprintf(&b, "    %s[\"%s (%s)\"]\n", blk.ID, blk.ID, blk.Type)
	}
	for _, conn := range g.Connections() {
		fmt.Fprintf(&b, "    %s -->|%s → %s| %s\n", conn.From.Block, conn.From.Port, conn.To.Port, conn.To.Block)
	}
	return b.String()
}
