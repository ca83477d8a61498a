package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/signalgridgo/internal/graph"
)

func TestMermaidRender(t *testing.T) {
	g := graph.New(
		[]*graph.Block{
			{ID: "prices", Type: "source"},
			{ID: "obv1", Type: "obv"},
		},
		[]graph.Connection{
			{From: graph.Endpoint{Block: "prices", Port: "out"}, To: graph.Endpoint{Block: "obv1", Port: "prices"}},
		},
	)

	out := NewMermaid().Render(g)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "flowchart LR", lines[0])
	assert.Contains(t, lines[1], `prices["prices (source)"]`)
	assert.Contains(t, lines[2], `obv1["obv1 (obv)"]`)
	assert.Contains(t, lines[3], "prices -->")
	assert.Contains(t, lines[3], "obv1")
}

func TestMermaidRenderEmptyGraph(t *testing.T) {
	out := NewMermaid().Render(graph.New(nil, nil))
	assert.Equal(t, "flowchart LR\n", out)
}
