package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEndpoint(t *testing.T) {
	ep, err := ParseEndpoint("obv1.prices")
	require.NoError(t, err)
	assert.Equal(t, Endpoint{Block: "obv1", Port: "prices"}, ep)
	assert.Equal(t, "obv1.prices", ep.Key())

	for _, bad := range []string{"", "noport", ".port", "block."} {
		_, err := ParseEndpoint(bad)
		assert.Error(t, err, "input %q should not parse", bad)
	}
}

func TestGraphPreservesDeclarationOrder(t *testing.T) {
	blocks := []*Block{
		{ID: "c", Type: "source"},
		{ID: "a", Type: "obv"},
		{ID: "b", Type: "compare"},
	}
	conns := []Connection{
		{From: Endpoint{"c", "out"}, To: Endpoint{"a", "prices"}},
		{From: Endpoint{"c", "out"}, To: Endpoint{"b", "in"}},
	}
	g := New(blocks, conns)

	var ids []string
	for _, b := range g.Blocks() {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
	assert.Equal(t, conns, g.Connections())
	assert.Equal(t, 3, g.Len())
}

func TestBlockByID(t *testing.T) {
	g := New([]*Block{{ID: "x", Type: "source"}}, nil)

	b, ok := g.BlockByID("x")
	require.True(t, ok)
	assert.Equal(t, "source", b.Type)

	_, ok = g.BlockByID("missing")
	assert.False(t, ok)
}
