package hclgraph

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/signalgridgo/blocks/compare"
	"github.com/vk/signalgridgo/blocks/obv"
	"github.com/vk/signalgridgo/blocks/source"
	"github.com/vk/signalgridgo/internal/graph"
	"github.com/vk/signalgridgo/internal/registry"
	"github.com/vk/signalgridgo/internal/value"
)

func newTestRegistry() *registry.Registry {
	reg := registry.New()
	(&source.Module{}).Register(reg)
	(&obv.Module{}).Register(reg)
	(&compare.Module{}).Register(reg)
	return reg
}

func writeWorkflow(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func TestLoad_FullWorkflow(t *testing.T) {
	dir := writeWorkflow(t, map[string]string{
		"main.hcl": `
block "source" "prices" {}
block "source" "volumes" {}

block "obv" "obv1" {}

block "compare" "signal" {
  config {
    operator  = "gt"
    threshold = 50
  }
}

connect {
  from = "prices.out"
  to   = "obv1.prices"
}

connect {
  from = "volumes.out"
  to   = "obv1.volumes"
}

connect {
  from = "obv1.obv"
  to   = "signal.in"
}

seed "prices" "in" {
  values = [10, 11, 9]
}

seed "volumes" "in" {
  values = [100, 100, 100]
}
`,
	})

	g, seeds, err := NewLoader(newTestRegistry()).Load(context.Background(), dir)
	require.NoError(t, err)

	var ids []string
	for _, b := range g.Blocks() {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"prices", "volumes", "obv1", "signal"}, ids)

	signal, ok := g.BlockByID("signal")
	require.True(t, ok)
	op, _ := signal.Config.String("operator")
	assert.Equal(t, "gt", op)
	threshold, _ := signal.Config.Float("threshold")
	assert.Equal(t, 50.0, threshold)

	require.Len(t, g.Connections(), 3)
	assert.Equal(t, graph.Endpoint{Block: "prices", Port: "out"}, g.Connections()[0].From)
	assert.Equal(t, graph.Endpoint{Block: "obv1", Port: "prices"}, g.Connections()[0].To)

	require.Len(t, seeds, 2)
	assert.True(t, value.SeriesVal([]float64{10, 11, 9}).Equal(seeds["prices.in"]))
	assert.True(t, value.SeriesVal([]float64{100, 100, 100}).Equal(seeds["volumes.in"]))
}

func TestLoad_ScalarAndBoolSeeds(t *testing.T) {
	dir := writeWorkflow(t, map[string]string{
		"main.hcl": `
block "source" "s" {}

seed "s" "in" {
  values = [true, false, true]
}

seed "x" "level" {
  scalar = 3.5
}
`,
	})

	_, seeds, err := NewLoader(newTestRegistry()).Load(context.Background(), dir)
	require.NoError(t, err)
	assert.True(t, value.BoolSeriesVal([]bool{true, false, true}).Equal(seeds["s.in"]))
	assert.True(t, value.ScalarVal(3.5).Equal(seeds["x.level"]))
}

func TestLoad_CSVSeed(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("price,volume\n10,100\n20,200\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.hcl"), []byte(`
block "source" "prices" {}

seed "prices" "in" {
  csv = "`+csvPath+`"
}

seed "volumes" "in" {
  csv    = "`+csvPath+`"
  column = "volume"
}
`), 0644))

	_, seeds, err := NewLoader(newTestRegistry()).Load(context.Background(), dir)
	require.NoError(t, err)
	assert.True(t, value.SeriesVal([]float64{10, 20}).Equal(seeds["prices.in"]))
	assert.True(t, value.SeriesVal([]float64{100, 200}).Equal(seeds["volumes.in"]))
}

func TestLoad_MultipleFilesInLexicalOrder(t *testing.T) {
	dir := writeWorkflow(t, map[string]string{
		"01_sources.hcl": `
block "source" "a" {}
`,
		"02_wiring.hcl": `
block "source" "b" {}
`,
	})

	g, _, err := NewLoader(newTestRegistry()).Load(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())
	assert.Equal(t, "a", g.Blocks()[0].ID)
	assert.Equal(t, "b", g.Blocks()[1].ID)
}

func TestLoad_RejectsDuplicateBlockID(t *testing.T) {
	dir := writeWorkflow(t, map[string]string{
		"main.hcl": `
block "source" "dup" {}
block "source" "dup" {}
`,
	})

	_, _, err := NewLoader(newTestRegistry()).Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate block id")
}

func TestLoad_RejectsDanglingEndpoints(t *testing.T) {
	cases := map[string]string{
		"unknown source block": `
block "source" "a" {}
connect {
  from = "ghost.out"
  to   = "a.in"
}
`,
		"unknown source port": `
block "source" "a" {}
block "source" "b" {}
connect {
  from = "a.nope"
  to   = "b.in"
}
`,
		"unknown destination port": `
block "source" "a" {}
block "source" "b" {}
connect {
  from = "a.out"
  to   = "b.nope"
}
`,
		"malformed endpoint": `
block "source" "a" {}
connect {
  from = "aout"
  to   = "a.in"
}
`,
	}

	for name, wf := range cases {
		t.Run(name, func(t *testing.T) {
			dir := writeWorkflow(t, map[string]string{"main.hcl": wf})
			_, _, err := NewLoader(newTestRegistry()).Load(context.Background(), dir)
			assert.Error(t, err)
		})
	}
}

func TestLoad_RejectsUnknownBlockTypeInConnection(t *testing.T) {
	dir := writeWorkflow(t, map[string]string{
		"main.hcl": `
block "teleport" "t" {}
block "source" "a" {}
connect {
  from = "t.out"
  to   = "a.in"
}
`,
	})

	_, _, err := NewLoader(newTestRegistry()).Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown block type")
}

func TestLoad_NoFilesFound(t *testing.T) {
	_, _, err := NewLoader(newTestRegistry()).Load(context.Background(), t.TempDir())
	assert.Error(t, err)
}

func TestLoad_ParseErrorSurfaces(t *testing.T) {
	dir := writeWorkflow(t, map[string]string{"main.hcl": `block "source" {`})
	_, _, err := NewLoader(newTestRegistry()).Load(context.Background(), dir)
	assert.Error(t, err)
}
