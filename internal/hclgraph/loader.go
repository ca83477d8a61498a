// Package hclgraph loads declarative workflow files into the graph model.
// A workflow is one or more .hcl files containing `block`, `connect`, and
// `seed` declarations; declaration order is preserved because the engine's
// tie-break and pass order depend on it.
package hclgraph

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/signalgridgo/internal/block"
	"github.com/vk/signalgridgo/internal/ctxlog"
	"github.com/vk/signalgridgo/internal/feed"
	"github.com/vk/signalgridgo/internal/graph"
	"github.com/vk/signalgridgo/internal/registry"
	"github.com/vk/signalgridgo/internal/value"
)

// Loader parses workflow files and translates them into a graph plus seed
// map, validating endpoints against the registry as it goes.
type Loader struct {
	registry *registry.Registry
}

// NewLoader creates a Loader validating against the given registry.
func NewLoader(reg *registry.Registry) *Loader {
	return &Loader{registry: reg}
}

// Load reads the workflow at path (a single .hcl file or a directory walked
// recursively, files in lexical order) and returns the assembled graph and
// seed map.
func (l *Loader) Load(ctx context.Context, path string) (*graph.Graph, map[string]value.Value, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := findWorkflowFiles(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to discover workflow files: %w", err)
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no .hcl workflow files found under %q", path)
	}
	logger.Debug("Workflow files discovered.", "count", len(files))

	parser := hclparse.NewParser()
	var wf workflowHCL
	var seedDecls []seedEntry
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		parsed, diags := parser.ParseHCL(src, file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}
		var part workflowHCL
		if diags := gohcl.DecodeBody(parsed.Body, nil, &part); diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}
		wf.Blocks = append(wf.Blocks, part.Blocks...)
		wf.Connects = append(wf.Connects, part.Connects...)
		for _, s := range part.Seeds {
			// CSV seed paths resolve relative to the declaring file.
			seedDecls = append(seedDecls, seedEntry{decl: s, baseDir: filepath.Dir(file)})
		}
	}

	g, err := l.translate(ctx, &wf)
	if err != nil {
		return nil, nil, err
	}
	seeds, err := l.translateSeeds(ctx, seedDecls)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Workflow loaded.", "blocks", g.Len(), "connections", len(g.Connections()), "seeds", len(seeds))
	return g, seeds, nil
}

// translate builds the graph model from parsed declarations, preserving
// declaration order, and pre-validates connection endpoints. The check is a
// strict improvement over run-time behavior only: anything it cannot catch
// still surfaces as an unresolved-dependency failure from the engine.
func (l *Loader) translate(ctx context.Context, wf *workflowHCL) (*graph.Graph, error) {
	blocks := make([]*graph.Block, 0, len(wf.Blocks))
	seen := make(map[string]bool, len(wf.Blocks))
	for _, b := range wf.Blocks {
		if seen[b.Name] {
			return nil, fmt.Errorf("duplicate block id '%s'", b.Name)
		}
		seen[b.Name] = true

		cfg, err := decodeConfig(b.Config)
		if err != nil {
			return nil, fmt.Errorf("bad config for block '%s': %w", b.Name, err)
		}
		blocks = append(blocks, &graph.Block{ID: b.Name, Type: b.Type, Config: cfg})
	}

	connections := make([]graph.Connection, 0, len(wf.Connects))
	for _, c := range wf.Connects {
		from, err := graph.ParseEndpoint(c.From)
		if err != nil {
			return nil, fmt.Errorf("bad connection source: %w", err)
		}
		to, err := graph.ParseEndpoint(c.To)
		if err != nil {
			return nil, fmt.Errorf("bad connection destination: %w", err)
		}
		conn := graph.Connection{From: from, To: to}
		if err := l.checkEndpoints(blocks, conn); err != nil {
			return nil, err
		}
		connections = append(connections, conn)
	}

	return graph.New(blocks, connections), nil
}

// checkEndpoints verifies that both ends of a connection reference declared
// blocks and registered ports: the source an output port, the destination an
// input port.
func (l *Loader) checkEndpoints(blocks []*graph.Block, conn graph.Connection) error {
	fromSpec, err := l.specFor(blocks, conn.From.Block)
	if err != nil {
		return fmt.Errorf("connection %s -> %s: %w", conn.From, conn.To, err)
	}
	if _, ok := fromSpec.OutputPort(conn.From.Port); !ok {
		return fmt.Errorf("connection source %s: block type '%s' has no output port '%s'", conn.From, fromSpec.Type, conn.From.Port)
	}

	toSpec, err := l.specFor(blocks, conn.To.Block)
	if err != nil {
		return fmt.Errorf("connection %s -> %s: %w", conn.From, conn.To, err)
	}
	if _, ok := toSpec.InputPort(conn.To.Port); !ok {
		return fmt.Errorf("connection destination %s: block type '%s' has no input port '%s'", conn.To, toSpec.Type, conn.To.Port)
	}
	return nil
}

func (l *Loader) specFor(blocks []*graph.Block, id string) (*block.Spec, error) {
	for _, b := range blocks {
		if b.ID == id {
			spec, ok := l.registry.Spec(b.Type)
			if !ok {
				return nil, fmt.Errorf("block '%s' references unknown block type '%s'", id, b.Type)
			}
			return spec, nil
		}
	}
	return nil, fmt.Errorf("unknown block id '%s'", id)
}

// seedEntry pairs a seed declaration with the directory of the file it came
// from, so relative CSV paths resolve against the workflow file.
type seedEntry struct {
	decl    *seedHCL
	baseDir string
}

// translateSeeds evaluates seed declarations into the "block.port" keyed
// seed map. Inline 'values'/'scalar' seeds evaluate their literal; 'csv'
// seeds load the named column from a CSV file.
func (l *Loader) translateSeeds(ctx context.Context, entries []seedEntry) (map[string]value.Value, error) {
	seeds := make(map[string]value.Value, len(entries))
	for _, e := range entries {
		key := graph.Key(e.decl.Block, e.decl.Port)
		v, err := l.seedValue(e)
		if err != nil {
			return nil, fmt.Errorf("bad seed for %s: %w", key, err)
		}
		seeds[key] = v
	}
	return seeds, nil
}

func (l *Loader) seedValue(e seedEntry) (value.Value, error) {
	s := e.decl
	switch {
	case s.CSV != "":
		path := s.CSV
		if !filepath.IsAbs(path) {
			path = filepath.Join(e.baseDir, path)
		}
		prices, volumes, err := feed.LoadCSV(path)
		if err != nil {
			return value.Value{}, err
		}
		switch s.Column {
		case "", "price":
			return value.SeriesVal(prices), nil
		case "volume":
			return value.SeriesVal(volumes), nil
		default:
			return value.Value{}, fmt.Errorf("unknown csv column %q: want 'price' or 'volume'", s.Column)
		}

	case s.Scalar != nil:
		return value.ScalarVal(*s.Scalar), nil

	case s.Values != nil:
		cv, diags := s.Values.Value(nil)
		if diags.HasErrors() {
			return value.Value{}, fmt.Errorf("failed to evaluate 'values': %w", diags)
		}
		return ctyToValue(cv)

	default:
		return value.Value{}, fmt.Errorf("seed needs one of 'values', 'scalar', or 'csv'")
	}
}

// decodeConfig flattens a block's config body into the opaque configuration
// record.
func decodeConfig(cfg *configHCL) (block.Config, error) {
	if cfg == nil {
		return block.Config{}, nil
	}
	attrs, diags := cfg.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("config must contain only attributes: %w", diags)
	}

	// Iterate in attribute name order for deterministic error reporting.
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(block.Config, len(attrs))
	for _, name := range names {
		cv, diags := attrs[name].Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("attribute '%s': %w", name, diags)
		}
		gv, err := ctyToGo(cv)
		if err != nil {
			return nil, fmt.Errorf("attribute '%s': %w", name, err)
		}
		out[name] = gv
	}
	return out, nil
}

// findWorkflowFiles resolves a path to the ordered list of .hcl files it
// names: the file itself, or every .hcl file under a directory in lexical
// order.
func findWorkflowFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
