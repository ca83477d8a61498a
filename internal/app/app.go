// Package app wires the application together: logger, block registry,
// workflow loader, execution engine, and diagram output.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/signalgridgo/internal/ctxlog"
	"github.com/vk/signalgridgo/internal/graph"
	"github.com/vk/signalgridgo/internal/hclgraph"
	"github.com/vk/signalgridgo/internal/registry"
	"github.com/vk/signalgridgo/internal/value"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	graph    *graph.Graph
	seeds    map[string]value.Value
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry, and
// the workflow already loaded and validated. Fatal startup problems (bad
// workflow, unknown block types, invalid config) panic; main recovers them
// into a clean exit.
func NewApp(ctx context.Context, outW, logW io.Writer, appConfig *Config, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All block modules registered.", "count", len(modules), "types", reg.Types())

	loader := hclgraph.NewLoader(reg)
	g, seeds, err := loader.Load(ctx, appConfig.WorkflowPath)
	if err != nil {
		// A failure to load the workflow is a fatal startup error.
		panic(fmt.Errorf("failed to load workflow: %w", err))
	}

	if err := reg.ValidateGraph(ctx, g); err != nil {
		panic(err)
	}
	logger.Debug("Workflow validation passed.")

	return &App{
		outW:     outW,
		logW:     logW,
		logger:   logger,
		registry: reg,
		graph:    g,
		seeds:    seeds,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry { return a.registry }

// Graph returns the loaded workflow graph. This is primarily for testing.
func (a *App) Graph() *graph.Graph { return a.graph }

// Seeds returns the loaded seed map. This is primarily for testing.
func (a *App) Seeds() map[string]value.Value { return a.seeds }
