package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/signalgridgo/internal/ctxlog"
	"github.com/vk/signalgridgo/internal/engine"
	"github.com/vk/signalgridgo/internal/render"
	"github.com/vk/signalgridgo/internal/value"
)

// Run executes the loaded workflow once and writes the resolved values (and
// optionally the diagram) to the output writer.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	eng := engine.New(a.registry, engine.WithRenderer(render.NewMermaid()))
	values, err := eng.Run(ctx, a.graph, a.seeds)
	if err != nil {
		return fmt.Errorf("workflow execution failed: %w", err)
	}

	a.printValues(values)

	if appConfig.ShowDiagram {
		fmt.Fprintln(a.outW)
		fmt.Fprint(a.outW, render.NewMermaid().Render(a.graph))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// printValues writes the resolved value map in sorted key order.
func (a *App) printValues(values map[string]value.Value) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(a.outW, "%s = %#v\n", k, values[k])
	}
}
