// Package stream provides the websocket trade-sampler block: it collects a
// fixed number of trades from a stream endpoint into price and volume
// series, then disconnects. The run stays one-shot; there is no live
// re-execution.
package stream

import (
	"context"
	"fmt"

	"github.com/vk/signalgridgo/internal/block"
	"github.com/vk/signalgridgo/internal/feed"
	"github.com/vk/signalgridgo/internal/registry"
	"github.com/vk/signalgridgo/internal/value"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the stream block type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&block.Spec{
		Type:     "stream",
		Category: "feed",
		Outputs: []block.Port{
			{Name: "prices", Kind: value.KindSeries},
			{Name: "volumes", Kind: value.KindSeries},
		},
		CheckConfig: checkConfig,
		Compute:     compute,
	})
}

func checkConfig(cfg block.Config) error {
	if _, ok := cfg.String("url"); !ok {
		return fmt.Errorf("missing 'url'")
	}
	if count, ok := cfg.Int("count"); ok && count < 1 {
		return fmt.Errorf("'count' must be at least 1, got %d", count)
	}
	return nil
}

func compute(ctx context.Context, in block.Inputs, cfg block.Config) (block.Outputs, error) {
	url, _ := cfg.String("url")
	count, ok := cfg.Int("count")
	if !ok {
		count = 100
	}

	prices, volumes, err := feed.NewCollector(url).Collect(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("trade collection failed: %w", err)
	}
	return block.Outputs{
		"prices":  value.SeriesVal(prices),
		"volumes": value.SeriesVal(volumes),
	}, nil
}
