// Package fetch provides the REST candle-feed block. It has no input ports:
// it pulls close prices and volumes from a market-data provider and exposes
// them as series outputs for downstream indicator blocks.
package fetch

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

// Register registers the fetch block type with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&block.Spec{
		Type:     "fetch",
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
	if _, ok := cfg.String("symbol"); !ok {
		return fmt.Errorf("missing 'symbol'")
	}
	return nil
}

func compute(ctx context.Context, in block.Inputs, cfg block.Config) (block.Outputs, error) {
	url, _ := cfg.String("url")
	symbol, _ := cfg.String("symbol")
	interval, ok := cfg.String("interval")
	if !ok {
		interval = "1m"
	}
	limit, ok := cfg.Int("limit")
	if !ok {
		limit = 100
	}

	prices, volumes, err := feed.NewClient(url).FetchCandles(ctx, symbol, interval, limit)
	if err != nil {
		return nil, fmt.Errorf("candle fetch failed: %w", err)
	}
	return block.Outputs{
		"prices":  value.SeriesVal(prices),
		"volumes": value.SeriesVal(volumes),
	}, nil
}
