package feed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/vk/signalgridgo/internal/ctxlog"
)

// Trade is one trade event from a websocket stream.
type Trade struct {
	Price    float64 `json:"price"`
	Quantity float64 `json:"qty"`
}

// Collector gathers a fixed number of trades from a websocket stream and
// then disconnects. It is a one-shot sampler for seeding a run, not a live
// subscription.
type Collector struct {
	url    string
	dialer *websocket.Dialer
}

// NewCollector creates a collector for the given websocket URL.
func NewCollector(url string) *Collector {
	return &Collector{url: url, dialer: websocket.DefaultDialer}
}

// Collect dials the stream, reads count trade messages, and returns their
// price and quantity series in arrival order. The connection is closed
// before returning.
func (c *Collector) Collect(ctx context.Context, count int) (prices, volumes []float64, err error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Dialing trade stream.", "url", c.url, "count", count)

	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial stream: %w", err)
	}
	defer conn.Close()

	prices = make([]float64, 0, count)
	volumes = make([]float64, 0, count)
	for len(prices) < count {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return nil, nil, fmt.Errorf("stream read failed after %d trades: %w", len(prices), err)
		}
		var t Trade
		if err := json.Unmarshal(msg, &t); err != nil {
			return nil, nil, fmt.Errorf("failed to decode trade message: %w", err)
		}
		prices = append(prices, t.Price)
		volumes = append(volumes, t.Quantity)
	}

	logger.Debug("Trade collection complete.", "trades", len(prices))
	return prices, volumes, nil
}
