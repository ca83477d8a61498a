// Package feed fetches market data series used to seed graph source ports:
// a REST candle client, a one-shot websocket trade collector, and a CSV
// loader for offline runs.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vk/signalgridgo/internal/ctxlog"
)

// Candle is one OHLCV bar as returned by the market-data provider.
type Candle struct {
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// Client fetches candles from a REST market-data provider.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a candle client for the given provider base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchCandles retrieves up to limit candles for a symbol/interval pair and
// returns the close-price and volume series in bar order.
func (c *Client) FetchCandles(ctx context.Context, symbol, interval string, limit int) (prices, volumes []float64, err error) {
	logger := ctxlog.FromContext(ctx)

	reqURL := fmt.Sprintf("%s/candles?symbol=%s&interval=%s&limit=%s",
		c.baseURL, url.QueryEscape(symbol), url.QueryEscape(interval), strconv.Itoa(limit))
	logger.Debug("Fetching candles.", "url", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch candles: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, nil, fmt.Errorf("candle request returned %s: %s", resp.Status, body)
	}

	var candles []Candle
	if err := json.NewDecoder(resp.Body).Decode(&candles); err != nil {
		return nil, nil, fmt.Errorf("failed to decode candle response: %w", err)
	}

	prices = make([]float64, len(candles))
	volumes = make([]float64, len(candles))
	for i, k := range candles {
		prices[i] = k.Close
		volumes[i] = k.Volume
	}
	logger.Debug("Candles fetched.", "count", len(candles))
	return prices, volumes, nil
}
