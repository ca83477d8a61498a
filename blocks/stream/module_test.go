package stream

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/signalgridgo/internal/block"
)

func TestStreamBlockCollectsTrades(t *testing.T) {
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for i := 1; ; i++ {
			msg := fmt.Sprintf(`{"price":%d,"qty":5}`, 100+i)
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	out, err := compute(context.Background(), nil, block.Config{
		"url":   "ws" + strings.TrimPrefix(server.URL, "http"),
		"count": 2.0,
	})
	require.NoError(t, err)

	prices, err := out["prices"].AsSeries()
	require.NoError(t, err)
	assert.Equal(t, []float64{101, 102}, prices)

	volumes, err := out["volumes"].AsSeries()
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5}, volumes)
}

func TestCheckConfig(t *testing.T) {
	assert.NoError(t, checkConfig(block.Config{"url": "ws://x"}))
	assert.NoError(t, checkConfig(block.Config{"url": "ws://x", "count": 10.0}))
	assert.Error(t, checkConfig(block.Config{}), "url is required")
	assert.Error(t, checkConfig(block.Config{"url": "ws://x", "count": 0.0}), "count must be positive")
}
