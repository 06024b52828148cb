package ws

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run()

	client := &Client{hub: hub, send: make(chan []byte, 8)}
	hub.register <- client

	hub.Publish("enrollment_created", map[string]string{"class_id": "c1"})

	select {
	case raw := <-client.send:
		var event Event
		require.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, "enrollment_created", event.Type)
		assert.False(t, event.At.IsZero())
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run()

	client := &Client{hub: hub, send: make(chan []byte, 8)}
	hub.register <- client
	hub.unregister <- client

	select {
	case _, open := <-client.send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}
}

func TestPublishDropsWhenQueueFull(t *testing.T) {
	// no Run loop draining the queue
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for i := 0; i < 300; i++ {
		hub.Publish("payment_approved", nil)
	}
	// the queue holds its capacity, the rest were dropped without blocking
	assert.Equal(t, 256, len(hub.broadcast))
}
