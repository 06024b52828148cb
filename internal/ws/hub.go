package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// Event is a back-office notification pushed to connected dashboards:
// enrollment_created, enrollment_dropped, payment_approved,
// payment_rejected.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
	At   time.Time   `json:"at"`
}

// Hub maintains the set of connected dashboard clients and broadcasts
// events to all of them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	log        *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// Run starts the hub's event loop. Should be called in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues an event for broadcast. Drops the event when the
// queue is full so slow dashboards never stall a request.
func (h *Hub) Publish(eventType string, data interface{}) {
	event := &Event{
		Type: eventType,
		Data: data,
		At:   time.Now().UTC(),
	}
	select {
	case h.broadcast <- event:
	default:
		if h.log != nil {
			h.log.Warn("event queue full, dropping event", slog.String("type", eventType))
		}
	}
}
