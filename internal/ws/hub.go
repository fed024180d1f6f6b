package ws

import (
	"encoding/json"
	"sync"

	"todo_backend/internal/logger"
)

// Hub fans todo change events out to every connected client.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	logger.Debug("ws client registered", "clients", n)
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
	}
	h.mu.Unlock()
}

// Broadcast queues the event on every client. A client whose send buffer is
// full is dropped rather than allowed to stall the others.
func (h *Hub) Broadcast(ev Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		logger.Error("failed to marshal ws event", "type", ev.Type, "error", err)
		return
	}

	h.mu.Lock()
	for c := range h.clients {
		select {
		case c.Send <- msg:
		default:
			delete(h.clients, c)
			close(c.Send)
		}
	}
	h.mu.Unlock()
}
