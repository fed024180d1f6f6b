package handlers

import (
	"todo_backend/internal/service"
	"todo_backend/internal/ws"
)

type Handler struct {
	Todos *service.TodoService
	Hub   *ws.Hub
}

// NewHandler wires the HTTP layer to the todo service. hub may be nil when
// the change feed is not wanted (e.g. in tests).
func NewHandler(todos *service.TodoService, hub *ws.Hub) *Handler {
	return &Handler{
		Todos: todos,
		Hub:   hub,
	}
}

// notify pushes a change event to feed subscribers, if the feed is running.
func (h *Handler) notify(eventType string, todo service.TodoResponse) {
	if h.Hub == nil {
		return
	}
	h.Hub.Broadcast(ws.Event{
		Type: eventType,
		Todo: ws.TodoPayload{
			ID:         todo.ID,
			Name:       todo.Name,
			IsComplete: todo.IsComplete,
		},
	})
}
