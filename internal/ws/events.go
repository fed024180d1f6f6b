package ws

// server → client
const (
	EventTodoCreated = "todo_created"
	EventTodoUpdated = "todo_updated"
	EventTodoDeleted = "todo_deleted"
)

type TodoPayload struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsComplete bool   `json:"isComplete"`
}

type Event struct {
	Type string      `json:"type"`
	Todo TodoPayload `json:"todo"`
}
