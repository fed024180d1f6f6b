package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

// Smoke test for the change feed: subscribe to /ws, create a todo through
// the API and make sure the todo_created event arrives.
func main() {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	// 127.0.0.1 to prefer IPv4 (avoid resolving to [::1])
	wsURL := fmt.Sprintf("ws://127.0.0.1:%s/ws", port)
	apiURL := fmt.Sprintf("http://127.0.0.1:%s/api/v1/todoitems", port)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		log.Fatalf("dial ws: %v", err)
	}
	defer conn.Close()

	body := []byte(`{"name":"smoke test todo"}`)
	resp, err := http.Post(apiURL, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("create todo: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("create todo: unexpected status %d", resp.StatusCode)
	}

	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		log.Fatalf("read event: %v", err)
	}

	var ev struct {
		Type string `json:"type"`
		Todo struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"todo"`
	}
	if err := json.Unmarshal(msg, &ev); err != nil {
		log.Fatalf("decode event: %v", err)
	}
	if ev.Type != "todo_created" {
		log.Fatalf("expected todo_created, got %q", ev.Type)
	}

	log.Printf("got event %s for todo %d (%s)", ev.Type, ev.Todo.ID, ev.Todo.Name)
	log.Println("smoke test finished")
}
