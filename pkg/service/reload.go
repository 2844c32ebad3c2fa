package service

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ReloadMessageType represents the type of reload message.
type ReloadMessageType string

const (
	// ReloadTypeNav tells clients the navigation index was rebuilt.
	ReloadTypeNav ReloadMessageType = "nav"

	// ReloadTypeError tells clients the last rebuild failed and the
	// previous index is still being served.
	ReloadTypeError ReloadMessageType = "error"

	// ReloadTypeClear clears a previously broadcast error.
	ReloadTypeClear ReloadMessageType = "clear"
)

// ReloadMessage is sent to docs frontends via WebSocket.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	Error string            `json:"error,omitempty"`
}

// ReloadHub manages WebSocket connections from docs frontends that want to
// refresh their sidebar when the index changes.
type ReloadHub struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader

	// writeMu serializes broadcasts: gorilla connections allow only one
	// concurrent writer.
	writeMu sync.Mutex
}

// NewReloadHub creates a new reload hub.
func NewReloadHub() *ReloadHub {
	return &ReloadHub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (h *ReloadHub) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	// Keep connection alive until client disconnects
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// NotifyNav tells all clients the index was rebuilt.
func (h *ReloadHub) NotifyNav() {
	h.broadcast(ReloadMessage{Type: ReloadTypeNav})
}

// NotifyError tells all clients the last rebuild failed.
func (h *ReloadHub) NotifyError(errMsg string) {
	h.broadcast(ReloadMessage{Type: ReloadTypeError, Error: errMsg})
}

// ClearError clears the error state on all clients.
func (h *ReloadHub) ClearError() {
	h.broadcast(ReloadMessage{Type: ReloadTypeClear})
}

// broadcast sends a message to all connected clients.
func (h *ReloadHub) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		err := client.WriteMessage(websocket.TextMessage, data)
		if err != nil {
			h.mu.Lock()
			delete(h.clients, client)
			h.mu.Unlock()
			client.Close()
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *ReloadHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *ReloadHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
}
