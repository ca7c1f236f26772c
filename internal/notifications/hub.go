package notifications

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"haven/internal/observability"

	"github.com/gofiber/websocket/v2"
)

// Hub is the registry of currently open chat connections. There is a single
// global broadcast domain; every event reaches every registered client.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]bool)}
}

// Register adds a connection to the registry and returns its client handle.
func (h *Hub) Register(conn *websocket.Conn) *Client {
	client := NewClient(h, conn)

	h.mu.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.mu.Unlock()

	observability.ActiveWebSockets.Inc()
	log.Printf("hub: client registered (%d active)", total)
	return client
}

// UnregisterClient removes a connection from the registry and announces the
// updated connection count to the remaining clients.
func (h *Hub) UnregisterClient(client *Client) {
	h.mu.Lock()
	if !h.clients[client] {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	total := len(h.clients)
	h.mu.Unlock()

	observability.ActiveWebSockets.Dec()
	log.Printf("hub: client unregistered (%d active)", total)

	h.BroadcastUserCount()
}

// Count returns the number of registered connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast marshals the event and sends it to every registered client.
// Membership is snapshotted at iteration start; delivery is best-effort.
func (h *Hub) Broadcast(event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("hub: failed to marshal broadcast: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		client.TrySend(payload)
	}
}

// BroadcastUserCount announces the current connection count to every client.
func (h *Hub) BroadcastUserCount() {
	observability.WebSocketEventsTotal.WithLabelValues(EventUserCount).Inc()
	h.Broadcast(NewUserCountEvent(h.Count()))
}

// Shutdown gracefully closes all websocket connections.
func (h *Hub) Shutdown(_ context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		if client.Conn == nil {
			continue
		}
		if err := client.Conn.WriteMessage(websocket.TextMessage,
			[]byte(`{"type":"server_shutdown","message":"Server is shutting down"}`)); err != nil {
			log.Printf("failed to write shutdown message: %v", err)
		}
		if err := client.Conn.Close(); err != nil {
			log.Printf("failed to close websocket: %v", err)
		}
	}

	h.clients = make(map[*Client]bool)
	return nil
}
