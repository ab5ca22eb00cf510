package events

import (
	"sync"

	"github.com/helpdesk/backend/internal/logger"
)

// Event is one change-feed notification pushed to connected clients.
type Event struct {
	EventType string `json:"event"`
	Data      string `json:"data"`
}

// Client is a connected change-feed subscriber.
type Client struct {
	ID     string
	UserID string
	Events chan Event
}

// Hub manages the connected change-feed clients.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// GlobalHub is the process-wide hub instance.
var GlobalHub = NewHub()

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

// Register adds a new client to the hub.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
	logger.WithEvents("sse").WithField("client_id", client.ID).
		Infof("client registered (total: %d)", len(h.clients))
}

// Unregister removes a client and closes its channel.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.Events)
		delete(h.clients, clientID)
		logger.WithEvents("sse").WithField("client_id", clientID).
			Infof("client unregistered (total: %d)", len(h.clients))
	}
}

// Broadcast sends an event to every connected client. A client with a full
// buffer is skipped rather than blocking the sender.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Events <- event:
		default:
			logger.WithEvents("sse").WithField("client_id", client.ID).
				Warn("client buffer full, skipping event")
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
