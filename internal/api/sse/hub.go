// Package sse delivers outbound events to players over Server-Sent Events.
// The hub is the transport half of the engine's Notifier contract: send to
// exactly one identified player, or broadcast to all connected.
package sse

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/roodle/server/internal/model"
)

// Hub manages all connected SSE clients, keyed by player
type Hub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[model.PlayerID]*Client

	// onDisconnect is invoked after a client's stream is torn down
	onDisconnect func(model.PlayerID)
}

// NewHub creates a new Hub
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger.With(slog.String("component", "sse")),
		clients: make(map[model.PlayerID]*Client),
	}
}

// OnDisconnect registers the callback invoked when a client's stream ends.
// Must be set before clients connect.
func (h *Hub) OnDisconnect(fn func(model.PlayerID)) {
	h.onDisconnect = fn
}

// Register attaches a client, replacing any previous stream for the same
// player
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	if old, ok := h.clients[client.playerID]; ok {
		close(old.send)
	}
	h.clients[client.playerID] = client
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("sse client registered",
		slog.String("player_id", string(client.playerID)),
		slog.Int("total_clients", count),
	)
}

// Unregister detaches a client and fires the disconnect callback
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	current, ok := h.clients[client.playerID]
	if ok && current == client {
		delete(h.clients, client.playerID)
		close(client.send)
	}
	count := len(h.clients)
	h.mu.Unlock()

	if !ok || current != client {
		// Replaced by a newer stream; nothing to tear down
		return
	}

	h.logger.Info("sse client unregistered",
		slog.String("player_id", string(client.playerID)),
		slog.Duration("connection_duration", time.Since(client.connectedAt)),
		slog.Int("total_clients", count),
	)

	if h.onDisconnect != nil {
		h.onDisconnect(client.playerID)
	}
}

// Send delivers an event to one connected player. A no-op for players
// without a stream.
func (h *Hub) Send(id model.PlayerID, event model.Event) {
	msg := formatEvent(event)

	// The lock is held across the channel send so a concurrent Unregister
	// cannot close the channel mid-send
	h.mu.RLock()
	defer h.mu.RUnlock()

	client, ok := h.clients[id]
	if !ok {
		return
	}

	select {
	case client.send <- msg:
	default:
		h.logger.Warn("sse message dropped - client buffer full",
			slog.String("player_id", string(id)),
			slog.String("event", string(event.Type)),
		)
	}
}

// Broadcast delivers an event to all connected players
func (h *Hub) Broadcast(event model.Event) {
	msg := formatEvent(event)

	h.mu.RLock()
	defer h.mu.RUnlock()

	dropped := 0
	for id, client := range h.clients {
		select {
		case client.send <- msg:
		default:
			dropped++
			h.logger.Warn("sse broadcast dropped for client",
				slog.String("player_id", string(id)),
			)
		}
	}
	if dropped > 0 {
		h.logger.Warn("sse broadcast partial failure", slog.Int("dropped", dropped))
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// formatEvent renders an event as an SSE message: the event type as the
// SSE event name, the JSON payload as data
func formatEvent(event model.Event) []byte {
	data, err := json.Marshal(event.Payload)
	if err != nil || event.Payload == nil {
		data = []byte("{}")
	}

	msg := make([]byte, 0, len(data)+len(event.Type)+16)
	msg = append(msg, "event: "...)
	msg = append(msg, event.Type...)
	msg = append(msg, "\ndata: "...)
	msg = append(msg, data...)
	msg = append(msg, "\n\n"...)
	return msg
}
