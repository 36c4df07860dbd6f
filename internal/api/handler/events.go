package handler

import (
	"net/http"

	"github.com/roodle/server/internal/api/sse"
	"github.com/roodle/server/internal/model"
)

// EventsHandler serves the per-player server-sent event stream. The stream
// is the connection: closing it counts as the player disconnecting.
type EventsHandler struct {
	hub *sse.Hub
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hub *sse.Hub) *EventsHandler {
	return &EventsHandler{
		hub: hub,
	}
}

// Stream handles GET /api/v1/events?player_id=...
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(r.URL.Query().Get("player_id"))
	if playerID == "" {
		WriteError(w, NewInvalidRequest("player_id is required"))
		return
	}

	sse.ServeSSE(w, r, h.hub, playerID)
}
