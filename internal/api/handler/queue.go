package handler

import (
	"encoding/json"
	"net/http"

	"github.com/roodle/server/internal/api/request"
	"github.com/roodle/server/internal/api/response"
	"github.com/roodle/server/internal/model"
	"github.com/roodle/server/internal/services/engine"
)

// QueueHandler handles matchmaking queue endpoints
type QueueHandler struct {
	engine *engine.Engine
}

// NewQueueHandler creates a new queue handler
func NewQueueHandler(engine *engine.Engine) *QueueHandler {
	return &QueueHandler{
		engine: engine,
	}
}

// Join handles POST /api/v1/queue/join
func (h *QueueHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req request.JoinQueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequest("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequest("player_id is required"))
		return
	}

	position, err := h.engine.JoinQueue(r.Context(), model.PlayerID(req.PlayerID), req.WordLength)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.QueueJoinedResponse{Position: position})
}

// Leave handles POST /api/v1/queue/leave
func (h *QueueHandler) Leave(w http.ResponseWriter, r *http.Request) {
	var req request.LeaveQueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequest("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequest("player_id is required"))
		return
	}

	h.engine.LeaveQueue(r.Context(), model.PlayerID(req.PlayerID))

	response.NoContent(w)
}
