package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/roodle/server/internal/api/request"
	"github.com/roodle/server/internal/api/response"
	"github.com/roodle/server/internal/model"
	"github.com/roodle/server/internal/services/engine"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	engine *engine.Engine
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(engine *engine.Engine) *PlayerHandler {
	return &PlayerHandler{
		engine: engine,
	}
}

// Register handles POST /api/v1/players/register
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequest("invalid request body"))
		return
	}

	session, record, err := h.engine.Register(r.Context(), req.PlayerID, req.Nick, req.PreferredLength)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RegisterResponse{
		Player:   response.PlayerFromSession(session),
		Progress: record,
	})
}

// Progress handles GET /api/v1/players/{player_id}/progress
func (h *PlayerHandler) Progress(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	record, err := h.engine.Progress(r.Context(), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ProgressResponse{
		Progress: record,
		Rank:     h.engine.LeaderboardRank(playerID),
		Title:    model.RankForLevel(record.Level).Title,
	})
}
