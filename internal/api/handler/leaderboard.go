package handler

import (
	"net/http"

	"github.com/roodle/server/internal/api/response"
	"github.com/roodle/server/internal/services/engine"
)

// LeaderboardHandler handles the public leaderboard endpoint
type LeaderboardHandler struct {
	engine *engine.Engine
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(engine *engine.Engine) *LeaderboardHandler {
	return &LeaderboardHandler{
		engine: engine,
	}
}

// Get handles GET /api/v1/leaderboard
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.LeaderboardResponse{
		Leaderboard: h.engine.Leaderboard(),
	})
}
