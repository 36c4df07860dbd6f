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

// GameHandler handles in-game endpoints
type GameHandler struct {
	engine *engine.Engine
}

// NewGameHandler creates a new game handler
func NewGameHandler(engine *engine.Engine) *GameHandler {
	return &GameHandler{
		engine: engine,
	}
}

// Guess handles POST /api/v1/games/{game_id}/guess
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequest("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequest("player_id is required"))
		return
	}
	if req.Word == "" {
		WriteError(w, NewInvalidRequest("word is required"))
		return
	}

	result, err := h.engine.SubmitGuess(r.Context(), model.PlayerID(req.PlayerID), gameID, req.Word)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GuessResponse{
		Guess:  result.Guess,
		Result: result.Result,
		Won:    result.Won,
	})
}
