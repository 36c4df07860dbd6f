package handler

import (
	"net/http"

	"github.com/roodle/server/internal/api/response"
	"github.com/roodle/server/internal/services/engine"
)

// SystemHandler handles health and stats endpoints
type SystemHandler struct {
	engine *engine.Engine
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(engine *engine.Engine) *SystemHandler {
	return &SystemHandler{
		engine: engine,
	}
}

// Health handles GET /api/v1/health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}

// Stats handles GET /api/v1/stats
func (h *SystemHandler) Stats(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.engine.CurrentStats())
}
