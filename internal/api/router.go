package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/roodle/server/internal/api/handler"
	"github.com/roodle/server/internal/api/middleware"
	"github.com/roodle/server/internal/api/sse"
	"github.com/roodle/server/internal/services/engine"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger *slog.Logger
	Engine *engine.Engine
	Hub    *sse.Hub
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.Engine)
	queueHandler := handler.NewQueueHandler(cfg.Engine)
	gameHandler := handler.NewGameHandler(cfg.Engine)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.Engine)
	eventsHandler := handler.NewEventsHandler(cfg.Hub)
	systemHandler := handler.NewSystemHandler(cfg.Engine)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/{player_id}/progress", playerHandler.Progress).Methods(http.MethodGet)

	// Matchmaking routes
	api.HandleFunc("/queue/join", queueHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/queue/leave", queueHandler.Leave).Methods(http.MethodPost)

	// Game routes
	api.HandleFunc("/games/{game_id}/guess", gameHandler.Guess).Methods(http.MethodPost)

	// Leaderboard
	api.HandleFunc("/leaderboard", leaderboardHandler.Get).Methods(http.MethodGet)

	// Event stream (the per-player connection)
	api.HandleFunc("/events", eventsHandler.Stream).Methods(http.MethodGet)

	// Operational endpoints
	api.HandleFunc("/health", systemHandler.Health).Methods(http.MethodGet)
	api.HandleFunc("/stats", systemHandler.Stats).Methods(http.MethodGet)

	return r
}
