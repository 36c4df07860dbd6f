package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/roodle/server/internal/api/sse"
	"github.com/roodle/server/internal/dependencies/clock"
	"github.com/roodle/server/internal/dependencies/random"
	"github.com/roodle/server/internal/model"
	"github.com/roodle/server/internal/services/engine"
	"github.com/roodle/server/internal/services/leaderboard"
	"github.com/roodle/server/internal/services/progression"
	"github.com/roodle/server/internal/services/queue"
	"github.com/roodle/server/internal/services/registry"
	"github.com/roodle/server/internal/services/words"
	"github.com/roodle/server/internal/storage"
	"github.com/roodle/server/internal/storage/memory"
	redisstorage "github.com/roodle/server/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// DefaultFlushInterval is how often dirty progression records are persisted
const DefaultFlushInterval = 30 * time.Second

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Registry           *registry.Registry
	Queue              *queue.Queue
	WordsService       *words.Service
	LeaderboardService *leaderboard.Service
	ProgressionService *progression.Service
	Hub                *sse.Hub
	Engine             *engine.Engine

	// FlushInterval is how often the progression flusher runs
	FlushInterval time.Duration
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// FlushInterval overrides how often dirty records are persisted (optional)
	FlushInterval time.Duration
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	flushInterval := cfg.FlushInterval
	if flushInterval <= 0 {
		flushInterval = DefaultFlushInterval
	}

	return newWithDependencies(store, clock.New(), random.New(), flushInterval, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, flushInterval time.Duration, logger *slog.Logger) *App {
	reg := registry.New()
	q := queue.New()
	wordsService := words.New(store, rnd, logger)
	lbService := leaderboard.New(logger)
	progService := progression.New(store, lbService, logger)
	hub := sse.NewHub(logger)
	eng := engine.New(reg, q, wordsService, progService, lbService, hub, clk, rnd, logger)

	// A dropped event stream is the player's disconnect
	hub.OnDisconnect(func(id model.PlayerID) {
		eng.Disconnect(context.Background(), id)
	})

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		Registry:           reg,
		Queue:              q,
		WordsService:       wordsService,
		LeaderboardService: lbService,
		ProgressionService: progService,
		Hub:                hub,
		Engine:             eng,
		FlushInterval:      flushInterval,
	}
}

// Bootstrap loads persisted state into the in-memory services. Word lists
// are read from the file when a path is given, falling back to the cached
// lists in storage.
func (a *App) Bootstrap(ctx context.Context, wordsPath string) error {
	if wordsPath != "" {
		if err := a.WordsService.LoadFromFile(ctx, wordsPath); err != nil {
			return err
		}
	} else if err := a.WordsService.LoadFromStorage(ctx); err != nil {
		return err
	}

	if err := a.ProgressionService.Warm(ctx); err != nil {
		return err
	}

	entries, err := a.Storage.GetLeaderboard(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrLeaderboardNotFound) {
			return err
		}
		return nil
	}
	a.LeaderboardService.Restore(entries)
	return nil
}
