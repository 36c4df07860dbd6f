package storage

import (
	"context"

	"github.com/roodle/server/internal/model"
)

// Storage defines the interface for durable data. Only progression state,
// the leaderboard snapshot, and the word lists are persisted; sessions,
// queue entries, and matches are ephemeral.
type Storage interface {
	// Progression operations
	SaveProgression(ctx context.Context, rec *model.ProgressionRecord) error
	GetProgression(ctx context.Context, id model.PlayerID) (*model.ProgressionRecord, error)
	ListProgressions(ctx context.Context) ([]*model.ProgressionRecord, error)

	// Leaderboard operations
	SaveLeaderboard(ctx context.Context, entries []model.LeaderboardEntry) error
	GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)

	// Word list operations
	SaveWordLists(ctx context.Context, lists map[int][]string) error
	GetWordLists(ctx context.Context) (map[int][]string, error)
}
