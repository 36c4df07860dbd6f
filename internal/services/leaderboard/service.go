// Package leaderboard maintains the ranked top-N projection of all known
// progression records.
package leaderboard

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/roodle/server/internal/model"
)

const (
	// RetainedSize is the maximum number of entries kept in the snapshot
	RetainedSize = 100
	// ExposedSize is the number of entries returned to queries
	ExposedSize = 50
)

// Service maintains the ranked leaderboard snapshot
type Service struct {
	logger *slog.Logger

	mu      sync.RWMutex
	entries []model.LeaderboardEntry
}

// New creates a new leaderboard service
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger.With(slog.String("component", "leaderboard")),
	}
}

// Restore replaces the snapshot wholesale (used at startup from storage)
func (s *Service) Restore(entries []model.LeaderboardEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]model.LeaderboardEntry(nil), entries...)
	s.sortAndCapLocked()
}

// Upsert rebuilds a player's entry from its progression record and re-sorts.
// Ties are broken by stable insertion order.
func (s *Service) Upsert(rec *model.ProgressionRecord, nick string) {
	entry := model.LeaderboardEntry{
		PlayerID:    rec.PlayerID,
		Nick:        nick,
		Rating:      rec.Rating,
		Level:       rec.Level,
		Wins:        rec.Wins,
		Losses:      rec.Losses,
		Draws:       rec.Draws,
		GamesPlayed: rec.GamesPlayed,
		WinStreak:   rec.WinStreak,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.entries {
		if s.entries[i].PlayerID == rec.PlayerID {
			// Keep the existing nick if the caller has none
			if entry.Nick == "" {
				entry.Nick = s.entries[i].Nick
			}
			s.entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		s.entries = append(s.entries, entry)
	}

	s.sortAndCapLocked()
}

// Top returns the exposed head of the snapshot, rating descending
func (s *Service) Top() []model.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.entries)
	if n > ExposedSize {
		n = ExposedSize
	}
	return append([]model.LeaderboardEntry(nil), s.entries[:n]...)
}

// Snapshot returns the full retained snapshot for persistence
func (s *Service) Snapshot() []model.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.LeaderboardEntry(nil), s.entries...)
}

// RankOf returns a player's 1-based position in the retained snapshot, or 0
// if the player is not ranked
func (s *Service) RankOf(id model.PlayerID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.entries {
		if s.entries[i].PlayerID == id {
			return i + 1
		}
	}
	return 0
}

func (s *Service) sortAndCapLocked() {
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].Rating > s.entries[j].Rating
	})
	if len(s.entries) > RetainedSize {
		s.entries = s.entries[:RetainedSize]
	}
}
