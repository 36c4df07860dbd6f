package memory

import (
	"context"
	"sync"

	"github.com/roodle/server/internal/model"
	"github.com/roodle/server/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	progressions map[model.PlayerID]*model.ProgressionRecord
	leaderboard  []model.LeaderboardEntry
	wordLists    map[int][]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		progressions: make(map[model.PlayerID]*model.ProgressionRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Progression operations

func (s *Storage) SaveProgression(ctx context.Context, rec *model.ProgressionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *rec
	s.progressions[rec.PlayerID] = &cp
	return nil
}

func (s *Storage) GetProgression(ctx context.Context, id model.PlayerID) (*model.ProgressionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.progressions[id]
	if !ok {
		return nil, model.ErrProgressionNotFound
	}
	cp := *rec
	return &cp, nil
}

func (s *Storage) ListProgressions(ctx context.Context) ([]*model.ProgressionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]*model.ProgressionRecord, 0, len(s.progressions))
	for _, rec := range s.progressions {
		cp := *rec
		records = append(records, &cp)
	}
	return records, nil
}

// Leaderboard operations

func (s *Storage) SaveLeaderboard(ctx context.Context, entries []model.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]model.LeaderboardEntry, len(entries))
	copy(cp, entries)
	s.leaderboard = cp
	return nil
}

func (s *Storage) GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.leaderboard == nil {
		return nil, model.ErrLeaderboardNotFound
	}
	return append([]model.LeaderboardEntry(nil), s.leaderboard...), nil
}

// Word list operations

func (s *Storage) SaveWordLists(ctx context.Context, lists map[int][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make(map[int][]string, len(lists))
	for length, words := range lists {
		cp[length] = append([]string(nil), words...)
	}
	s.wordLists = cp
	return nil
}

func (s *Storage) GetWordLists(ctx context.Context) (map[int][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.wordLists == nil {
		return nil, model.ErrWordListsNotFound
	}
	cp := make(map[int][]string, len(s.wordLists))
	for length, words := range s.wordLists {
		cp[length] = append([]string(nil), words...)
	}
	return cp, nil
}
