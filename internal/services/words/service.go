// Package words provides the length-indexed word source used to pick
// match targets.
package words

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/roodle/server/internal/dependencies/random"
	"github.com/roodle/server/internal/model"
	"github.com/roodle/server/internal/storage"
)

// Supported target word lengths
const (
	MinLength     = 4
	MaxLength     = 7
	DefaultLength = 5
)

// Service provides random target words indexed by length
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger

	mu    sync.RWMutex
	lists map[int][]string
}

// New creates a new word source
func New(store storage.Storage, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		random:  rnd,
		logger:  logger,
		lists:   make(map[int][]string),
	}
}

// LoadFromFile loads words from a file (one word per line), indexes them by
// length, and caches them to storage for future use
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	lists := make(map[int][]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		length := len([]rune(word))
		if length < MinLength || length > MaxLength {
			continue
		}
		lists[length] = append(lists[length], word)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	s.setLists(lists)

	// Cache to storage so a restart can load without the file
	if err := s.storage.SaveWordLists(ctx, lists); err != nil {
		s.logger.Warn("failed to cache word lists", slog.String("error", err.Error()))
	}

	s.logger.Info("word lists loaded", slog.Int("lengths", len(lists)))
	return nil
}

// LoadFromStorage loads previously cached word lists
func (s *Service) LoadFromStorage(ctx context.Context) error {
	lists, err := s.storage.GetWordLists(ctx)
	if err != nil {
		return err
	}
	s.setLists(lists)
	return nil
}

// LoadLists replaces the word lists directly (used in tests)
func (s *Service) LoadLists(lists map[int][]string) {
	s.setLists(lists)
}

func (s *Service) setLists(lists map[int][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists = lists
}

// PickRandom returns a random word of the given length
func (s *Service) PickRandom(length int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.lists[length]
	if len(list) == 0 {
		return "", model.ErrNoWordsForLength
	}
	return list[s.random.Intn(len(list))], nil
}

// HasLength reports whether any words of the given length are loaded
func (s *Service) HasLength(length int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lists[length]) > 0
}
