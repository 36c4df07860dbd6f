package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/roodle/server/internal/model"
	"github.com/roodle/server/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Progression operations

func (s *Storage) SaveProgression(ctx context.Context, rec *model.ProgressionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, progressionKey(rec.PlayerID), data, 0)
	pipe.SAdd(ctx, progressionIndexKey(), string(rec.PlayerID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetProgression(ctx context.Context, id model.PlayerID) (*model.ProgressionRecord, error) {
	data, err := s.client.Get(ctx, progressionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrProgressionNotFound
		}
		return nil, err
	}

	var rec model.ProgressionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Storage) ListProgressions(ctx context.Context) ([]*model.ProgressionRecord, error) {
	ids, err := s.client.SMembers(ctx, progressionIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*model.ProgressionRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := s.GetProgression(ctx, model.PlayerID(id))
		if err != nil {
			if errors.Is(err, model.ErrProgressionNotFound) {
				// Index entry without a record; skip
				continue
			}
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Leaderboard operations

func (s *Storage) SaveLeaderboard(ctx context.Context, entries []model.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, leaderboardKey(), data, 0).Err()
}

func (s *Storage) GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	data, err := s.client.Get(ctx, leaderboardKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrLeaderboardNotFound
		}
		return nil, err
	}

	var entries []model.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Word list operations

func (s *Storage) SaveWordLists(ctx context.Context, lists map[int][]string) error {
	data, err := json.Marshal(lists)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, wordListsKey(), data, 0).Err()
}

func (s *Storage) GetWordLists(ctx context.Context) (map[int][]string, error) {
	data, err := s.client.Get(ctx, wordListsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrWordListsNotFound
		}
		return nil, err
	}

	var lists map[int][]string
	if err := json.Unmarshal(data, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}
