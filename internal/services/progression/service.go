// Package progression owns each player's durable record and applies rating
// and XP changes after a match resolves.
package progression

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/roodle/server/internal/model"
	"github.com/roodle/server/internal/services/leaderboard"
	"github.com/roodle/server/internal/services/rating"
	"github.com/roodle/server/internal/storage"
)

// XP awards, matching the original balance
const (
	WinBaseXP     = 100
	WinSpeedBonus = 10 // per unused per-player guess
	LossXP        = 20
	DrawXP        = 30
)

// MatchResult describes a resolved match for progression purposes. For a
// draw the winner/loser distinction carries no meaning beyond ordering.
type MatchResult struct {
	Winner     model.PlayerID
	Loser      model.PlayerID
	WinnerNick string
	LoserNick  string
	Draw       bool
	TurnsTaken int // total accepted guesses across both players
	MaxGuesses int // per-player maximum
}

// Reward is the per-player outcome of applying a match result
type Reward struct {
	XPGained    int
	RatingDelta int
	NewRating   int
	LeveledUp   bool
	Record      *model.ProgressionRecord
}

// Service maintains progression records. Records live in memory as the
// source of truth for active play; durable writes happen through a dirty
// set flushed in the background so gameplay never blocks on storage.
type Service struct {
	storage     storage.Storage
	leaderboard *leaderboard.Service
	logger      *slog.Logger

	mu      sync.Mutex
	records map[model.PlayerID]*model.ProgressionRecord
	dirty   map[model.PlayerID]struct{}
	pending []MatchResult
}

// New creates a new progression service
func New(store storage.Storage, lb *leaderboard.Service, logger *slog.Logger) *Service {
	return &Service{
		storage:     store,
		leaderboard: lb,
		logger:      logger.With(slog.String("component", "progression")),
		records:     make(map[model.PlayerID]*model.ProgressionRecord),
		dirty:       make(map[model.PlayerID]struct{}),
	}
}

// Warm loads all persisted records into memory. Called at startup so
// lookups and stats never race a cold cache.
func (s *Service) Warm(ctx context.Context) error {
	records, err := s.storage.ListProgressions(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range records {
		s.records[rec.PlayerID] = rec
	}
	return nil
}

// GetOrCreate returns a player's record, initializing one with default
// values if none exists. The returned record is a copy; the cached record
// is only ever touched under the service lock.
func (s *Service) GetOrCreate(ctx context.Context, id model.PlayerID) (*model.ProgressionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.getOrCreateLocked(ctx, id)
	if err != nil {
		return nil, err
	}
	cp := *rec
	return &cp, nil
}

func (s *Service) getOrCreateLocked(ctx context.Context, id model.PlayerID) (*model.ProgressionRecord, error) {
	if rec, ok := s.records[id]; ok {
		return rec, nil
	}

	rec, err := s.storage.GetProgression(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrProgressionNotFound) {
			return nil, err
		}
		rec = model.NewProgressionRecord(id)
		s.dirty[id] = struct{}{}
	}

	s.records[id] = rec
	return rec, nil
}

// Lookup returns a copy of a player's record without creating one. Returns
// model.ErrProgressionNotFound for unknown players.
func (s *Service) Lookup(ctx context.Context, id model.PlayerID) (*model.ProgressionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		loaded, err := s.storage.GetProgression(ctx, id)
		if err != nil {
			return nil, err
		}
		s.records[id] = loaded
		rec = loaded
	}
	cp := *rec
	return &cp, nil
}

// KnownCount returns the number of records known in memory
func (s *Service) KnownCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// ApplyMatchResult is the single write path for match outcomes: it updates
// both ratings with the rating engine, adjusts counters and streaks, awards
// XP with level-ups, refreshes the leaderboard for both players, and marks
// both records for durable flush.
//
// If a record cannot be loaded the result is queued and retried by the
// background flusher rather than discarded.
func (s *Service) ApplyMatchResult(ctx context.Context, res MatchResult) (winnerReward, loserReward *Reward, err error) {
	s.mu.Lock()
	winnerReward, loserReward, err = s.applyLocked(ctx, res)
	s.mu.Unlock()

	if err != nil {
		return nil, nil, err
	}

	s.leaderboard.Upsert(winnerReward.Record, res.WinnerNick)
	s.leaderboard.Upsert(loserReward.Record, res.LoserNick)
	return winnerReward, loserReward, nil
}

func (s *Service) applyLocked(ctx context.Context, res MatchResult) (*Reward, *Reward, error) {
	winner, err := s.getOrCreateLocked(ctx, res.Winner)
	if err != nil {
		s.queueRetryLocked(res, err)
		return nil, nil, err
	}
	loser, err := s.getOrCreateLocked(ctx, res.Loser)
	if err != nil {
		s.queueRetryLocked(res, err)
		return nil, nil, err
	}

	// Rating update uses both current ratings in one call
	winnerDelta, loserDelta := rating.Update(winner.Rating, loser.Rating, res.Draw)
	winner.Rating += winnerDelta
	loser.Rating += loserDelta
	winner.PeakRating = max(winner.PeakRating, winner.Rating)
	loser.PeakRating = max(loser.PeakRating, loser.Rating)

	// Counters and streaks
	var winnerXP, loserXP int
	if res.Draw {
		winner.Draws++
		loser.Draws++
		winnerXP, loserXP = DrawXP, DrawXP
	} else {
		winner.Wins++
		winner.WinStreak++
		winner.BestWinStreak = max(winner.BestWinStreak, winner.WinStreak)
		loser.Losses++
		loser.WinStreak = 0
		winnerXP = WinBaseXP + (res.MaxGuesses-res.TurnsTaken/2)*WinSpeedBonus
		loserXP = LossXP
	}
	winner.GamesPlayed++
	loser.GamesPlayed++

	winnerLeveled := awardXP(winner, winnerXP)
	loserLeveled := awardXP(loser, loserXP)

	s.dirty[winner.PlayerID] = struct{}{}
	s.dirty[loser.PlayerID] = struct{}{}

	// Rewards carry copies so callers can read them outside the lock
	winnerCopy, loserCopy := *winner, *loser
	return &Reward{
			XPGained:    winnerXP,
			RatingDelta: winnerDelta,
			NewRating:   winner.Rating,
			LeveledUp:   winnerLeveled,
			Record:      &winnerCopy,
		}, &Reward{
			XPGained:    loserXP,
			RatingDelta: loserDelta,
			NewRating:   loser.Rating,
			LeveledUp:   loserLeveled,
			Record:      &loserCopy,
		}, nil
}

func (s *Service) queueRetryLocked(res MatchResult, cause error) {
	s.pending = append(s.pending, res)
	s.logger.Error("match result queued for retry",
		slog.String("winner", string(res.Winner)),
		slog.String("loser", string(res.Loser)),
		slog.String("error", cause.Error()),
	)
}

// awardXP adds XP to a record and applies every level-up the new total
// crosses, resetting the current-cycle XP only on the final landing level
func awardXP(rec *model.ProgressionRecord, xp int) bool {
	rec.TotalXP += xp
	rec.CurrentXP += xp

	leveledUp := false
	for rec.Level < model.MaxLevel {
		next := model.RankForLevel(rec.Level + 1)
		if rec.TotalXP < next.XPNeeded {
			break
		}
		rec.Level++
		rec.CurrentXP = 0
		leveledUp = true
	}
	return leveledUp
}

// FlushPending retries queued match results and writes all dirty records
// plus the leaderboard snapshot to storage. Failed writes stay dirty.
func (s *Service) FlushPending(ctx context.Context) error {
	s.retryQueued(ctx)

	s.mu.Lock()
	toSave := make([]*model.ProgressionRecord, 0, len(s.dirty))
	for id := range s.dirty {
		if rec, ok := s.records[id]; ok {
			cp := *rec
			toSave = append(toSave, &cp)
		}
		delete(s.dirty, id)
	}
	s.mu.Unlock()

	var firstErr error
	for _, rec := range toSave {
		if err := s.storage.SaveProgression(ctx, rec); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			s.mu.Lock()
			s.dirty[rec.PlayerID] = struct{}{}
			s.mu.Unlock()
		}
	}

	if len(toSave) > 0 {
		if err := s.storage.SaveLeaderboard(ctx, s.leaderboard.Snapshot()); err != nil {
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

func (s *Service) retryQueued(ctx context.Context) {
	s.mu.Lock()
	queued := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, res := range queued {
		if _, _, err := s.ApplyMatchResult(ctx, res); err != nil {
			s.logger.Warn("match result retry failed",
				slog.String("winner", string(res.Winner)),
				slog.String("error", err.Error()),
			)
		}
	}
}

// Run flushes dirty state on a fixed interval until the context is
// cancelled, then performs a final flush
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.FlushPending(ctx); err != nil {
				s.logger.Warn("progression flush failed", slog.String("error", err.Error()))
			}
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.FlushPending(flushCtx); err != nil {
				s.logger.Warn("final progression flush failed", slog.String("error", err.Error()))
			}
			cancel()
			return
		}
	}
}
