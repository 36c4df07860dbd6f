package progression

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/roodle/server/internal/model"
	"github.com/roodle/server/internal/services/leaderboard"
	"github.com/roodle/server/internal/storage"
	"github.com/roodle/server/internal/storage/memory"
	"github.com/roodle/server/internal/testutil"
)

// flakyStorage wraps memory storage with switchable failures
type flakyStorage struct {
	*memory.Storage
	failGet  bool
	failSave bool
}

var errStorageDown = errors.New("storage down")

func (f *flakyStorage) GetProgression(ctx context.Context, id model.PlayerID) (*model.ProgressionRecord, error) {
	if f.failGet {
		return nil, errStorageDown
	}
	return f.Storage.GetProgression(ctx, id)
}

func (f *flakyStorage) SaveProgression(ctx context.Context, rec *model.ProgressionRecord) error {
	if f.failSave {
		return errStorageDown
	}
	return f.Storage.SaveProgression(ctx, rec)
}

var _ storage.Storage = (*flakyStorage)(nil)

type ServiceSuite struct {
	suite.Suite
	storage     *flakyStorage
	leaderboard *leaderboard.Service
	service     *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = &flakyStorage{Storage: memory.New()}
	s.leaderboard = leaderboard.New(testutil.NopLogger())
	s.service = New(s.storage, s.leaderboard, testutil.NopLogger())
}

func (s *ServiceSuite) winResult(winner, loser string) MatchResult {
	return MatchResult{
		Winner:     model.PlayerID(winner),
		Loser:      model.PlayerID(loser),
		WinnerNick: "nick-" + winner,
		LoserNick:  "nick-" + loser,
		TurnsTaken: 4,
		MaxGuesses: 6,
	}
}

func (s *ServiceSuite) TestGetOrCreateDefaults() {
	rec, err := s.service.GetOrCreate(context.Background(), "p1")
	s.Require().NoError(err)

	s.Equal(model.PlayerID("p1"), rec.PlayerID)
	s.Equal(model.InitialLevel, rec.Level)
	s.Equal(model.InitialRating, rec.Rating)
	s.Equal(model.InitialRating, rec.PeakRating)
	s.Equal(0, rec.GamesPlayed)
}

func (s *ServiceSuite) TestGetOrCreateLoadsPersisted() {
	saved := model.NewProgressionRecord("p1")
	saved.Wins = 7
	s.Require().NoError(s.storage.SaveProgression(context.Background(), saved))

	rec, err := s.service.GetOrCreate(context.Background(), "p1")
	s.Require().NoError(err)
	s.Equal(7, rec.Wins)
}

func (s *ServiceSuite) TestLookupUnknown() {
	_, err := s.service.Lookup(context.Background(), "nobody")
	s.ErrorIs(err, model.ErrProgressionNotFound)
}

func (s *ServiceSuite) TestWarm() {
	saved := model.NewProgressionRecord("p1")
	s.Require().NoError(s.storage.SaveProgression(context.Background(), saved))

	s.Require().NoError(s.service.Warm(context.Background()))
	s.Equal(1, s.service.KnownCount())
}

func (s *ServiceSuite) TestApplyWinUpdatesRatingsAndCounters() {
	winnerReward, loserReward, err := s.service.ApplyMatchResult(context.Background(), s.winResult("w", "l"))
	s.Require().NoError(err)

	// Equal starting ratings move by half the K factor
	s.Equal(16, winnerReward.RatingDelta)
	s.Equal(-16, loserReward.RatingDelta)
	s.Equal(1016, winnerReward.NewRating)
	s.Equal(984, loserReward.NewRating)

	// XP: base plus speed bonus for unused guesses
	s.Equal(140, winnerReward.XPGained)
	s.Equal(LossXP, loserReward.XPGained)

	s.Equal(1, winnerReward.Record.Wins)
	s.Equal(1, winnerReward.Record.WinStreak)
	s.Equal(1, loserReward.Record.Losses)
	s.Equal(0, loserReward.Record.WinStreak)
	s.Equal(1, winnerReward.Record.GamesPlayed)
	s.Equal(1, loserReward.Record.GamesPlayed)
}

func (s *ServiceSuite) TestPeakRatingOnlyRises() {
	_, loserReward, err := s.service.ApplyMatchResult(context.Background(), s.winResult("w", "l"))
	s.Require().NoError(err)

	s.Equal(984, loserReward.Record.Rating)
	s.Equal(model.InitialRating, loserReward.Record.PeakRating)
}

func (s *ServiceSuite) TestApplyDraw() {
	winnerReward, loserReward, err := s.service.ApplyMatchResult(context.Background(), MatchResult{
		Winner: "a", Loser: "b", Draw: true, TurnsTaken: 12, MaxGuesses: 6,
	})
	s.Require().NoError(err)

	s.Equal(0, winnerReward.RatingDelta)
	s.Equal(0, loserReward.RatingDelta)
	s.Equal(DrawXP, winnerReward.XPGained)
	s.Equal(DrawXP, loserReward.XPGained)
	s.Equal(1, winnerReward.Record.Draws)
	s.Equal(1, loserReward.Record.Draws)
	s.Equal(0, winnerReward.Record.Wins)
}

func (s *ServiceSuite) TestWinStreaksAccumulateAndReset() {
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _, err := s.service.ApplyMatchResult(ctx, s.winResult("a", "b"))
		s.Require().NoError(err)
	}
	_, loserReward, err := s.service.ApplyMatchResult(ctx, s.winResult("b", "a"))
	s.Require().NoError(err)

	s.Equal(0, loserReward.Record.WinStreak)
	s.Equal(3, loserReward.Record.BestWinStreak)
}

func (s *ServiceSuite) TestLevelUpResetsCurrentXP() {
	// 210 XP crosses both the level 2 (150) and level 3 (200) thresholds
	winnerReward, _, err := s.service.ApplyMatchResult(context.Background(), MatchResult{
		Winner: "w", Loser: "l", TurnsTaken: 2, MaxGuesses: 12,
	})
	s.Require().NoError(err)

	s.Equal(210, winnerReward.XPGained)
	s.True(winnerReward.LeveledUp)
	s.Equal(3, winnerReward.Record.Level)
	s.Equal(210, winnerReward.Record.TotalXP)
	s.Equal(0, winnerReward.Record.CurrentXP)
}

func (s *ServiceSuite) TestNoLevelUpBelowThreshold() {
	winnerReward, _, err := s.service.ApplyMatchResult(context.Background(), s.winResult("w", "l"))
	s.Require().NoError(err)

	s.False(winnerReward.LeveledUp)
	s.Equal(model.InitialLevel, winnerReward.Record.Level)
	s.Equal(140, winnerReward.Record.CurrentXP)
}

func (s *ServiceSuite) TestReturnedRecordsAreDetachedCopies() {
	ctx := context.Background()

	before, err := s.service.GetOrCreate(ctx, "w")
	s.Require().NoError(err)

	winnerReward, _, err := s.service.ApplyMatchResult(ctx, s.winResult("w", "l"))
	s.Require().NoError(err)

	// The record handed out before the match is a snapshot, not a live view
	s.Equal(0, before.Wins)
	s.Equal(model.InitialRating, before.Rating)

	// Mutating returned records never leaks back into the service
	winnerReward.Record.Rating = 9999
	rec, err := s.service.Lookup(ctx, "w")
	s.Require().NoError(err)
	s.Equal(1016, rec.Rating)

	rec.Wins = 42
	again, err := s.service.Lookup(ctx, "w")
	s.Require().NoError(err)
	s.Equal(1, again.Wins)
}

func (s *ServiceSuite) TestApplyRefreshesLeaderboard() {
	_, _, err := s.service.ApplyMatchResult(context.Background(), s.winResult("w", "l"))
	s.Require().NoError(err)

	top := s.leaderboard.Top()
	s.Require().Len(top, 2)
	s.Equal(model.PlayerID("w"), top[0].PlayerID)
	s.Equal("nick-w", top[0].Nick)
	s.Equal(model.PlayerID("l"), top[1].PlayerID)
}

func (s *ServiceSuite) TestFlushPersistsDirtyRecords() {
	ctx := context.Background()
	_, _, err := s.service.ApplyMatchResult(ctx, s.winResult("w", "l"))
	s.Require().NoError(err)

	s.Require().NoError(s.service.FlushPending(ctx))

	saved, err := s.storage.GetProgression(ctx, "w")
	s.Require().NoError(err)
	s.Equal(1, saved.Wins)
	s.Equal(1016, saved.Rating)

	entries, err := s.storage.GetLeaderboard(ctx)
	s.Require().NoError(err)
	s.Len(entries, 2)
}

func (s *ServiceSuite) TestFlushKeepsDirtyOnFailure() {
	ctx := context.Background()
	_, _, err := s.service.ApplyMatchResult(ctx, s.winResult("w", "l"))
	s.Require().NoError(err)

	s.storage.failSave = true
	s.Error(s.service.FlushPending(ctx))

	// Records stayed dirty and save on the next flush
	s.storage.failSave = false
	s.Require().NoError(s.service.FlushPending(ctx))

	saved, err := s.storage.GetProgression(ctx, "w")
	s.Require().NoError(err)
	s.Equal(1, saved.Wins)
}

func (s *ServiceSuite) TestUnreadableRecordQueuesResultForRetry() {
	ctx := context.Background()

	s.storage.failGet = true
	_, _, err := s.service.ApplyMatchResult(ctx, s.winResult("w", "l"))
	s.Require().Error(err)

	// Once storage recovers the queued result applies on flush
	s.storage.failGet = false
	s.Require().NoError(s.service.FlushPending(ctx))

	rec, err := s.service.Lookup(ctx, "w")
	s.Require().NoError(err)
	s.Equal(1, rec.Wins)
}
