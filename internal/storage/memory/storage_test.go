package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/roodle/server/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetProgression() {
	rec := model.NewProgressionRecord("p1")
	rec.Wins = 3

	s.Require().NoError(s.storage.SaveProgression(s.ctx, rec))

	got, err := s.storage.GetProgression(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(3, got.Wins)
	s.Equal(model.InitialRating, got.Rating)
}

func (s *StorageSuite) TestGetProgressionNotFound() {
	_, err := s.storage.GetProgression(s.ctx, "missing")
	s.ErrorIs(err, model.ErrProgressionNotFound)
}

func (s *StorageSuite) TestSaveCopiesRecord() {
	rec := model.NewProgressionRecord("p1")
	s.Require().NoError(s.storage.SaveProgression(s.ctx, rec))

	// Mutating the caller's record must not leak into storage
	rec.Wins = 99

	got, err := s.storage.GetProgression(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(0, got.Wins)
}

func (s *StorageSuite) TestListProgressions() {
	s.Require().NoError(s.storage.SaveProgression(s.ctx, model.NewProgressionRecord("p1")))
	s.Require().NoError(s.storage.SaveProgression(s.ctx, model.NewProgressionRecord("p2")))

	records, err := s.storage.ListProgressions(s.ctx)
	s.Require().NoError(err)
	s.Len(records, 2)
}

func (s *StorageSuite) TestLeaderboardRoundTrip() {
	_, err := s.storage.GetLeaderboard(s.ctx)
	s.ErrorIs(err, model.ErrLeaderboardNotFound)

	entries := []model.LeaderboardEntry{
		{PlayerID: "p1", Nick: "Alice", Rating: 1100},
	}
	s.Require().NoError(s.storage.SaveLeaderboard(s.ctx, entries))

	got, err := s.storage.GetLeaderboard(s.ctx)
	s.Require().NoError(err)
	s.Equal(entries, got)
}

func (s *StorageSuite) TestEmptyLeaderboardIsNotMissing() {
	s.Require().NoError(s.storage.SaveLeaderboard(s.ctx, []model.LeaderboardEntry{}))

	got, err := s.storage.GetLeaderboard(s.ctx)
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *StorageSuite) TestWordListsRoundTrip() {
	_, err := s.storage.GetWordLists(s.ctx)
	s.ErrorIs(err, model.ErrWordListsNotFound)

	lists := map[int][]string{5: {"APPLE", "BREAD"}}
	s.Require().NoError(s.storage.SaveWordLists(s.ctx, lists))

	got, err := s.storage.GetWordLists(s.ctx)
	s.Require().NoError(err)
	s.Equal(lists, got)
}
