package registry

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/roodle/server/internal/model"
)

type RegistrySuite struct {
	suite.Suite
	registry *Registry
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	s.registry = New()
}

func (s *RegistrySuite) TestAddAndGetPlayer() {
	session := &model.PlayerSession{ID: "p1", Nick: "Alice"}
	s.registry.AddPlayer(session)

	got, ok := s.registry.GetPlayer("p1")
	s.Require().True(ok)
	s.Equal("Alice", got.Nick)
	s.Equal(1, s.registry.PlayerCount())
}

func (s *RegistrySuite) TestAddPlayerReplacesSession() {
	s.registry.AddPlayer(&model.PlayerSession{ID: "p1", Nick: "Alice"})
	s.registry.AddPlayer(&model.PlayerSession{ID: "p1", Nick: "Alice2"})

	got, ok := s.registry.GetPlayer("p1")
	s.Require().True(ok)
	s.Equal("Alice2", got.Nick)
	s.Equal(1, s.registry.PlayerCount())
}

func (s *RegistrySuite) TestRemovePlayer() {
	s.registry.AddPlayer(&model.PlayerSession{ID: "p1"})
	s.registry.RemovePlayer("p1")

	_, ok := s.registry.GetPlayer("p1")
	s.False(ok)

	// Removing again is a no-op
	s.registry.RemovePlayer("p1")
	s.Equal(0, s.registry.PlayerCount())
}

func (s *RegistrySuite) TestMatches() {
	match := &model.Match{ID: "game_1"}
	s.registry.AddMatch(match)

	got, ok := s.registry.GetMatch("game_1")
	s.Require().True(ok)
	s.Equal(match, got)
	s.Equal(1, s.registry.MatchCount())

	s.registry.RemoveMatch("game_1")
	_, ok = s.registry.GetMatch("game_1")
	s.False(ok)
}

func (s *RegistrySuite) TestMatchFor() {
	match := &model.Match{ID: "game_1"}
	s.registry.AddMatch(match)
	s.registry.AddPlayer(&model.PlayerSession{ID: "p1", CurrentGame: "game_1"})
	s.registry.AddPlayer(&model.PlayerSession{ID: "p2"})

	got, ok := s.registry.MatchFor("p1")
	s.Require().True(ok)
	s.Equal(match, got)

	// Player without a current game
	_, ok = s.registry.MatchFor("p2")
	s.False(ok)

	// Unknown player
	_, ok = s.registry.MatchFor("p3")
	s.False(ok)
}

func (s *RegistrySuite) TestMatchForStaleGameID() {
	s.registry.AddPlayer(&model.PlayerSession{ID: "p1", CurrentGame: "game_gone"})

	_, ok := s.registry.MatchFor("p1")
	s.False(ok)
}
