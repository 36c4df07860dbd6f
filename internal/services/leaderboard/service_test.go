package leaderboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/roodle/server/internal/model"
	"github.com/roodle/server/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(testutil.NopLogger())
}

func (s *ServiceSuite) record(id string, rating int) *model.ProgressionRecord {
	rec := model.NewProgressionRecord(model.PlayerID(id))
	rec.Rating = rating
	return rec
}

func (s *ServiceSuite) TestUpsertSortsByRatingDescending() {
	s.service.Upsert(s.record("p1", 1000), "Alice")
	s.service.Upsert(s.record("p2", 1200), "Bob")
	s.service.Upsert(s.record("p3", 1100), "Carol")

	top := s.service.Top()
	s.Require().Len(top, 3)
	s.Equal(model.PlayerID("p2"), top[0].PlayerID)
	s.Equal(model.PlayerID("p3"), top[1].PlayerID)
	s.Equal(model.PlayerID("p1"), top[2].PlayerID)
}

func (s *ServiceSuite) TestUpsertReplacesExistingEntry() {
	s.service.Upsert(s.record("p1", 1000), "Alice")
	s.service.Upsert(s.record("p1", 1050), "Alice")

	top := s.service.Top()
	s.Require().Len(top, 1)
	s.Equal(1050, top[0].Rating)
}

func (s *ServiceSuite) TestUpsertKeepsNickWhenEmpty() {
	s.service.Upsert(s.record("p1", 1000), "Alice")
	s.service.Upsert(s.record("p1", 1050), "")

	top := s.service.Top()
	s.Require().Len(top, 1)
	s.Equal("Alice", top[0].Nick)
}

func (s *ServiceSuite) TestRetainedAndExposedCaps() {
	for i := 0; i < RetainedSize+20; i++ {
		id := fmt.Sprintf("p%03d", i)
		s.service.Upsert(s.record(id, 1000+i), "nick")
	}

	s.Len(s.service.Snapshot(), RetainedSize)
	s.Len(s.service.Top(), ExposedSize)

	// The weakest entries fell off the retained snapshot
	s.Equal(0, s.service.RankOf("p000"))
	s.Equal(1, s.service.RankOf(model.PlayerID(fmt.Sprintf("p%03d", RetainedSize+19))))
}

func (s *ServiceSuite) TestRankOf() {
	s.service.Upsert(s.record("p1", 1000), "Alice")
	s.service.Upsert(s.record("p2", 1200), "Bob")

	s.Equal(1, s.service.RankOf("p2"))
	s.Equal(2, s.service.RankOf("p1"))
	s.Equal(0, s.service.RankOf("unknown"))
}

func (s *ServiceSuite) TestRestore() {
	s.service.Restore([]model.LeaderboardEntry{
		{PlayerID: "p1", Nick: "Alice", Rating: 1000},
		{PlayerID: "p2", Nick: "Bob", Rating: 1300},
	})

	top := s.service.Top()
	s.Require().Len(top, 2)
	s.Equal(model.PlayerID("p2"), top[0].PlayerID)
}

func (s *ServiceSuite) TestStableTieOrder() {
	s.service.Upsert(s.record("p1", 1000), "Alice")
	s.service.Upsert(s.record("p2", 1000), "Bob")

	// Equal ratings keep insertion order
	top := s.service.Top()
	s.Equal(model.PlayerID("p1"), top[0].PlayerID)
	s.Equal(model.PlayerID("p2"), top[1].PlayerID)
}
