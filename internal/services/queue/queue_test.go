package queue

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/roodle/server/internal/model"
)

type QueueSuite struct {
	suite.Suite
	queue *Queue
}

func TestQueueSuite(t *testing.T) {
	suite.Run(t, new(QueueSuite))
}

func (s *QueueSuite) SetupTest() {
	s.queue = New()
}

func (s *QueueSuite) session(id string) *model.PlayerSession {
	return &model.PlayerSession{ID: model.PlayerID(id), Nick: "nick-" + id}
}

func (s *QueueSuite) TestEnqueueAndLen() {
	s.Require().NoError(s.queue.Enqueue(s.session("p1")))
	s.Require().NoError(s.queue.Enqueue(s.session("p2")))

	s.Equal(2, s.queue.Len())
	s.True(s.queue.Contains("p1"))
	s.True(s.queue.Contains("p2"))
}

func (s *QueueSuite) TestEnqueueDuplicateRejected() {
	s.Require().NoError(s.queue.Enqueue(s.session("p1")))

	err := s.queue.Enqueue(s.session("p1"))
	s.ErrorIs(err, model.ErrAlreadyQueued)
	s.Equal(1, s.queue.Len())
}

func (s *QueueSuite) TestDequeue() {
	s.Require().NoError(s.queue.Enqueue(s.session("p1")))

	s.Require().NoError(s.queue.Dequeue("p1"))
	s.False(s.queue.Contains("p1"))
	s.Equal(0, s.queue.Len())
}

func (s *QueueSuite) TestDequeueAbsent() {
	err := s.queue.Dequeue("missing")
	s.ErrorIs(err, model.ErrNotQueued)
}

func (s *QueueSuite) TestTryPairNeedsTwo() {
	_, _, ok := s.queue.TryPair()
	s.False(ok)

	s.Require().NoError(s.queue.Enqueue(s.session("p1")))
	_, _, ok = s.queue.TryPair()
	s.False(ok)
	s.Equal(1, s.queue.Len())
}

func (s *QueueSuite) TestTryPairFIFOOrder() {
	s.Require().NoError(s.queue.Enqueue(s.session("p1")))
	s.Require().NoError(s.queue.Enqueue(s.session("p2")))
	s.Require().NoError(s.queue.Enqueue(s.session("p3")))

	first, second, ok := s.queue.TryPair()
	s.Require().True(ok)
	s.Equal(model.PlayerID("p1"), first.ID)
	s.Equal(model.PlayerID("p2"), second.ID)

	// Paired players are gone; the third keeps waiting
	s.Equal(1, s.queue.Len())
	s.False(s.queue.Contains("p1"))
	s.False(s.queue.Contains("p2"))
	s.True(s.queue.Contains("p3"))
}

func (s *QueueSuite) TestDequeueMiddlePreservesOrder() {
	s.Require().NoError(s.queue.Enqueue(s.session("p1")))
	s.Require().NoError(s.queue.Enqueue(s.session("p2")))
	s.Require().NoError(s.queue.Enqueue(s.session("p3")))

	s.Require().NoError(s.queue.Dequeue("p2"))

	first, second, ok := s.queue.TryPair()
	s.Require().True(ok)
	s.Equal(model.PlayerID("p1"), first.ID)
	s.Equal(model.PlayerID("p3"), second.ID)
}

func (s *QueueSuite) TestRoster() {
	p1 := s.session("p1")
	p1.Level = 3
	p1.Rating = 1100
	s.Require().NoError(s.queue.Enqueue(p1))
	s.Require().NoError(s.queue.Enqueue(s.session("p2")))

	roster := s.queue.Roster()
	s.Require().Len(roster, 2)
	s.Equal("nick-p1", roster[0].Nick)
	s.Equal(3, roster[0].Level)
	s.Equal(1100, roster[0].Rating)
	s.Equal("nick-p2", roster[1].Nick)
}
