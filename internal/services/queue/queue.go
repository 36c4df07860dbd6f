// Package queue implements the FIFO matchmaking queue.
package queue

import (
	"sync"

	"github.com/roodle/server/internal/model"
)

// Queue is an ordered set of waiting players. Insertion order is the
// tie-break for pairing; there is no skill-based matching.
type Queue struct {
	mu      sync.Mutex
	entries []*model.PlayerSession
	byID    map[model.PlayerID]struct{}
}

// New creates an empty queue
func New() *Queue {
	return &Queue{
		byID: make(map[model.PlayerID]struct{}),
	}
}

// Enqueue adds a waiting player. Returns ErrAlreadyQueued without
// duplicating the roster if the player is already present.
func (q *Queue) Enqueue(player *model.PlayerSession) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.byID[player.ID]; ok {
		return model.ErrAlreadyQueued
	}

	q.entries = append(q.entries, player)
	q.byID[player.ID] = struct{}{}
	return nil
}

// Dequeue removes a player. Returns ErrNotQueued if absent; safe to call
// on disconnect.
func (q *Queue) Dequeue(id model.PlayerID) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.byID[id]; !ok {
		return model.ErrNotQueued
	}

	for i, entry := range q.entries {
		if entry.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			break
		}
	}
	delete(q.byID, id)
	return nil
}

// TryPair removes and returns the two longest-waiting players if at least
// two are waiting
func (q *Queue) TryPair() (first, second *model.PlayerSession, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.entries) < 2 {
		return nil, nil, false
	}

	first, second = q.entries[0], q.entries[1]
	q.entries = q.entries[2:]
	delete(q.byID, first.ID)
	delete(q.byID, second.ID)
	return first, second, true
}

// Contains reports whether a player is waiting
func (q *Queue) Contains(id model.PlayerID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, ok := q.byID[id]
	return ok
}

// Len returns the number of waiting players
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Roster returns the current waiting roster in FIFO order
func (q *Queue) Roster() []model.QueuePlayer {
	q.mu.Lock()
	defer q.mu.Unlock()

	roster := make([]model.QueuePlayer, 0, len(q.entries))
	for _, entry := range q.entries {
		roster = append(roster, model.QueuePlayer{
			Nick:   entry.Nick,
			Level:  entry.Level,
			Rating: entry.Rating,
		})
	}
	return roster
}
