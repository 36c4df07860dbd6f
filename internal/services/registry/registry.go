// Package registry tracks connected player sessions and in-flight matches.
package registry

import (
	"sync"

	"github.com/roodle/server/internal/model"
)

// Registry is the set of connected players and active matches, plus the
// mapping from player to owning match
type Registry struct {
	mu      sync.RWMutex
	players map[model.PlayerID]*model.PlayerSession
	matches map[model.GameID]*model.Match
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		players: make(map[model.PlayerID]*model.PlayerSession),
		matches: make(map[model.GameID]*model.Match),
	}
}

// AddPlayer registers a connected player session, replacing any previous
// session for the same id
func (r *Registry) AddPlayer(session *model.PlayerSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players[session.ID] = session
}

// GetPlayer returns a connected player's session
func (r *Registry) GetPlayer(id model.PlayerID) (*model.PlayerSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.players[id]
	return session, ok
}

// RemovePlayer drops a player session. Safe to call for unknown players.
func (r *Registry) RemovePlayer(id model.PlayerID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.players, id)
}

// PlayerCount returns the number of connected players
func (r *Registry) PlayerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

// AddMatch registers an in-flight match
func (r *Registry) AddMatch(match *model.Match) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches[match.ID] = match
}

// GetMatch returns an in-flight match by id
func (r *Registry) GetMatch(id model.GameID) (*model.Match, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	match, ok := r.matches[id]
	return match, ok
}

// RemoveMatch tears down a resolved match
func (r *Registry) RemoveMatch(id model.GameID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.matches, id)
}

// MatchCount returns the number of in-flight matches
func (r *Registry) MatchCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.matches)
}

// MatchFor returns the active match a player is part of, if any
func (r *Registry) MatchFor(id model.PlayerID) (*model.Match, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.players[id]
	if !ok || session.CurrentGame == "" {
		return nil, false
	}
	match, ok := r.matches[session.CurrentGame]
	return match, ok
}
