package model

import "time"

// MatchStatus represents the current phase of a match
type MatchStatus string

const (
	MatchStatusActive   MatchStatus = "active"
	MatchStatusFinished MatchStatus = "finished"
)

// Verdict is the per-letter classification of a guess
type Verdict string

const (
	VerdictCorrect Verdict = "correct" // right letter, right position
	VerdictPresent Verdict = "present" // right letter, wrong position
	VerdictAbsent  Verdict = "absent"  // letter not in target
)

// Guess is one scored guess in a match's shared log
type Guess struct {
	Player PlayerID  `json:"player_id"`
	Nick   string    `json:"nick"`
	Word   string    `json:"word"`
	Result []Verdict `json:"result"`
	Turn   int       `json:"turn"` // 1-based sequence number across both players
}

// MatchPlayer is the per-player sub-state within a match
type MatchPlayer struct {
	ID       PlayerID
	Nick     string
	Guesses  int
	Finished bool
	Won      bool
}

// Match is the authoritative state of one game between exactly two players.
// Players occupy two named slots so "the opponent" is a structural lookup.
type Match struct {
	ID         GameID
	TargetWord string
	WordLength int
	MaxGuesses int // per-player; the shared budget is twice this

	Players     [2]MatchPlayer
	CurrentTurn PlayerID
	TurnNumber  int // total accepted guesses so far
	Status      MatchStatus
	AllGuesses  []Guess
	CreatedAt   time.Time
}

// GuessBudget returns the shared guess budget across both players
func (m *Match) GuessBudget() int {
	return m.MaxGuesses * 2
}

// BudgetExhausted reports whether the shared guess budget is used up
func (m *Match) BudgetExhausted() bool {
	return m.TurnNumber >= m.GuessBudget()
}

// PlayerState returns the sub-state for the given player, or nil if the
// player is not part of this match
func (m *Match) PlayerState(id PlayerID) *MatchPlayer {
	for i := range m.Players {
		if m.Players[i].ID == id {
			return &m.Players[i]
		}
	}
	return nil
}

// Opponent returns the other player's sub-state, or nil if id is not in
// this match
func (m *Match) Opponent(id PlayerID) *MatchPlayer {
	switch id {
	case m.Players[0].ID:
		return &m.Players[1]
	case m.Players[1].ID:
		return &m.Players[0]
	}
	return nil
}

// HasPlayer reports whether the given player occupies one of the two slots
func (m *Match) HasPlayer(id PlayerID) bool {
	return m.PlayerState(id) != nil
}
