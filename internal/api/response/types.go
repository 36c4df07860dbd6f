package response

import (
	"github.com/roodle/server/internal/model"
)

// Player represents a registered player in API responses
type Player struct {
	ID              string `json:"id"`
	Nick            string `json:"nick"`
	Level           int    `json:"level"`
	Rating          int    `json:"rating"`
	PreferredLength int    `json:"preferred_length"`
}

// PlayerFromSession converts a model.PlayerSession to a response Player
func PlayerFromSession(s *model.PlayerSession) Player {
	return Player{
		ID:              string(s.ID),
		Nick:            s.Nick,
		Level:           s.Level,
		Rating:          s.Rating,
		PreferredLength: s.PreferredLength,
	}
}

// RegisterResponse is the response for player registration
type RegisterResponse struct {
	Player   Player                   `json:"player"`
	Progress *model.ProgressionRecord `json:"progress"`
}

// QueueJoinedResponse is the response for joining the queue
type QueueJoinedResponse struct {
	Position int `json:"position"`
}

// GuessResponse is the response for an accepted guess
type GuessResponse struct {
	Guess  string          `json:"guess"`
	Result []model.Verdict `json:"result"`
	Won    bool            `json:"won"`
}

// ProgressResponse is the response for a player progression lookup
type ProgressResponse struct {
	Progress *model.ProgressionRecord `json:"progress"`
	Rank     int                      `json:"rank"`
	Title    string                   `json:"title"`
}

// LeaderboardResponse is the response for the leaderboard endpoint
type LeaderboardResponse struct {
	Leaderboard []model.LeaderboardEntry `json:"leaderboard"`
}

// HealthResponse is the response for the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}
