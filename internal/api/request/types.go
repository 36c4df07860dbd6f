package request

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	PlayerID        string `json:"player_id,omitempty"`
	Nick            string `json:"nick"`
	PreferredLength int    `json:"preferred_length,omitempty"`
}

// JoinQueueRequest is the request body for joining the matchmaking queue
type JoinQueueRequest struct {
	PlayerID   string `json:"player_id"`
	WordLength int    `json:"word_length,omitempty"`
}

// LeaveQueueRequest is the request body for leaving the matchmaking queue
type LeaveQueueRequest struct {
	PlayerID string `json:"player_id"`
}

// GuessRequest is the request body for submitting a guess
type GuessRequest struct {
	PlayerID string `json:"player_id"`
	Word     string `json:"word"`
}
