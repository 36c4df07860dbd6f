package model

// EventType identifies the type of an outbound event
type EventType string

const (
	// Registration and progression events
	EventPlayerRegistered EventType = "player:registered"
	EventProgressUpdate   EventType = "player:progress:update"

	// Queue events
	EventQueueJoined EventType = "queue:joined"
	EventQueueLeft   EventType = "queue:left"
	EventQueueUpdate EventType = "queue:update"

	// Game events
	EventGameStart            EventType = "game:start"
	EventGuessResult          EventType = "game:guess:result"
	EventOpponentGuess        EventType = "game:opponent:guess"
	EventTurnStart            EventType = "game:turn:start"
	EventGameEnd              EventType = "game:end"
	EventOpponentDisconnected EventType = "game:opponent:disconnected"

	// Leaderboard events
	EventLeaderboardUpdate EventType = "leaderboard:update"
)

// Event is an outbound notification delivered to one player or broadcast
// to all connected players
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

// RegisteredPayload acknowledges registration with loaded progression
type RegisteredPayload struct {
	PlayerID PlayerID           `json:"player_id"`
	Progress *ProgressionRecord `json:"progress"`
}

// QueuePlayer is one entry in the live queue roster
type QueuePlayer struct {
	Nick   string `json:"nick"`
	Level  int    `json:"level"`
	Rating int    `json:"rating"`
}

// QueueJoinedPayload acknowledges joining the queue
type QueueJoinedPayload struct {
	Position int `json:"position"`
}

// QueueUpdatePayload carries the current waiting roster
type QueueUpdatePayload struct {
	Players []QueuePlayer `json:"players"`
}

// OpponentInfo describes the opposing player at match start
type OpponentInfo struct {
	Nick   string `json:"nick"`
	Level  int    `json:"level"`
	Rating int    `json:"rating"`
}

// GameStartPayload announces a new match to one of its players
type GameStartPayload struct {
	GameID     GameID       `json:"game_id"`
	WordLength int          `json:"word_length"`
	Opponent   OpponentInfo `json:"opponent"`
	YourTurn   bool         `json:"your_turn"`
}

// GuessResultPayload is the submitter-facing result of an accepted guess
type GuessResultPayload struct {
	Guess  string    `json:"guess"`
	Result []Verdict `json:"result"`
	Won    bool      `json:"won"`
}

// OpponentGuessPayload is the opponent-facing notification of a guess
type OpponentGuessPayload struct {
	Guess       string    `json:"guess"`
	Result      []Verdict `json:"result"`
	OpponentWon bool      `json:"opponent_won"`
	YourTurn    bool      `json:"your_turn"`
}

// TurnStartPayload tells a player their turn has begun
type TurnStartPayload struct {
	TurnNumber       int `json:"turn_number"`
	GuessesRemaining int `json:"guesses_remaining"`
}

// GameResult is the per-player outcome of a match
type GameResult string

const (
	GameResultWin  GameResult = "win"
	GameResultLose GameResult = "lose"
	GameResultDraw GameResult = "draw"
)

// GameEndPayload is the terminal event sent to both players
type GameEndPayload struct {
	Result       GameResult         `json:"result"`
	TargetWord   string             `json:"target_word"`
	XPGained     int                `json:"xp_gained"`
	RatingChange int                `json:"rating_change"`
	NewRating    int                `json:"new_rating"`
	Progress     *ProgressionRecord `json:"progress"`
	LeveledUp    bool               `json:"leveled_up"`
	Disconnected bool               `json:"disconnected,omitempty"`
	AllGuesses   []Guess            `json:"all_guesses"`
}

// LeaderboardPayload carries the exposed leaderboard snapshot
type LeaderboardPayload struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// ProgressPayload carries a player's progression record
type ProgressPayload struct {
	Progress *ProgressionRecord `json:"progress"`
}
