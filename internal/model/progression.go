package model

// Starting values for a fresh progression record
const (
	InitialRating = 1000
	InitialLevel  = 1
	MaxLevel      = 100
)

// ProgressionRecord is a player's durable progression state.
// Created lazily on first reference, mutated only by the progression
// engine after a match resolves, never deleted.
type ProgressionRecord struct {
	PlayerID      PlayerID `json:"player_id"`
	TotalXP       int      `json:"total_xp"`
	Level         int      `json:"level"`
	CurrentXP     int      `json:"current_xp"` // XP since last level-up
	Wins          int      `json:"wins"`
	Losses        int      `json:"losses"`
	Draws         int      `json:"draws"`
	GamesPlayed   int      `json:"games_played"`
	Rating        int      `json:"rating"`
	PeakRating    int      `json:"peak_rating"`
	WinStreak     int      `json:"win_streak"`
	BestWinStreak int      `json:"best_win_streak"`
}

// NewProgressionRecord returns a record with default starting values
func NewProgressionRecord(id PlayerID) *ProgressionRecord {
	return &ProgressionRecord{
		PlayerID:   id,
		Level:      InitialLevel,
		Rating:     InitialRating,
		PeakRating: InitialRating,
	}
}

// LeaderboardEntry is a denormalized projection of a ProgressionRecord
// used for ranking
type LeaderboardEntry struct {
	PlayerID    PlayerID `json:"player_id"`
	Nick        string   `json:"nick"`
	Rating      int      `json:"rating"`
	Level       int      `json:"level"`
	Wins        int      `json:"wins"`
	Losses      int      `json:"losses"`
	Draws       int      `json:"draws"`
	GamesPlayed int      `json:"games_played"`
	WinStreak   int      `json:"win_streak"`
}
