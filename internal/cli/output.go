package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case RegisterResult:
		o.printRegisterResult(v)
	case QueueJoinedResult:
		o.printQueueJoinedResult(v)
	case GuessResult:
		o.printGuessResult(v)
	case ProgressResult:
		o.printProgressResult(v)
	case LeaderboardResult:
		o.printLeaderboardResult(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID              string `json:"id"`
	Nick            string `json:"nick"`
	Level           int    `json:"level"`
	Rating          int    `json:"rating"`
	PreferredLength int    `json:"preferred_length"`
}

// Progress response type (matches API)
type Progress struct {
	PlayerID      string `json:"player_id"`
	TotalXP       int    `json:"total_xp"`
	Level         int    `json:"level"`
	CurrentXP     int    `json:"current_xp"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Draws         int    `json:"draws"`
	GamesPlayed   int    `json:"games_played"`
	Rating        int    `json:"rating"`
	PeakRating    int    `json:"peak_rating"`
	WinStreak     int    `json:"win_streak"`
	BestWinStreak int    `json:"best_win_streak"`
}

// RegisterResult is the registration response
type RegisterResult struct {
	Player   Player    `json:"player"`
	Progress *Progress `json:"progress"`
}

// QueueJoinedResult is the queue join response
type QueueJoinedResult struct {
	Position int `json:"position"`
}

// GuessResult is the guess response
type GuessResult struct {
	Guess  string   `json:"guess"`
	Result []string `json:"result"`
	Won    bool     `json:"won"`
}

// ProgressResult is the progression lookup response
type ProgressResult struct {
	Progress *Progress `json:"progress"`
	Rank     int       `json:"rank"`
	Title    string    `json:"title"`
}

// LeaderboardEntry is one leaderboard row
type LeaderboardEntry struct {
	PlayerID string `json:"player_id"`
	Nick     string `json:"nick"`
	Rating   int    `json:"rating"`
	Level    int    `json:"level"`
	Wins     int    `json:"wins"`
}

// LeaderboardResult is the leaderboard response
type LeaderboardResult struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// HealthResult is the health response
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printRegisterResult(r RegisterResult) {
	fmt.Printf("Registered as %s (%s)\n", r.Player.Nick, r.Player.ID)
	fmt.Printf("Level %d, rating %d\n", r.Player.Level, r.Player.Rating)
}

func (o *Output) printQueueJoinedResult(r QueueJoinedResult) {
	fmt.Printf("Joined queue at position %d\n", r.Position)
}

func (o *Output) printGuessResult(r GuessResult) {
	marks := make([]string, len(r.Result))
	for i, verdict := range r.Result {
		switch verdict {
		case "correct":
			marks[i] = string(r.Guess[i])
		case "present":
			marks[i] = strings.ToLower(string(r.Guess[i]))
		default:
			marks[i] = "."
		}
	}
	fmt.Printf("%s -> %s\n", r.Guess, strings.Join(marks, ""))
	if r.Won {
		fmt.Println("You won!")
	}
}

func (o *Output) printProgressResult(r ProgressResult) {
	p := r.Progress
	if p == nil {
		fmt.Println("No progression record")
		return
	}
	fmt.Printf("Level %d (%s), %d XP\n", p.Level, r.Title, p.TotalXP)
	fmt.Printf("Rating %d (peak %d)\n", p.Rating, p.PeakRating)
	fmt.Printf("Record: %dW / %dL / %dD over %d games\n", p.Wins, p.Losses, p.Draws, p.GamesPlayed)
	fmt.Printf("Streak %d (best %d)\n", p.WinStreak, p.BestWinStreak)
	if r.Rank > 0 {
		fmt.Printf("Leaderboard rank: #%d\n", r.Rank)
	}
}

func (o *Output) printLeaderboardResult(r LeaderboardResult) {
	if len(r.Leaderboard) == 0 {
		fmt.Println("Leaderboard is empty")
		return
	}
	for i, entry := range r.Leaderboard {
		fmt.Printf("%3d. %-20s rating %d, level %d, %d wins\n",
			i+1, entry.Nick, entry.Rating, entry.Level, entry.Wins)
	}
}
