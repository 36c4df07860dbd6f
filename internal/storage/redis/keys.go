package redis

import (
	"fmt"

	"github.com/roodle/server/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "roodle"

// progressionKey returns the Redis key for a ProgressionRecord
func progressionKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:progression:%s", keyPrefix, id)
}

// progressionIndexKey returns the Redis key for the SET of known player ids
func progressionIndexKey() string {
	return fmt.Sprintf("%s:idx:progressions", keyPrefix)
}

// leaderboardKey returns the Redis key for the leaderboard snapshot
func leaderboardKey() string {
	return fmt.Sprintf("%s:leaderboard", keyPrefix)
}

// wordListsKey returns the Redis key for the word lists
func wordListsKey() string {
	return fmt.Sprintf("%s:wordlists", keyPrefix)
}
