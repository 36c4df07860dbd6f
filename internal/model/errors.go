package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrNotRegistered  = errors.New("player is not registered")
	ErrPlayerNotFound = errors.New("player not found")

	// Queue errors
	ErrAlreadyQueued = errors.New("player is already queued")
	ErrNotQueued     = errors.New("player is not queued")
	ErrAlreadyInGame = errors.New("player is already in a game")

	// Match errors
	ErrGameNotFound   = errors.New("game not found")
	ErrGameFinished   = errors.New("game is already finished")
	ErrNotYourTurn    = errors.New("not this player's turn")
	ErrNotInGame      = errors.New("player is not part of this game")
	ErrInvalidGuess   = errors.New("invalid guess")
	ErrLengthMismatch = errors.New("guess length does not match target length")

	// Word source errors
	ErrNoWordsForLength = errors.New("no words available for the requested length")

	// Storage errors
	ErrProgressionNotFound = errors.New("progression record not found")
	ErrLeaderboardNotFound = errors.New("leaderboard snapshot not found")
	ErrWordListsNotFound   = errors.New("word lists not found")
)
