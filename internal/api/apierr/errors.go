// Package apierr maps domain errors onto JSON API error responses.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/roodle/server/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeNotRegistered    = "NOT_REGISTERED"
	CodePlayerNotFound   = "PLAYER_NOT_FOUND"
	CodeAlreadyQueued    = "ALREADY_QUEUED"
	CodeNotQueued        = "NOT_QUEUED"
	CodeAlreadyInGame    = "ALREADY_IN_GAME"
	CodeGameNotFound     = "GAME_NOT_FOUND"
	CodeGameFinished     = "GAME_FINISHED"
	CodeNotYourTurn      = "NOT_YOUR_TURN"
	CodeNotInGame        = "NOT_IN_GAME"
	CodeInvalidGuess     = "INVALID_GUESS"
	CodeNoWordsForLength = "NO_WORDS_FOR_LENGTH"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements the error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// NewInvalidRequest creates a 400 error with a custom message
func NewInvalidRequest(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates a generic 500 error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrNotRegistered):
		return &httpError{http.StatusUnauthorized, APIError{CodeNotRegistered, "Register before playing"}}
	case errors.Is(err, model.ErrPlayerNotFound), errors.Is(err, model.ErrProgressionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrAlreadyQueued):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyQueued, "Already in the queue"}}
	case errors.Is(err, model.ErrNotQueued):
		return &httpError{http.StatusConflict, APIError{CodeNotQueued, "Not in the queue"}}
	case errors.Is(err, model.ErrAlreadyInGame):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyInGame, "Already in an active game"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrGameFinished):
		return &httpError{http.StatusConflict, APIError{CodeGameFinished, "Game is already finished"}}
	case errors.Is(err, model.ErrNotYourTurn):
		return &httpError{http.StatusConflict, APIError{CodeNotYourTurn, "Not your turn"}}
	case errors.Is(err, model.ErrNotInGame):
		return &httpError{http.StatusForbidden, APIError{CodeNotInGame, "You are not part of this game"}}
	case errors.Is(err, model.ErrInvalidGuess), errors.Is(err, model.ErrLengthMismatch):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGuess, "Invalid guess"}}
	case errors.Is(err, model.ErrNoWordsForLength):
		return &httpError{http.StatusBadRequest, APIError{CodeNoWordsForLength, "No words for the requested length"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}
