package handler

import (
	"net/http"

	"github.com/roodle/server/internal/api/apierr"
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequest creates an invalid request error
func NewInvalidRequest(message string) error {
	return apierr.NewInvalidRequest(message)
}
