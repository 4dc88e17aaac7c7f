package decisions

import (
	"errors"
	"net/http"
)

// Domain errors for decision operations.
var (
	ErrNotFound     = errors.New("decision not found")
	ErrDuplicate    = errors.New("decision already exists")
	ErrMissingField = errors.New("mandatory metadata field missing")
	ErrInvalidInput = errors.New("invalid intake request")
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")
)

// MapHTTPStatus maps decision domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrMissingField) || errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}
