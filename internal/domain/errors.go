package domain

import "errors"

// Sentinel errors shared across services and delivery.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict is returned when a write collides with existing state: a registration
	// that would double-book the user, a repeated vote, a thread key owned by another pair.
	ErrConflict = errors.New("conflict")
)
