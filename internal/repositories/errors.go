package repositories

import "errors"

var (
	// ErrInvalidID is returned when a supplied identifier cannot be parsed
	// into the store's native id type. No store access happens in that case.
	ErrInvalidID = errors.New("invalid id format")

	// ErrNotFound is returned when a point lookup matches no document.
	ErrNotFound = errors.New("document not found")
)
