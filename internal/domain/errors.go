package domain

import "errors"

// Sentinel errors for the four domain failure kinds. Callers classify with
// errors.Is; the wrapped message carries the user-facing detail.
var (
	// ErrValidation means malformed input to a constructor or validator.
	ErrValidation = errors.New("validation error")

	// ErrNotFound means a referenced entity id does not exist in its map.
	ErrNotFound = errors.New("not found")

	// ErrOperation means a state transition or mutation was attempted from a
	// state that does not allow it.
	ErrOperation = errors.New("operation not allowed")

	// ErrDuplicate means an id uniqueness invariant was violated.
	ErrDuplicate = errors.New("duplicate id")
)
