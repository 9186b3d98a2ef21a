// Package domain contains the entity model for the city guide: attractions,
// photos, reviews, and routes with their lifecycle rules. Entities reference
// each other by ID only; the guide package resolves references on demand.
package domain

import (
	"fmt"
	"strings"
)

// ID is an opaque entity identifier. Two IDs with equal underlying text are
// the same identifier, so ID is usable directly as a map key.
type ID struct {
	value string
}

// NewID validates and wraps an identifier string.
func NewID(value string) (ID, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return ID{}, fmt.Errorf("%w: id must not be empty", ErrValidation)
	}
	return ID{value: v}, nil
}

// Value returns the canonical (trimmed) identifier text.
func (id ID) Value() string { return id.value }

func (id ID) String() string { return id.value }
