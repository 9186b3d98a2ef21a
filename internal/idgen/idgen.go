// Package idgen produces readable date-based entity identifiers.
package idgen

import (
	"strings"
	"time"
)

// Generator builds ids of the form <prefix>YYYYMMDD, e.g. "route20250601".
// The guide appends a numeric suffix when the base id is already taken.
type Generator struct {
	now func() time.Time
}

// New returns a Generator using the system clock.
func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock returns a Generator with an injected clock, for tests.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// NewID returns the base id for today. A blank prefix falls back to "id".
func (g *Generator) NewID(prefix string) string {
	p := strings.TrimSpace(prefix)
	if p == "" {
		p = "id"
	}
	return p + g.now().Format("20060102")
}
