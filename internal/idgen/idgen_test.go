package idgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewIDUsesPrefixAndDate(t *testing.T) {
	g := NewWithClock(func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) })

	assert.Equal(t, "route20250601", g.NewID("route"))
	assert.Equal(t, "review20250601", g.NewID(" review "))
}

func TestNewIDBlankPrefixFallsBack(t *testing.T) {
	g := NewWithClock(func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) })

	assert.Equal(t, "id20250601", g.NewID("   "))
}
