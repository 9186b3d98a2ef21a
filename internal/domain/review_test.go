package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReviewValid(t *testing.T) {
	r, err := NewReview(mustID(t, "r1"), mustID(t, "d1"), " Olga ", 5, " Great place. ", "2025-06-01T12:00:00")
	require.NoError(t, err)

	assert.Equal(t, "Olga", r.Author)
	assert.Equal(t, 5, r.Rating)
	assert.Equal(t, "Great place.", r.Text)
	assert.Equal(t, "2025-06-01T12:00:00", r.CreatedAtISO)
}

func TestNewReviewBlankAuthorDefaults(t *testing.T) {
	r, err := NewReview(mustID(t, "r1"), mustID(t, "d1"), "   ", 3, "ok", "2025-06-01T12:00:00")
	require.NoError(t, err)
	assert.Equal(t, AnonymousAuthor, r.Author)
}

func TestNewReviewRatingRange(t *testing.T) {
	for _, rating := range []int{0, -1, 6} {
		_, err := NewReview(mustID(t, "r1"), mustID(t, "d1"), "a", rating, "text", "2025-06-01T12:00:00")
		assert.ErrorIs(t, err, ErrValidation, fmt.Sprintf("rating %d", rating))
	}
	for rating := 1; rating <= 5; rating++ {
		_, err := NewReview(mustID(t, "r1"), mustID(t, "d1"), "a", rating, "text", "2025-06-01T12:00:00")
		assert.NoError(t, err)
	}
}

func TestNewReviewEmptyText(t *testing.T) {
	_, err := NewReview(mustID(t, "r1"), mustID(t, "d1"), "a", 3, "   ", "2025-06-01T12:00:00")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewReviewEmptyCreatedAt(t *testing.T) {
	_, err := NewReview(mustID(t, "r1"), mustID(t, "d1"), "a", 3, "text", "  ")
	assert.ErrorIs(t, err, ErrValidation)
}
