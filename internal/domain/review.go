package domain

import (
	"fmt"
	"strings"
)

// AnonymousAuthor replaces a blank review author.
const AnonymousAuthor = "Anonymous"

// Review is a rated, timestamped comment attached to one attraction.
// AttractionID is a weak reference. Immutable after construction.
type Review struct {
	ID           ID
	AttractionID ID
	Author       string
	Rating       int
	Text         string
	CreatedAtISO string
}

// NewReview validates and builds a Review. The caller supplies the
// pre-formatted createdAt timestamp; the entity never reads the clock.
func NewReview(id, attractionID ID, author string, rating int, text, createdAtISO string) (*Review, error) {
	r := &Review{
		ID:           id,
		AttractionID: attractionID,
		Author:       strings.TrimSpace(author),
		Rating:       rating,
		Text:         strings.TrimSpace(text),
		CreatedAtISO: strings.TrimSpace(createdAtISO),
	}
	if r.Author == "" {
		r.Author = AnonymousAuthor
	}
	if r.Rating < 1 || r.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be an integer from 1 to 5", ErrValidation)
	}
	if r.Text == "" {
		return nil, fmt.Errorf("%w: review text must not be empty", ErrValidation)
	}
	if r.CreatedAtISO == "" {
		return nil, fmt.Errorf("%w: review creation time is missing", ErrValidation)
	}
	return r, nil
}
