package domain

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a route. Draft is the only mutable state;
// Archived is terminal.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// ParseStatus maps a stored status literal back to a Status.
func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusDraft, StatusPublished, StatusArchived:
		return Status(value), nil
	default:
		return "", fmt.Errorf("%w: unknown route status %q", ErrValidation, value)
	}
}

// Route is a named ordered sequence of attraction references with a
// draft/published/archived lifecycle. Stops can only change while the route
// is a draft.
type Route struct {
	ID            ID
	Name          string
	Status        Status
	AttractionIDs []ID
}

// NewRoute validates and builds a Route. The attractionIDs slice is copied.
func NewRoute(id ID, name string, status Status, attractionIDs []ID) (*Route, error) {
	r := &Route{
		ID:            id,
		Name:          strings.TrimSpace(name),
		Status:        status,
		AttractionIDs: append([]ID{}, attractionIDs...),
	}
	if r.Name == "" {
		return nil, fmt.Errorf("%w: route name must not be empty", ErrValidation)
	}
	return r, nil
}

// AddStop appends an attraction to the route if it is not already a stop.
// Allowed only while the route is a draft.
func (r *Route) AddStop(attractionID ID) error {
	if r.Status != StatusDraft {
		return fmt.Errorf("%w: only a draft route can be edited", ErrOperation)
	}
	for _, aid := range r.AttractionIDs {
		if aid == attractionID {
			return nil
		}
	}
	r.AttractionIDs = append(r.AttractionIDs, attractionID)
	return nil
}

// RemoveStop removes an attraction from the route; removing an absent stop is
// a no-op. Allowed only while the route is a draft.
func (r *Route) RemoveStop(attractionID ID) error {
	if r.Status != StatusDraft {
		return fmt.Errorf("%w: only a draft route can be edited", ErrOperation)
	}
	for i, aid := range r.AttractionIDs {
		if aid == attractionID {
			r.AttractionIDs = append(r.AttractionIDs[:i], r.AttractionIDs[i+1:]...)
			return nil
		}
	}
	return nil
}

// Publish moves a draft route with at least one stop to published.
// Publishing an already published route is a no-op.
func (r *Route) Publish() error {
	if r.Status == StatusArchived {
		return fmt.Errorf("%w: an archived route cannot be published", ErrOperation)
	}
	if r.Status == StatusPublished {
		return nil
	}
	if len(r.AttractionIDs) == 0 {
		return fmt.Errorf("%w: an empty route cannot be published", ErrOperation)
	}
	r.Status = StatusPublished
	return nil
}

// Archive moves the route to archived from any state. Idempotent.
func (r *Route) Archive() {
	r.Status = StatusArchived
}

// UnpublishToDraft returns a published route to draft for editing.
func (r *Route) UnpublishToDraft() error {
	if r.Status != StatusPublished {
		return fmt.Errorf("%w: only a published route can return to draft", ErrOperation)
	}
	r.Status = StatusDraft
	return nil
}
