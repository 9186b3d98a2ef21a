package domain

import (
	"fmt"
	"strings"
)

// Attraction is a point of interest anchored to one map cell.
//
// Photos are held as weak references: PhotoIDs is a lookup list, not
// ownership, and the guide resolves each id on demand. Nothing rejects two
// attractions on the same cell; map selection just finds the first one.
type Attraction struct {
	ID          ID
	Name        string
	Description string
	CellID      string
	Tags        []string
	PhotoIDs    []ID
}

// NewAttraction validates and builds an Attraction. The tags and photoIDs
// slices are copied, never aliased.
func NewAttraction(id ID, name, description, cellID string, tags []string, photoIDs []ID) (*Attraction, error) {
	a := &Attraction{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
	if a.Name == "" {
		return nil, fmt.Errorf("%w: attraction name must not be empty", ErrValidation)
	}
	if a.Description == "" {
		return nil, fmt.Errorf("%w: attraction description must not be empty", ErrValidation)
	}

	cell, err := ValidateCell(cellID)
	if err != nil {
		return nil, err
	}
	a.CellID = cell

	a.Tags = append([]string{}, tags...)
	a.PhotoIDs = append([]ID{}, photoIDs...)
	return a, nil
}

// AddPhoto appends the photo's id to PhotoIDs unless it is already present.
func (a *Attraction) AddPhoto(photo *Photo) {
	for _, pid := range a.PhotoIDs {
		if pid == photo.ID {
			return
		}
	}
	a.PhotoIDs = append(a.PhotoIDs, photo.ID)
}
