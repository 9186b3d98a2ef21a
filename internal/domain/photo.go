package domain

import (
	"fmt"
	"strings"
)

// Photo is a titled reference to an image file. Immutable after construction.
type Photo struct {
	ID       ID
	Title    string
	FilePath string
}

// NewPhoto validates and builds a Photo.
func NewPhoto(id ID, title, filePath string) (*Photo, error) {
	p := &Photo{
		ID:       id,
		Title:    strings.TrimSpace(title),
		FilePath: strings.TrimSpace(filePath),
	}
	if p.Title == "" {
		return nil, fmt.Errorf("%w: photo title must not be empty", ErrValidation)
	}
	if p.FilePath == "" {
		return nil, fmt.Errorf("%w: photo file path must not be empty", ErrValidation)
	}
	return p, nil
}
