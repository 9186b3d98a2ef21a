// Package storage defines the persisted state document and the contract the
// guide uses to load and save it. Backends live in the jsonfile and sqlite
// subpackages.
package storage

import "errors"

// Sentinel errors for the persistence boundary. Unlike domain errors these
// always wrap an underlying I/O or parse cause.
var (
	ErrLoad = errors.New("storage load error")
	ErrSave = errors.New("storage save error")
)

// Document is the full application state as plain data. It is what a backend
// persists and what the guide exports and imports; a round trip through it is
// lossless.
type Document struct {
	Attractions []AttractionRecord `json:"attractions"`
	Routes      []RouteRecord      `json:"routes"`
	Photos      []PhotoRecord      `json:"photos"`
	Reviews     []ReviewRecord     `json:"reviews"`
}

type AttractionRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CellID      string   `json:"cell_id"`
	Tags        []string `json:"tags"`
	PhotoIDs    []string `json:"photo_ids"`
}

type RouteRecord struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Status        string   `json:"status"`
	AttractionIDs []string `json:"attraction_ids"`
}

type PhotoRecord struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	FilePath string `json:"file_path"`
}

type ReviewRecord struct {
	ID           string `json:"id"`
	AttractionID string `json:"attraction_id"`
	Author       string `json:"author"`
	Rating       int    `json:"rating"`
	Text         string `json:"text"`
	CreatedAtISO string `json:"created_at_iso"`
}

// Storage is the persistence contract. Load never fails on absent state: it
// returns an empty Document instead. Save overwrites the whole state.
type Storage interface {
	Load() (Document, error)
	Save(doc Document) error
}
