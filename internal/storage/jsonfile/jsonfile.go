// Package jsonfile persists the state document as a single JSON file.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ykushnir/cityguide/internal/storage"
)

// Store reads and writes the whole state document at one file path.
// A missing or empty file loads as an empty document; malformed JSON does not.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load() (storage.Document, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return storage.Document{}, nil
	}
	if err != nil {
		return storage.Document{}, fmt.Errorf("%w: failed to read %s: %v", storage.ErrLoad, s.path, err)
	}
	if len(data) == 0 {
		return storage.Document{}, nil
	}

	var doc storage.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return storage.Document{}, fmt.Errorf("%w: failed to parse %s: %v", storage.ErrLoad, s.path, err)
	}
	return doc, nil
}

func (s *Store) Save(doc storage.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to encode state: %v", storage.ErrSave, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: failed to create %s: %v", storage.ErrSave, dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %v", storage.ErrSave, s.path, err)
	}
	return nil
}
