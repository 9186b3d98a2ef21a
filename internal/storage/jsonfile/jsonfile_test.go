package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykushnir/cityguide/internal/storage"
)

func sampleDocument() storage.Document {
	return storage.Document{
		Attractions: []storage.AttractionRecord{{
			ID:          "d1",
			Name:        "Victory Square",
			Description: "Memorial square.",
			CellID:      "B2",
			Tags:        []string{"history"},
			PhotoIDs:    []string{"p1"},
		}},
		Routes: []storage.RouteRecord{{
			ID:            "route20250601",
			Name:          "Old Town Walk",
			Status:        "draft",
			AttractionIDs: []string{"d1"},
		}},
		Photos: []storage.PhotoRecord{{
			ID:       "p1",
			Title:    "Square view",
			FilePath: "photos/square.jpg",
		}},
		Reviews: []storage.ReviewRecord{{
			ID:           "review20250601",
			AttractionID: "d1",
			Author:       "Anonymous",
			Rating:       5,
			Text:         "Great place.",
			CreatedAtISO: "2025-06-01T12:00:00",
		}},
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing.json"))

	doc, err := s.Load()

	require.NoError(t, err)
	assert.Empty(t, doc.Attractions)
	assert.Empty(t, doc.Routes)
	assert.Empty(t, doc.Photos)
	assert.Empty(t, doc.Reviews)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	doc, err := New(path).Load()

	require.NoError(t, err)
	assert.Empty(t, doc.Attractions)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := New(path).Load()

	assert.ErrorIs(t, err, storage.ErrLoad)
}

func TestLoadMissingKeysDefaultEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"attractions": []}`), 0644))

	doc, err := New(path).Load()

	require.NoError(t, err)
	assert.Empty(t, doc.Routes)
	assert.Empty(t, doc.Reviews)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "storage.json")
	s := New(path)

	require.NoError(t, s.Save(sampleDocument()))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleDocument(), got)
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	s := New(path)

	require.NoError(t, s.Save(sampleDocument()))
	require.NoError(t, s.Save(storage.Document{}))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got.Attractions)
}
