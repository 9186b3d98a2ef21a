// Package sqlite persists the state document in a sqlite database. It
// implements the same whole-document load/save contract as the jsonfile
// backend, so the two are interchangeable behind config.
package sqlite

import (
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/ykushnir/cityguide/internal/storage"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store persists the state document across four tables. Row order (rowid)
// preserves the document's insertion order.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at dbPath and applies
// pending migrations.
func Open(dbPath string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_journal_mode=WAL", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, fmt.Errorf("failed to run migrations: %w (also failed to close db: %v)", err, cerr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Load() (storage.Document, error) {
	var doc storage.Document

	rows, err := s.db.Query(`SELECT id, name, description, cell_id, tags, photo_ids FROM attractions ORDER BY rowid`)
	if err != nil {
		return storage.Document{}, loadErr(err)
	}
	defer rows.Close()
	for rows.Next() {
		var rec storage.AttractionRecord
		var tags, photoIDs string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.CellID, &tags, &photoIDs); err != nil {
			return storage.Document{}, loadErr(err)
		}
		if err := json.Unmarshal([]byte(tags), &rec.Tags); err != nil {
			return storage.Document{}, loadErr(err)
		}
		if err := json.Unmarshal([]byte(photoIDs), &rec.PhotoIDs); err != nil {
			return storage.Document{}, loadErr(err)
		}
		doc.Attractions = append(doc.Attractions, rec)
	}
	if err := rows.Err(); err != nil {
		return storage.Document{}, loadErr(err)
	}

	routeRows, err := s.db.Query(`SELECT id, name, status, attraction_ids FROM routes ORDER BY rowid`)
	if err != nil {
		return storage.Document{}, loadErr(err)
	}
	defer routeRows.Close()
	for routeRows.Next() {
		var rec storage.RouteRecord
		var attractionIDs string
		if err := routeRows.Scan(&rec.ID, &rec.Name, &rec.Status, &attractionIDs); err != nil {
			return storage.Document{}, loadErr(err)
		}
		if err := json.Unmarshal([]byte(attractionIDs), &rec.AttractionIDs); err != nil {
			return storage.Document{}, loadErr(err)
		}
		doc.Routes = append(doc.Routes, rec)
	}
	if err := routeRows.Err(); err != nil {
		return storage.Document{}, loadErr(err)
	}

	photoRows, err := s.db.Query(`SELECT id, title, file_path FROM photos ORDER BY rowid`)
	if err != nil {
		return storage.Document{}, loadErr(err)
	}
	defer photoRows.Close()
	for photoRows.Next() {
		var rec storage.PhotoRecord
		if err := photoRows.Scan(&rec.ID, &rec.Title, &rec.FilePath); err != nil {
			return storage.Document{}, loadErr(err)
		}
		doc.Photos = append(doc.Photos, rec)
	}
	if err := photoRows.Err(); err != nil {
		return storage.Document{}, loadErr(err)
	}

	reviewRows, err := s.db.Query(`SELECT id, attraction_id, author, rating, text, created_at_iso FROM reviews ORDER BY rowid`)
	if err != nil {
		return storage.Document{}, loadErr(err)
	}
	defer reviewRows.Close()
	for reviewRows.Next() {
		var rec storage.ReviewRecord
		if err := reviewRows.Scan(&rec.ID, &rec.AttractionID, &rec.Author, &rec.Rating, &rec.Text, &rec.CreatedAtISO); err != nil {
			return storage.Document{}, loadErr(err)
		}
		doc.Reviews = append(doc.Reviews, rec)
	}
	if err := reviewRows.Err(); err != nil {
		return storage.Document{}, loadErr(err)
	}

	return doc, nil
}

// Save replaces the whole stored state in one transaction.
func (s *Store) Save(doc storage.Document) error {
	tx, err := s.db.Begin()
	if err != nil {
		return saveErr(err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after commit

	for _, table := range []string{"attractions", "routes", "photos", "reviews"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return saveErr(err)
		}
	}

	for _, rec := range doc.Attractions {
		tags, err := json.Marshal(rec.Tags)
		if err != nil {
			return saveErr(err)
		}
		photoIDs, err := json.Marshal(rec.PhotoIDs)
		if err != nil {
			return saveErr(err)
		}
		if _, err := tx.Exec(`
			INSERT INTO attractions (id, name, description, cell_id, tags, photo_ids) VALUES (?, ?, ?, ?, ?, ?)
		`, rec.ID, rec.Name, rec.Description, rec.CellID, string(tags), string(photoIDs)); err != nil {
			return saveErr(err)
		}
	}

	for _, rec := range doc.Routes {
		attractionIDs, err := json.Marshal(rec.AttractionIDs)
		if err != nil {
			return saveErr(err)
		}
		if _, err := tx.Exec(`
			INSERT INTO routes (id, name, status, attraction_ids) VALUES (?, ?, ?, ?)
		`, rec.ID, rec.Name, rec.Status, string(attractionIDs)); err != nil {
			return saveErr(err)
		}
	}

	for _, rec := range doc.Photos {
		if _, err := tx.Exec(`
			INSERT INTO photos (id, title, file_path) VALUES (?, ?, ?)
		`, rec.ID, rec.Title, rec.FilePath); err != nil {
			return saveErr(err)
		}
	}

	for _, rec := range doc.Reviews {
		if _, err := tx.Exec(`
			INSERT INTO reviews (id, attraction_id, author, rating, text, created_at_iso) VALUES (?, ?, ?, ?, ?, ?)
		`, rec.ID, rec.AttractionID, rec.Author, rec.Rating, rec.Text, rec.CreatedAtISO); err != nil {
			return saveErr(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return saveErr(err)
	}
	return nil
}

func loadErr(err error) error {
	return fmt.Errorf("%w: %v", storage.ErrLoad, err)
}

func saveErr(err error) error {
	return fmt.Errorf("%w: %v", storage.ErrSave, err)
}

func runMigrations(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			dirty BOOLEAN NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	// Collect up migrations keyed by version, e.g. "000001_create_state.up.sql".
	ups := make(map[int]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		version := 0
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		ups[version] = name
	}

	var versions []int
	for v := range ups {
		versions = append(versions, v)
	}
	sort.Ints(versions)

	for _, version := range versions {
		var applied int
		if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE version = ?", version).Scan(&applied); err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if applied > 0 {
			continue
		}

		data, err := fs.ReadFile(migrationsFS, "migrations/"+ups[version])
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", ups[version], err)
		}
		if _, err := db.Exec(string(data)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", ups[version], err)
		}
		if _, err := db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("failed to record migration: %w", err)
		}
	}

	return nil
}
