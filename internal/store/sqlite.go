package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"carpool/internal/domain"
)

// SQLiteStore persists the ride collection as a JSON blob in a single-row
// state table.
type SQLiteStore struct {
	db *sql.DB
}

var _ RideStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (and if necessary creates) a SQLite-backed ride store
// at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		path = "carpool.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load reads the persisted collection. An absent row initializes storage to
// an empty collection.
func (s *SQLiteStore) Load(ctx context.Context) ([]domain.Ride, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM state WHERE key = ?`, StorageKey,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			rides := make([]domain.Ride, 0)
			if err := s.Save(ctx, rides); err != nil {
				return nil, err
			}
			return rides, nil
		}
		return nil, fmt.Errorf("select ride state: %w", err)
	}

	var rides []domain.Ride
	if err := json.Unmarshal(payload, &rides); err != nil {
		return nil, fmt.Errorf("decode ride state: %w", err)
	}
	if rides == nil {
		rides = make([]domain.Ride, 0)
	}
	return rides, nil
}

// Save upserts the entire collection under the fixed key.
func (s *SQLiteStore) Save(ctx context.Context, rides []domain.Ride) error {
	payload, err := json.Marshal(rides)
	if err != nil {
		return fmt.Errorf("encode ride state: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO state (key, payload) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`,
		StorageKey, payload,
	)
	if err != nil {
		return fmt.Errorf("upsert ride state: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
