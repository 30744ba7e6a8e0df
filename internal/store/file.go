package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"carpool/internal/domain"
)

// FileStore persists the ride collection as a single JSON file. It is the
// default backend and the closest analog of the original per-client local
// storage.
type FileStore struct {
	path string
}

var _ RideStore = (*FileStore)(nil)

// NewFileStore creates a file-backed ride store at path, creating parent
// directories as needed.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		path = StorageKey + ".json"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

// Load reads the persisted collection. A missing file initializes storage to
// an empty collection.
func (s *FileStore) Load(ctx context.Context) ([]domain.Ride, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			rides := make([]domain.Ride, 0)
			if err := s.Save(ctx, rides); err != nil {
				return nil, err
			}
			return rides, nil
		}
		return nil, fmt.Errorf("read ride store: %w", err)
	}

	var rides []domain.Ride
	if err := json.Unmarshal(data, &rides); err != nil {
		return nil, fmt.Errorf("decode ride store %s: %w", s.path, err)
	}
	if rides == nil {
		rides = make([]domain.Ride, 0)
	}
	return rides, nil
}

// Save writes the entire collection, replacing the previous file. The write
// goes to a temp file in the same directory and is renamed into place so a
// crash mid-write never leaves a truncated collection behind.
func (s *FileStore) Save(ctx context.Context, rides []domain.Ride) error {
	data, err := json.Marshal(rides)
	if err != nil {
		return fmt.Errorf("encode ride store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".tmp")
	if err != nil {
		return fmt.Errorf("write ride store: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write ride store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write ride store: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write ride store: %w", err)
	}
	return nil
}
