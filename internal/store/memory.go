package store

import (
	"context"
	"sync"

	"carpool/internal/domain"
)

// MemoryStore is an in-process RideStore. It backs tests and ephemeral
// deployments; nothing survives a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	rides []domain.Ride
}

var _ RideStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory ride store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rides: make([]domain.Ride, 0)}
}

// Load returns a deep copy of the current collection.
func (s *MemoryStore) Load(ctx context.Context) ([]domain.Ride, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Ride, 0, len(s.rides))
	for i := range s.rides {
		out = append(out, s.rides[i].Clone())
	}
	return out, nil
}

// Save replaces the collection with a deep copy of rides.
func (s *MemoryStore) Save(ctx context.Context, rides []domain.Ride) error {
	copied := make([]domain.Ride, 0, len(rides))
	for i := range rides {
		copied = append(copied, rides[i].Clone())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rides = copied
	return nil
}
