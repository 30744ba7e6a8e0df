package tests

import (
	"context"
	"sync"
	"sync/atomic"

	"carpool/internal/domain"
)

// ──────────────────────────────────────────────
// MOCK RIDE STORE
// ──────────────────────────────────────────────

// MockRideStore is a mock implementation of store.RideStore.
type MockRideStore struct {
	mu    sync.RWMutex
	rides []domain.Ride

	// Counters for verification
	LoadCallCount int32
	SaveCallCount int32

	// Error injection
	LoadError error
	SaveError error
}

// NewMockRideStore creates a new mock ride store.
func NewMockRideStore() *MockRideStore {
	return &MockRideStore{rides: make([]domain.Ride, 0)}
}

// Seed replaces the stored collection without touching counters.
func (m *MockRideStore) Seed(rides ...domain.Ride) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rides = make([]domain.Ride, 0, len(rides))
	for i := range rides {
		m.rides = append(m.rides, rides[i].Clone())
	}
}

func (m *MockRideStore) Load(ctx context.Context) ([]domain.Ride, error) {
	atomic.AddInt32(&m.LoadCallCount, 1)
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Ride, 0, len(m.rides))
	for i := range m.rides {
		out = append(out, m.rides[i].Clone())
	}
	return out, nil
}

func (m *MockRideStore) Save(ctx context.Context, rides []domain.Ride) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rides = make([]domain.Ride, 0, len(rides))
	for i := range rides {
		m.rides = append(m.rides, rides[i].Clone())
	}
	return nil
}

// GetRide returns the stored ride by ID (for test assertions).
func (m *MockRideStore) GetRide(id string) *domain.Ride {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.rides {
		if m.rides[i].RideID == id {
			copy := m.rides[i].Clone()
			return &copy
		}
	}
	return nil
}

// CountRides returns the number of stored rides.
func (m *MockRideStore) CountRides() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rides)
}

// Snapshot returns a deep copy of the stored collection.
func (m *MockRideStore) Snapshot() []domain.Ride {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Ride, 0, len(m.rides))
	for i := range m.rides {
		out = append(out, m.rides[i].Clone())
	}
	return out
}
