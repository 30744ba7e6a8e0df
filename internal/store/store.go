package store

import (
	"context"

	"carpool/internal/domain"
)

// StorageKey is the fixed key the ride collection is persisted under.
// Every backend stores the whole collection as one JSON array below it.
const StorageKey = "rides"

// RideStore defines whole-collection persistence for rides. The collection
// is always read and replaced as a unit; there are no partial updates.
type RideStore interface {
	// Load returns the persisted collection. A backend that has never been
	// written initializes itself to an empty collection and returns it.
	Load(ctx context.Context) ([]domain.Ride, error)

	// Save serializes and persists the entire collection, overwriting any
	// previous value.
	Save(ctx context.Context, rides []domain.Ride) error
}

// Backend identifies a ride store backend.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
)
