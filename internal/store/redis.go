package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"carpool/internal/domain"
)

// RedisStore persists the ride collection as a JSON blob under a fixed
// redis key, with no expiry.
type RedisStore struct {
	client *redis.Client
}

var _ RideStore = (*RedisStore)(nil)

// NewRedisStore creates a redis-backed ride store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Load reads the persisted collection. An absent key initializes storage to
// an empty collection.
func (s *RedisStore) Load(ctx context.Context) ([]domain.Ride, error) {
	data, err := s.client.Get(ctx, StorageKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			rides := make([]domain.Ride, 0)
			if err := s.Save(ctx, rides); err != nil {
				return nil, err
			}
			return rides, nil
		}
		return nil, fmt.Errorf("get ride state: %w", err)
	}

	var rides []domain.Ride
	if err := json.Unmarshal(data, &rides); err != nil {
		return nil, fmt.Errorf("decode ride state: %w", err)
	}
	if rides == nil {
		rides = make([]domain.Ride, 0)
	}
	return rides, nil
}

// Save overwrites the entire collection under the fixed key.
func (s *RedisStore) Save(ctx context.Context, rides []domain.Ride) error {
	data, err := json.Marshal(rides)
	if err != nil {
		return fmt.Errorf("encode ride state: %w", err)
	}
	if err := s.client.Set(ctx, StorageKey, data, 0).Err(); err != nil {
		return fmt.Errorf("set ride state: %w", err)
	}
	return nil
}
