package app

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"carpool/internal/config"
	"carpool/internal/store"
)

// NewRideStore opens the configured ride store backend. The returned close
// function releases backend resources and is safe to call once on shutdown.
func NewRideStore(cfg config.StoreConfig, redisClient *redis.Client) (store.RideStore, func() error, error) {
	noop := func() error { return nil }

	switch store.Backend(cfg.Backend) {
	case store.BackendMemory:
		return store.NewMemoryStore(), noop, nil

	case store.BackendFile:
		s, err := store.NewFileStore(cfg.FilePath)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil

	case store.BackendSQLite:
		s, err := store.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case store.BackendRedis:
		if redisClient == nil {
			return nil, nil, fmt.Errorf("redis store backend requires a redis connection")
		}
		return store.NewRedisStore(redisClient), noop, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
