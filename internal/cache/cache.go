// internal/cache/cache.go
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobtrust/internal/config"
)

// ===============================
// CACHE INTERFACE
// ===============================

// Cache holds short-lived counters shared by request handlers
type Cache interface {
	// Increment adds delta to key and returns the new value. The ttl is
	// applied only when the key is created, giving fixed windows.
	Increment(ctx context.Context, key string, delta int64, ttl time.Duration) (int64, error)
	// TTL returns the time left on key, or zero when it does not exist
	TTL(ctx context.Context, key string) (time.Duration, error)
	Delete(ctx context.Context, key string) error

	Stats(ctx context.Context) (*Stats, error)
	Health(ctx context.Context) error
	Close() error
}

// Stats is a point-in-time view of cache usage
type Stats struct {
	Provider  string `json:"provider"`
	Keys      int64  `json:"keys"`
	Evictions int64  `json:"evictions"`
}

// ===============================
// FACTORY FUNCTION
// ===============================

// New creates the cache selected by cfg.Provider
func New(ctx context.Context, cfg *config.CacheConfig, logger *zap.Logger) (Cache, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch strings.ToLower(cfg.Provider) {
	case config.CacheProviderRedis:
		return NewRedisCache(ctx, cfg, logger)
	case config.CacheProviderMemory, "":
		logger.Info("Using in-memory cache")
		return NewMemoryCache(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unsupported cache provider: %s", cfg.Provider)
	}
}
