package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"jobtrust/internal/config"
)

// ===============================
// MEMORY CACHE IMPLEMENTATION
// ===============================

type memoryCache struct {
	mu        sync.Mutex
	items     map[string]*counter
	maxKeys   int
	evictions int64
	now       func() time.Time
	logger    *zap.Logger
	stopCh    chan struct{}
	stopOnce  sync.Once
}

type counter struct {
	value     int64
	expiresAt time.Time
}

func (c *counter) expired(now time.Time) bool {
	return !c.expiresAt.IsZero() && !now.Before(c.expiresAt)
}

// NewMemoryCache creates an in-process cache with a background sweeper
func NewMemoryCache(cfg *config.CacheConfig, logger *zap.Logger) Cache {
	c := newMemoryCache(cfg, logger, time.Now)
	go c.cleanup(cfg.CleanupInterval)
	return c
}

func newMemoryCache(cfg *config.CacheConfig, logger *zap.Logger, now func() time.Time) *memoryCache {
	return &memoryCache{
		items:   make(map[string]*counter),
		maxKeys: cfg.MaxEntries,
		now:     now,
		logger:  logger,
		stopCh:  make(chan struct{}),
	}
}

func (c *memoryCache) Increment(ctx context.Context, key string, delta int64, ttl time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	item, ok := c.items[key]
	if !ok || item.expired(now) {
		if !ok && c.maxKeys > 0 && len(c.items) >= c.maxKeys {
			c.evictLocked(now)
		}
		item = &counter{}
		if ttl > 0 {
			item.expiresAt = now.Add(ttl)
		}
		c.items[key] = item
	}

	item.value += delta
	return item.value, nil
}

func (c *memoryCache) TTL(ctx context.Context, key string) (time.Duration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[key]
	if !ok || item.expiresAt.IsZero() {
		return 0, nil
	}
	remaining := item.expiresAt.Sub(c.now())
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func (c *memoryCache) Stats(ctx context.Context) (*Stats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &Stats{
		Provider:  config.CacheProviderMemory,
		Keys:      int64(len(c.items)),
		Evictions: c.evictions,
	}, nil
}

func (c *memoryCache) Health(ctx context.Context) error {
	return ctx.Err()
}

func (c *memoryCache) Close() error {
	c.stopOnce.Do(func() { close(c.stopCh) })
	return nil
}

func (c *memoryCache) cleanup(interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

func (c *memoryCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, item := range c.items {
		if item.expired(now) {
			delete(c.items, key)
			removed++
		}
	}

	if removed > 0 {
		c.logger.Debug("Cleaned up expired cache items",
			zap.Int("expired_count", removed),
			zap.Int("remaining_count", len(c.items)),
		)
	}
}

// evictLocked drops expired keys, or the key closest to expiry when none are.
// Keys without a TTL go only when nothing else can.
func (c *memoryCache) evictLocked(now time.Time) {
	var victim, fallback string
	var soonest time.Time
	for key, item := range c.items {
		if item.expired(now) {
			delete(c.items, key)
			c.evictions++
			return
		}
		if item.expiresAt.IsZero() {
			if fallback == "" {
				fallback = key
			}
			continue
		}
		if victim == "" || item.expiresAt.Before(soonest) {
			victim, soonest = key, item.expiresAt
		}
	}
	if victim == "" {
		victim = fallback
	}
	if victim != "" {
		delete(c.items, victim)
		c.evictions++
	}
}
