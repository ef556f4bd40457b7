package cache

import (
	"sync"
	"time"
)

// Cache is an explicit TTL cache for a fully built snapshot. A rebuild
// either replaces the whole snapshot or the stale one keeps being
// served; readers never observe a partial write.
type Cache[T any] struct {
	mu        sync.RWMutex
	data      T
	fetchedAt time.Time
	populated bool
	ttl       time.Duration
}

func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{ttl: ttl}
}

// Get returns the cached snapshot and whether it is usable (populated
// and not past its TTL).
func (c *Cache[T]) Get() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data, c.populated && time.Since(c.fetchedAt) < c.ttl
}

// Stale returns the snapshot even when expired, for serve-stale-on-error.
func (c *Cache[T]) Stale() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data, c.populated
}

// Set atomically replaces the snapshot and resets the TTL clock.
func (c *Cache[T]) Set(data T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = data
	c.fetchedAt = time.Now()
	c.populated = true
}

// IsStale reports whether the next Get would miss.
func (c *Cache[T]) IsStale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.populated || time.Since(c.fetchedAt) >= c.ttl
}

// Invalidate forces the next Get to miss without dropping the stale
// snapshot, so serve-stale paths still work during the rebuild.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchedAt = time.Time{}
}
