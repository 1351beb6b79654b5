// Package cache provides a small in-process TTL cache for expensive
// read paths, such as the person dropdown on the event detail page.
package cache

import (
	"sync"
	"time"
)

// Cache stores values by key with a per-entry expiry.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

type entry struct {
	value     any
	expiresAt time.Time
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Remember returns the cached value for key, or calls load, stores its
// result for ttl, and returns it. A failed load caches nothing.
// PRE: key is non-empty, ttl > 0
// POST: Returns the cached or freshly loaded value
func (c *Cache) Remember(key string, ttl time.Duration, load func() (any, error)) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Before(e.expiresAt) {
		c.mu.Unlock()
		return e.value, nil
	}
	c.mu.Unlock()

	// Load outside the lock; concurrent misses may load twice, the last
	// write wins.
	value, err := load()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return value, nil
}

// Forget drops the entry for key if present.
func (c *Cache) Forget(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
