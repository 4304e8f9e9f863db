package pricing

import (
	"sync"
	"time"
)

// Cache holds the last quote fetched per key. Entries older than the TTL are
// stale but kept, so they can still be served when a refresh fails.
// Concurrent writers for one key race; the last write wins.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]Quote
}

// NewCache creates a cache whose entries stay fresh for ttl.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]Quote),
	}
}

// Get returns the cached quote for key and whether it is still fresh.
// ok is false when nothing was ever stored under key.
func (c *Cache) Get(key string) (q Quote, fresh, ok bool) {
	c.mu.RLock()
	q, ok = c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return Quote{}, false, false
	}
	return q, c.now().Sub(q.FetchedAt) < c.ttl, true
}

// Set stores q under key. A zero FetchedAt is stamped with the current time.
func (c *Cache) Set(key string, q Quote) {
	if q.FetchedAt.IsZero() {
		q.FetchedAt = c.now()
	}
	c.mu.Lock()
	c.entries[key] = q
	c.mu.Unlock()
}

// Len returns the number of cached keys.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
