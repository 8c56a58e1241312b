package ttlcache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	storedAt time.Time
	value    V
}

// Cache is a mutex-guarded map whose entries stop being served once their age
// reaches the TTL. Expired entries are ignored rather than deleted; there is
// no eviction pass. Safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[K]entry[V]
}

// New creates a cache whose entries are valid for ttl after each Put.
func New[K comparable, V any](ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		ttl:     ttl,
		entries: make(map[K]entry[V]),
	}
}

// Get returns the value stored under key when its age at now is strictly
// below the TTL. Stale and absent keys both report a miss.
func (c *Cache[K, V]) Get(key K, now time.Time) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || now.Sub(e.storedAt) >= c.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores value under key, unconditionally replacing any previous entry
// and restarting its validity window at now.
func (c *Cache[K, V]) Put(key K, value V, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{storedAt: now, value: value}
}

// Len reports the number of stored entries, expired ones included.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
