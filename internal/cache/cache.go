// Package cache provides the bounded, time-expiring memoization layer
// used by the pipeline to skip recomputation on repeated inputs.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is a bounded key/value store with per-entry TTL and first-in
// first-out eviction (insertion order only, not LRU). Mutations are
// serialized; redundant expire-and-delete by concurrent readers is
// idempotent. Construct one per pipeline, never share a process global.
type Cache struct {
	mu      sync.Mutex
	data    map[string]entry
	order   []string // insertion order for FIFO eviction
	maxSize int
	ttl     time.Duration
	clock   func() time.Time
}

// New creates a cache holding at most maxSize entries, each expiring ttl
// after insertion. maxSize <= 0 means 1024; ttl <= 0 means 5 minutes.
func New(maxSize int, ttl time.Duration) *Cache {
	if maxSize <= 0 {
		maxSize = 1024
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{
		data:    make(map[string]entry, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
		clock:   time.Now,
	}
}

// NewWithClock is New with an injected clock, for tests.
func NewWithClock(maxSize int, ttl time.Duration, clock func() time.Time) *Cache {
	c := New(maxSize, ttl)
	c.clock = clock
	return c
}

// Get returns the value for key. An expired entry is deleted and reported
// absent.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.data[key]
	if !ok {
		return nil, false
	}
	if c.clock().After(e.expiresAt) {
		c.remove(key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with expiry now+ttl. When the cache is full
// the oldest insertion is evicted. Re-setting an existing key refreshes
// its value and expiry but keeps its original queue position.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := entry{value: value, expiresAt: c.clock().Add(c.ttl)}
	if _, exists := c.data[key]; exists {
		c.data[key] = e
		return
	}
	if len(c.data) >= c.maxSize {
		c.remove(c.order[0])
	}
	c.data[key] = e
	c.order = append(c.order, key)
}

// Clear drops all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]entry, c.maxSize)
	c.order = c.order[:0]
}

// Len reports the current number of entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// remove must be called with the lock held.
func (c *Cache) remove(key string) {
	delete(c.data, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
