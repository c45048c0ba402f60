// Package cache provides the process-local request cache.
package cache

import (
	"strings"
	"sync"
	"time"

	"horizon/internal/domain/service"

	"go.uber.org/fx"
)

// cacheEntry is one stored value with the time it was written.
type cacheEntry struct {
	value    any
	storedAt time.Time
}

// requestCache implements service.RequestCache with a mutex-guarded map.
// Staleness is judged per read against the caller's TTL, so the same entry
// can be live for one caller and stale for another. There is no background
// sweep; dead entries are evicted when a read trips over them or when their
// prefix is invalidated.
type requestCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry

	// now is injectable for tests.
	now func() time.Time
}

// New creates an empty RequestCache.
func New() service.RequestCache {
	return &requestCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the value stored under key if it is younger than ttl.
func (c *requestCache) Get(key string, ttl time.Duration) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if c.now().Sub(entry.storedAt) > ttl {
		delete(c.entries, key)

		return nil, false
	}

	return entry.value, true
}

// Set unconditionally overwrites the value under key and restarts its age.
func (c *requestCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		value:    value,
		storedAt: c.now(),
	}
}

// InvalidatePrefix removes every key that starts with prefix.
func (c *requestCache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Module provides the request cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
