package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestCache() (*requestCache, *time.Time) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := &requestCache{
		entries: make(map[string]cacheEntry),
		now:     func() time.Time { return now },
	}

	return cache, &now
}

func TestRequestCache_GetWithinTTL(t *testing.T) {
	t.Parallel()

	cache, now := newTestCache()

	cache.Set("notes:alice", []string{"n1", "n2"})

	*now = now.Add(2 * time.Second)

	got, ok := cache.Get("notes:alice", 3*time.Second)
	assert.True(t, ok)
	assert.Equal(t, []string{"n1", "n2"}, got)
}

func TestRequestCache_StaleEntryIsAbsentAndEvicted(t *testing.T) {
	t.Parallel()

	cache, now := newTestCache()

	cache.Set("notes:alice", "v")

	*now = now.Add(4 * time.Second)

	_, ok := cache.Get("notes:alice", 3*time.Second)
	assert.False(t, ok)

	// Lazy eviction: the stale entry must be gone.
	cache.mu.Lock()
	_, exists := cache.entries["notes:alice"]
	cache.mu.Unlock()
	assert.False(t, exists)
}

func TestRequestCache_TTLIsPerRead(t *testing.T) {
	t.Parallel()

	cache, now := newTestCache()

	cache.Set("k", "v")

	*now = now.Add(3 * time.Second)

	// The same entry is stale for a tight TTL but live for a looser one.
	_, ok := cache.Get("k", 5*time.Second)
	assert.True(t, ok)

	_, ok = cache.Get("k", 2*time.Second)
	assert.False(t, ok)
}

func TestRequestCache_SetRestartsAge(t *testing.T) {
	t.Parallel()

	cache, now := newTestCache()

	cache.Set("k", "old")

	*now = now.Add(2 * time.Second)
	cache.Set("k", "new")

	*now = now.Add(2 * time.Second)

	got, ok := cache.Get("k", 3*time.Second)
	assert.True(t, ok)
	assert.Equal(t, "new", got)
}

func TestRequestCache_InvalidatePrefix(t *testing.T) {
	t.Parallel()

	cache, _ := newTestCache()

	cache.Set("notes:alice", "a")
	cache.Set("notes:alice:page2", "a2")
	cache.Set("notes:bob", "b")
	cache.Set("reminders:alice", "r")

	cache.InvalidatePrefix("notes:alice")

	_, ok := cache.Get("notes:alice", time.Minute)
	assert.False(t, ok)
	_, ok = cache.Get("notes:alice:page2", time.Minute)
	assert.False(t, ok)

	// Other families are untouched.
	_, ok = cache.Get("notes:bob", time.Minute)
	assert.True(t, ok)
	_, ok = cache.Get("reminders:alice", time.Minute)
	assert.True(t, ok)
}

func TestRequestCache_GetMissing(t *testing.T) {
	t.Parallel()

	cache, _ := newTestCache()

	_, ok := cache.Get("absent", time.Minute)
	assert.False(t, ok)
}
