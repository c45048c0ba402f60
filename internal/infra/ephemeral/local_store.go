package ephemeral

import (
	"context"
	"sync"
	"time"

	"horizon/internal/domain/service"
)

// localEntry is one stored value with its absolute expiry.
type localEntry struct {
	value     []byte
	expiresAt time.Time
}

// localStore implements service.EphemeralStore in process memory. Expiry is
// enforced lazily: reads skip dead entries and delete them opportunistically,
// so a key that has expired is indistinguishable from one never written —
// exactly the behavior of the Redis-backed store.
type localStore struct {
	mu      sync.Mutex
	entries map[string]localEntry

	// now is injectable for tests.
	now func() time.Time
}

// NewLocalStore creates an in-process EphemeralStore.
func NewLocalStore() service.EphemeralStore {
	return &localStore{
		entries: make(map[string]localEntry),
		now:     time.Now,
	}
}

// SetWithTTL stores value under key, replacing any previous value and
// restarting the TTL.
func (s *localStore) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy so later caller mutations cannot leak into the store.
	stored := make([]byte, len(value))
	copy(stored, value)

	s.entries[key] = localEntry{
		value:     stored,
		expiresAt: s.now().Add(ttl),
	}

	return nil
}

// GetMulti returns the live values for the given keys. Expired entries are
// removed as they are encountered.
func (s *localStore) GetMulti(_ context.Context, keys []string) (map[string][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	result := make(map[string][]byte, len(keys))

	for _, key := range keys {
		entry, ok := s.entries[key]
		if !ok {
			continue
		}
		if !entry.expiresAt.After(now) {
			delete(s.entries, key)

			continue
		}

		value := make([]byte, len(entry.value))
		copy(value, entry.value)
		result[key] = value
	}

	return result, nil
}

// Delete removes the entry for key, if any.
func (s *localStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)

	return nil
}
