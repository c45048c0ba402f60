// Package ephemeral provides TTL keyed storage backing the presence tracker.
package ephemeral

import (
	"context"
	"time"

	"horizon/internal/domain/service"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

// redisStore implements service.EphemeralStore on a shared Redis instance.
// Redis evicts expired keys itself, so no sweeping is needed here.
type redisStore struct {
	client *goredis.Client
}

// NewRedisStore wraps an existing Redis client as an EphemeralStore.
func NewRedisStore(client *goredis.Client) service.EphemeralStore {
	return &redisStore{client: client}
}

// SetWithTTL stores value under key, replacing any previous value and
// restarting the TTL.
func (s *redisStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set ephemeral key")
	}

	return nil
}

// GetMulti returns the live values for the given keys via a single MGET.
// Redis returns nil for missing or expired keys; those are omitted from the
// result map.
func (s *redisStore) GetMulti(ctx context.Context, keys []string) (map[string][]byte, error) {
	if len(keys) == 0 {
		return map[string][]byte{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to mget ephemeral keys")
	}

	result := make(map[string][]byte, len(keys))
	for i, value := range values {
		if value == nil {
			continue
		}
		if str, ok := value.(string); ok {
			result[keys[i]] = []byte(str)
		}
	}

	return result, nil
}

// Delete removes the entry for key, if any.
func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "failed to delete ephemeral key")
	}

	return nil
}
