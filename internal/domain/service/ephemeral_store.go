package service

import (
	"context"
	"time"
)

// EphemeralStore is a TTL keyed byte store used by the presence tracker.
// Two implementations exist: a Redis-backed one for multi-instance
// deployments and an in-process one for single-instance setups. Both obey
// the same contract: a value is observable until its TTL elapses and never
// after, and GetMulti never reports a key whose entry has expired.
type EphemeralStore interface {
	// SetWithTTL stores value under key, replacing any previous value and
	// restarting the TTL.
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// GetMulti returns the live values for the given keys. Keys with no live
	// entry are simply absent from the result map.
	GetMulti(ctx context.Context, keys []string) (map[string][]byte, error)

	// Delete removes the entry for key, if any.
	Delete(ctx context.Context, key string) error
}
