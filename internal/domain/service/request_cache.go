package service

import "time"

// RequestCache is a process-local, short-TTL read-through cache. It is an
// accelerant only, never a source of truth: any caller finding it empty must
// be able to recompute the value from the durable store. Writers invalidate
// the key family they touched so a user always sees their own write on the
// next read.
type RequestCache interface {
	// Get returns the value stored under key if it is younger than ttl.
	// A stale entry is treated as absent and evicted lazily.
	Get(key string, ttl time.Duration) (any, bool)

	// Set unconditionally overwrites the value under key and restarts its age.
	Set(key string, value any)

	// InvalidatePrefix removes every key that starts with prefix.
	InvalidatePrefix(prefix string)
}
