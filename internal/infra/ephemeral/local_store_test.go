package ephemeral

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore returns a localStore with a controllable clock.
func newTestStore() (*localStore, *time.Time) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := &localStore{
		entries: make(map[string]localEntry),
		now:     func() time.Time { return now },
	}

	return store, &now
}

func TestLocalStore_SetAndGetMulti(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.SetWithTTL(ctx, "presence:alice", []byte("1748779200"), 90*time.Second))
	require.NoError(t, store.SetWithTTL(ctx, "presence:bob", []byte("1748779201"), 90*time.Second))

	got, err := store.GetMulti(ctx, []string{"presence:alice", "presence:bob", "presence:carol"})
	require.NoError(t, err)

	assert.Len(t, got, 2)
	assert.Equal(t, []byte("1748779200"), got["presence:alice"])
	assert.Equal(t, []byte("1748779201"), got["presence:bob"])
	assert.NotContains(t, got, "presence:carol")
}

func TestLocalStore_ExpiredEntriesAreInvisible(t *testing.T) {
	t.Parallel()

	store, now := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.SetWithTTL(ctx, "presence:alice", []byte("ts"), 90*time.Second))

	// One second past the TTL the entry must behave as if never written.
	*now = now.Add(91 * time.Second)

	got, err := store.GetMulti(ctx, []string{"presence:alice"})
	require.NoError(t, err)
	assert.Empty(t, got)

	// The lazy sweep should have removed the dead entry.
	store.mu.Lock()
	_, exists := store.entries["presence:alice"]
	store.mu.Unlock()
	assert.False(t, exists)
}

func TestLocalStore_SetRestartsTTL(t *testing.T) {
	t.Parallel()

	store, now := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.SetWithTTL(ctx, "presence:alice", []byte("first"), 90*time.Second))

	*now = now.Add(60 * time.Second)
	require.NoError(t, store.SetWithTTL(ctx, "presence:alice", []byte("second"), 90*time.Second))

	// 60s later the original TTL would have elapsed, but the rewrite reset it.
	*now = now.Add(60 * time.Second)

	got, err := store.GetMulti(ctx, []string{"presence:alice"})
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got["presence:alice"])
}

func TestLocalStore_Delete(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore()
	ctx := context.Background()

	require.NoError(t, store.SetWithTTL(ctx, "presence:alice", []byte("ts"), 90*time.Second))
	require.NoError(t, store.Delete(ctx, "presence:alice"))

	got, err := store.GetMulti(ctx, []string{"presence:alice"})
	require.NoError(t, err)
	assert.Empty(t, got)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete(ctx, "presence:missing"))
}

func TestLocalStore_ValueIsolation(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore()
	ctx := context.Background()

	original := []byte("immutable")
	require.NoError(t, store.SetWithTTL(ctx, "key", original, time.Minute))

	// Mutating the caller's slice must not affect the stored copy.
	original[0] = 'X'

	got, err := store.GetMulti(ctx, []string{"key"})
	require.NoError(t, err)
	assert.Equal(t, []byte("immutable"), got["key"])

	// Mutating the returned slice must not affect later reads.
	got["key"][0] = 'Y'

	again, err := store.GetMulti(ctx, []string{"key"})
	require.NoError(t, err)
	assert.Equal(t, []byte("immutable"), again["key"])
}

func TestLocalStore_GetMultiEmptyKeys(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore()

	got, err := store.GetMulti(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
