package caches

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryStore(now *time.Time) *memoryStore {
	return &memoryStore{
		entries: make(map[string]memoryEntry),
		nowFunc: func() time.Time { return *now },
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	store := newTestMemoryStore(&now)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	t.Parallel()
	now := time.Now()
	store := newTestMemoryStore(&now)

	_, err := store.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryStoreExpiry(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	store := newTestMemoryStore(&now)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 5*time.Minute))

	now = now.Add(5*time.Minute + time.Second)
	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)

	// the expired entry was dropped, a renewed Set brings it back
	require.NoError(t, store.Set(ctx, "k", []byte("v2"), 5*time.Minute))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestMemoryStoreDeleteAndClear(t *testing.T) {
	t.Parallel()
	now := time.Now()
	store := newTestMemoryStore(&now)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, store.Set(ctx, "b", []byte("2"), time.Minute))

	require.NoError(t, store.Delete(ctx, "a"))
	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
