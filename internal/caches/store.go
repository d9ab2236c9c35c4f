package caches

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by a Store when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// DefaultTTL is the fixed policy TTL for warmed entries; the refresh
// scheduler runs every 4 minutes to beat it.
const DefaultTTL = 5 * time.Minute

//go:generate mockgen -source=store.go -destination=./mocks/store_mock.go -package=mocks

// Store is a keyed byte store with per-entry TTL. Implementations may fail;
// the Cache facade above them is what guarantees best-effort semantics.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
