package caches

import (
	"context"
	"errors"
	"time"

	"cafe-dashboard/internal/shared/loggers"
)

// Cache wraps a Store with best-effort semantics: a broken store degrades the
// service to uncached upstream calls, it never takes requests down with it.
type Cache struct {
	store Store
}

func New(store Store) *Cache {
	return &Cache{store: store}
}

// Get returns the cached value, or (nil, false) when the key is absent. Store
// failures are logged and reported as absence.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.store.Get(ctx, key)
	if errors.Is(err, ErrCacheMiss) {
		metricCacheOpsTotal.WithLabelValues(opGet, outcomeMiss).Inc()
		return nil, false
	}
	if err != nil {
		metricCacheOpsTotal.WithLabelValues(opGet, outcomeError).Inc()
		loggers.Ctx(ctx).Warn().Err(err).Str(loggers.FieldCacheKey, key).Msg("cache get failed, treating as miss")
		return nil, false
	}
	metricCacheOpsTotal.WithLabelValues(opGet, outcomeHit).Inc()
	return value, true
}

// Set stores the value under key. Store failures are logged and swallowed.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.store.Set(ctx, key, value, ttl); err != nil {
		metricCacheOpsTotal.WithLabelValues(opSet, outcomeError).Inc()
		loggers.Ctx(ctx).Warn().Err(err).Str(loggers.FieldCacheKey, key).Msg("cache set failed")
		return
	}
	metricCacheOpsTotal.WithLabelValues(opSet, outcomeOK).Inc()
}

// Delete drops the key. Store failures are logged and swallowed.
func (c *Cache) Delete(ctx context.Context, key string) {
	if err := c.store.Delete(ctx, key); err != nil {
		metricCacheOpsTotal.WithLabelValues(opDelete, outcomeError).Inc()
		loggers.Ctx(ctx).Warn().Err(err).Str(loggers.FieldCacheKey, key).Msg("cache delete failed")
		return
	}
	metricCacheOpsTotal.WithLabelValues(opDelete, outcomeOK).Inc()
}

// Clear drops every entry. Store failures are logged and swallowed.
func (c *Cache) Clear(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		metricCacheOpsTotal.WithLabelValues(opClear, outcomeError).Inc()
		loggers.Ctx(ctx).Warn().Err(err).Msg("cache clear failed")
		return
	}
	metricCacheOpsTotal.WithLabelValues(opClear, outcomeOK).Inc()
}

// GetOrSet returns the cached value for key, or computes it with factory and
// caches the result. factory runs at most once per call. A factory error is
// returned as-is and nothing is cached; a store error on the way in or out is
// absorbed, so the caller still gets the fresh value.
func (c *Cache) GetOrSet(ctx context.Context, key string, ttl time.Duration, factory func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	if value, ok := c.Get(ctx, key); ok {
		return value, nil
	}

	value, err := factory(ctx)
	if err != nil {
		return nil, err
	}

	c.Set(ctx, key, value, ttl)
	return value, nil
}
