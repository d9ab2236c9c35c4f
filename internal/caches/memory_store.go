package caches

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// memoryStore is the in-process Store. Expiry is lazy: an expired entry is
// dropped on the Get that observes it, and overwritten by any later Set. The
// key space here is a handful of warmed routes, so no sweeper is needed.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	nowFunc func() time.Time
}

func NewMemoryStore() Store {
	return &memoryStore{
		entries: make(map[string]memoryEntry),
		nowFunc: time.Now,
	}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrCacheMiss
	}
	if s.nowFunc().After(entry.expiresAt) {
		s.mu.Lock()
		// re-check under the write lock; a concurrent Set may have renewed it
		if current, ok := s.entries[key]; ok && s.nowFunc().After(current.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, ErrCacheMiss
	}
	return entry.value, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{
		value:     value,
		expiresAt: s.nowFunc().Add(ttl),
	}
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *memoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]memoryEntry)
	return nil
}
