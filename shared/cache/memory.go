package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// memoryCache serves single-instance deployments and tests when no Redis is configured.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache() Cache {
	return &memoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (cache *memoryCache) Save(_ context.Context, key string, value any, duration int) error {
	raw, err := encode(value)
	if err != nil {
		return err
	}

	entry := memoryEntry{value: raw}
	if duration > 0 {
		entry.expiresAt = cache.now().Add(time.Duration(duration) * time.Second)
	}

	cache.mu.Lock()
	cache.entries[key] = entry
	cache.mu.Unlock()

	return nil
}

func (cache *memoryCache) Get(_ context.Context, key string, value any) error {
	cache.mu.Lock()
	entry, ok := cache.entries[key]
	if ok && !entry.expiresAt.IsZero() && cache.now().After(entry.expiresAt) {
		delete(cache.entries, key)
		ok = false
	}
	cache.mu.Unlock()

	if !ok {
		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	return decode(string(entry.value), value)
}

func (cache *memoryCache) Delete(_ context.Context, key string) error {
	cache.mu.Lock()
	delete(cache.entries, key)
	cache.mu.Unlock()

	return nil
}

func (cache *memoryCache) Clear(_ context.Context, prefix string) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	for key := range cache.entries {
		if strings.HasPrefix(key, prefix) {
			delete(cache.entries, key)
		}
	}

	return nil
}
