// Package memory provides the in-process ports.Cache implementation, the
// default when no Redis address is configured.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/nepalikit/nepalikit/pkg/ports"
)

type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

// Cache implements ports.Cache with a mutex-guarded map.
// Expired entries are dropped lazily on read.
type Cache struct {
	mu   sync.RWMutex
	data map[string]entry
}

// NewCache creates an empty in-memory cache.
func NewCache() *Cache {
	return &Cache{data: make(map[string]entry)}
}

// Get returns a copy of the value stored under key.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		return nil, ports.ErrCacheMiss
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; the entry may have been replaced.
		if cur, ok := c.data[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return nil, ports.ErrCacheMiss
	}
	return append([]byte(nil), e.value...), nil
}

// Set stores a copy of value under key.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.data[key] = e
	c.mu.Unlock()
	return nil
}

// Delete removes key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
	return nil
}

// Close drops all entries.
func (c *Cache) Close() error {
	c.mu.Lock()
	c.data = make(map[string]entry)
	c.mu.Unlock()
	return nil
}
