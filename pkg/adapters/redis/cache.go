// Package redis provides the Redis-backed ports.Cache implementation, used
// when the server runs with more than one replica and the instances should
// share computed results.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nepalikit/nepalikit/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the cache.
const DefaultPrefix = "nepalikit:"

// Cache implements ports.Cache on a Redis backend.
type Cache struct {
	client     *backend.Client
	prefix     string
	defaultTTL time.Duration
	owned      bool
}

// Option configures the cache.
type Option func(*Cache)

// WithPrefix overrides the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) { c.prefix = prefix }
}

// WithDefaultTTL applies a ttl to Set calls that pass zero. Useful to bound
// memory on shared Redis instances without threading a ttl through callers.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.defaultTTL = ttl }
}

// New connects to the Redis instance at addr and owns the resulting client:
// Close tears the connection down.
func New(addr string, opts ...Option) *Cache {
	c := NewFromClient(backend.NewClient(&backend.Options{Addr: addr}), opts...)
	c.owned = true
	return c
}

// NewFromClient wraps an existing client. The caller keeps ownership; Close
// does not touch the connection.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ping verifies the backend is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Get returns the value stored under key.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return val, nil
}

// Set stores value under key. Zero ttl falls back to the configured default
// ttl, or no expiry when none is set.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

// Close releases the client when this cache created it.
func (c *Cache) Close() error {
	if !c.owned {
		return nil
	}
	return c.client.Close()
}
