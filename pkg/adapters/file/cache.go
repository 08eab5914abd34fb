// Package file provides a ports.Cache backed by JSON files on disk, for
// single-instance deployments that want cached searches to survive restarts
// without running Redis.
package file

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nepalikit/nepalikit/pkg/ports"
)

type entry struct {
	Key       string    `json:"key"`
	Value     []byte    `json:"value"`
	ExpiresAt time.Time `json:"expires_at,omitempty"` // zero means no expiry
}

// Cache implements ports.Cache with one JSON file per entry. Writes are
// atomic within a process; concurrent processes sharing a directory may
// lose updates to each other, which a cache tolerates.
type Cache struct {
	mu       sync.Mutex
	basePath string
}

// NewCache creates a cache rooted at basePath. If basePath is empty, it
// defaults to ".nepalikit/cache". The directory is created on first write.
func NewCache(basePath string) *Cache {
	if basePath == "" {
		basePath = filepath.Join(".nepalikit", "cache")
	}
	return &Cache{basePath: basePath}
}

// Get returns the value stored under key. Expired entries are removed on
// read; an entry that does not parse is dropped and reported as a miss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	path := c.entryPath(key)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ports.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		_ = os.Remove(path)
		return nil, ports.ErrCacheMiss
	}
	if !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt) {
		_ = os.Remove(path)
		return nil, ports.ErrCacheMiss
	}
	return e.Value, nil
}

// Set persists the entry to a JSON file atomically. It writes to a temporary
// file first, syncs via fsync, and then renames it to the destination.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(c.basePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure cache directory: %w", err)
	}

	e := entry{Key: key, Value: value}
	if ttl > 0 {
		e.ExpiresAt = time.Now().Add(ttl)
	}
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	// The temp file lives in the same directory so the rename stays on one
	// filesystem, which is required for it to be atomic.
	tmpFile, err := os.CreateTemp(c.basePath, "tmp-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Close before rename; Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	destPath := c.entryPath(key)
	// On Windows os.Rename fails when the destination exists, so remove it
	// first. The brief gap is acceptable for a cache; a torn write is not.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to replace cache entry: %w", err)
		}
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file into cache: %w", err)
	}
	return nil
}

// Delete removes the entry file.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := os.Remove(c.entryPath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// Close is a no-op; entries persist until they expire or are deleted.
func (c *Cache) Close() error { return nil }

// entryPath hashes the key into a filename. Keys carry raw query text, so
// they cannot be used as filenames directly.
func (c *Cache) entryPath(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(c.basePath, fmt.Sprintf("%x.json", sum))
}
