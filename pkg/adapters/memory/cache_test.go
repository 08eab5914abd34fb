package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/nepalikit/nepalikit/pkg/adapters/memory"
	"github.com/nepalikit/nepalikit/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_Contract(t *testing.T) {
	cache := memory.NewCache()
	defer cache.Close()

	ports.RunCacheContract(t, cache)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	cache := memory.NewCache()
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "short", []byte("lived"), 10*time.Millisecond))

	got, err := cache.Get(ctx, "short")
	require.NoError(t, err)
	assert.Equal(t, []byte("lived"), got)

	time.Sleep(25 * time.Millisecond)

	_, err = cache.Get(ctx, "short")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := memory.NewCache()
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "pinned", []byte("stays"), 0))
	time.Sleep(15 * time.Millisecond)

	got, err := cache.Get(ctx, "pinned")
	require.NoError(t, err)
	assert.Equal(t, []byte("stays"), got)
}

func TestMemoryCache_CloseDropsEntries(t *testing.T) {
	cache := memory.NewCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, cache.Close())

	_, err := cache.Get(ctx, "k")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}
