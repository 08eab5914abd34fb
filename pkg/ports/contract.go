package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunCacheContract runs a suite of tests verifying that a Cache implementation
// adheres to the interface contract. Expiry timing is adapter-specific and is
// covered by each adapter's own tests.
func RunCacheContract(t *testing.T, cache Cache) {
	ctx := context.Background()
	key := "contract-" + time.Now().Format("20060102150405.000")

	t.Run("SetAndGet", func(t *testing.T) {
		err := cache.Set(ctx, key, []byte("nepal"), 0)
		require.NoError(t, err, "Set should not return error")

		got, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, []byte("nepal"), got)
	})

	t.Run("GetMissing", func(t *testing.T) {
		_, err := cache.Get(ctx, "absent-"+key)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, []byte("first"), 0))
		require.NoError(t, cache.Set(ctx, key, []byte("second"), 0))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), got)
	})

	t.Run("ValueIsolation", func(t *testing.T) {
		src := []byte("immutable")
		require.NoError(t, cache.Set(ctx, key, src, 0))
		src[0] = 'X'

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("immutable"), got, "stored value must not alias caller's slice")

		got[0] = 'Y'
		again, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("immutable"), again, "returned value must not alias stored slice")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, []byte("gone"), 0))
		require.NoError(t, cache.Delete(ctx, key))

		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, ErrCacheMiss)

		assert.NoError(t, cache.Delete(ctx, key), "deleting an absent key is not an error")
	})
}
