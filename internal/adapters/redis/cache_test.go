package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGetDelete(t *testing.T) {
	mr, client := setupTestRedis(t)
	cache := NewCache(client, "")
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "games", []byte(`[{"title":"Catan"}]`), 5*time.Minute))

		got, err := cache.Get(ctx, "games")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"title":"Catan"}]`, string(got))
		assert.True(t, mr.Exists("bgcache:games"))
		ttl := mr.TTL("bgcache:games")
		assert.True(t, ttl > 0 && ttl <= 5*time.Minute)
	})

	t.Run("get non-existent key", func(t *testing.T) {
		got, err := cache.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := cache.Delete(ctx, "games")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = cache.Delete(ctx, "games")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("empty key", func(t *testing.T) {
		require.Error(t, cache.Set(ctx, "", nil, 0))
		_, err := cache.Get(ctx, "")
		require.Error(t, err)
		_, err = cache.Delete(ctx, "")
		require.Error(t, err)
	})
}

func TestCache_Expiry(t *testing.T) {
	mr, client := setupTestRedis(t)
	cache := NewCache(client, "test:")
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "games", []byte("x"), time.Minute))
	mr.FastForward(2 * time.Minute)

	got, err := cache.Get(ctx, "games")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_Health(t *testing.T) {
	mr, client := setupTestRedis(t)
	cache := NewCache(client, "")

	require.NoError(t, cache.Health(context.Background()))
	mr.Close()
	assert.Error(t, cache.Health(context.Background()))
}
