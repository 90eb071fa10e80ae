package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "deal:1", "payload", time.Minute))
	got, ok := cache.Get(ctx, "deal:1")
	assert.True(t, ok)
	assert.Equal(t, "payload", got)

	require.NoError(t, cache.Set(ctx, "deal:1", "updated", time.Minute))
	got, _ = cache.Get(ctx, "deal:1")
	assert.Equal(t, "updated", got)
	assert.Equal(t, 1, cache.Len())
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "short", "a", time.Minute))
	require.NoError(t, cache.Set(ctx, "forever", "b", 0))

	now = now.Add(59 * time.Second)
	_, ok := cache.Get(ctx, "short")
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok = cache.Get(ctx, "short")
	assert.False(t, ok)
	assert.Equal(t, 1, cache.Len())

	now = now.Add(24 * time.Hour)
	_, ok = cache.Get(ctx, "forever")
	assert.True(t, ok)
}

func TestMemoryCache_Concurrent(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = cache.Set(ctx, "key", "value", time.Minute)
				cache.Get(ctx, "key")
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	assert.Equal(t, 1, cache.Len())
}

var _ CacheRepository = (*MemoryCache)(nil)
var _ CacheRepository = (*RedisCache)(nil)
