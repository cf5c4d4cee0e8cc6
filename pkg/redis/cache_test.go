package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedStats struct {
	Total int64 `json:"total"`
}

func TestCache_RoundTrip(t *testing.T) {
	cache := NewCache(newTestRedis(t), "harvest")
	ctx := context.Background()

	var miss cachedStats
	hit, err := cache.GetJSON(ctx, "stats", &miss)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.SetJSON(ctx, "stats", &cachedStats{Total: 42}, time.Minute))

	var got cachedStats
	hit, err = cache.GetJSON(ctx, "stats", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, int64(42), got.Total)
}

func TestCache_Invalidate(t *testing.T) {
	cache := NewCache(newTestRedis(t), "")
	ctx := context.Background()

	require.NoError(t, cache.SetJSON(ctx, "stats", &cachedStats{Total: 1}, time.Minute))
	require.NoError(t, cache.Invalidate(ctx, "stats"))

	var got cachedStats
	hit, err := cache.GetJSON(ctx, "stats", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_CorruptPayload(t *testing.T) {
	cli := newTestRedis(t)
	cache := NewCache(cli, "harvest")
	ctx := context.Background()

	require.NoError(t, cli.Set(ctx, "harvest:stats", "not-json", time.Minute).Err())

	var got cachedStats
	_, err := cache.GetJSON(ctx, "stats", &got)
	assert.Error(t, err)
}
