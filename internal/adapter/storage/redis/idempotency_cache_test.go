package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*IdempotencyCache, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	return NewIdempotencyCache(client), s
}

func TestIdempotencyCache_SetAndGet(t *testing.T) {
	cache, s := newTestCache(t)
	ctx := context.Background()

	key := "550e8400-e29b-41d4-a716-446655440000:ORDER-001"
	value := []byte(`{"payment_id":"pay_abc","status":"PENDING"}`)

	result, err := cache.Get(ctx, key)
	assert.NoError(t, err)
	assert.Nil(t, result)

	require.NoError(t, cache.Set(ctx, key, value, 24*time.Hour))

	result, err = cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, value, result)
	assert.True(t, s.Exists("payorder:"+key))
}

func TestIdempotencyCache_TTLExpiry(t *testing.T) {
	cache, s := newTestCache(t)
	ctx := context.Background()

	key := "merchant-456:ORDER-002"
	require.NoError(t, cache.Set(ctx, key, []byte(`{"payment_id":"pay_x"}`), time.Second))

	s.FastForward(2 * time.Second)

	result, err := cache.Get(ctx, key)
	assert.NoError(t, err)
	assert.Nil(t, result, "expired key should return nil")
}

func TestIdempotencyCache_FirstWriteWins(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	key := "merchant-789:ORDER-003"
	require.NoError(t, cache.Set(ctx, key, []byte(`{"payment_id":"pay_first"}`), time.Hour))
	require.NoError(t, cache.Set(ctx, key, []byte(`{"payment_id":"pay_second"}`), time.Hour))

	result, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"payment_id":"pay_first"}`, string(result))
}

func TestIdempotencyCache_RedisDown(t *testing.T) {
	cache, s := newTestCache(t)
	s.Close()

	_, err := cache.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, cache.Set(context.Background(), "k", []byte("v"), time.Minute))
}
