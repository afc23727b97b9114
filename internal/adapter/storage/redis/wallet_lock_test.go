package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletLock_AcquireExclusive(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewWalletLock(client)
	ctx := context.Background()
	walletID := uuid.New()

	token, err := lock.Acquire(ctx, walletID, time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	second, err := lock.Acquire(ctx, walletID, time.Minute)
	require.NoError(t, err)
	assert.Empty(t, second, "held lock should not be granted twice")

	other, err := lock.Acquire(ctx, uuid.New(), time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, other, "different wallets lock independently")
}

func TestWalletLock_ReleaseAllowsReacquire(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewWalletLock(client)
	ctx := context.Background()
	walletID := uuid.New()

	token, err := lock.Acquire(ctx, walletID, time.Minute)
	require.NoError(t, err)
	require.NoError(t, lock.Release(ctx, walletID, token))

	again, err := lock.Acquire(ctx, walletID, time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, again)
}

func TestWalletLock_StaleTokenCannotRelease(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewWalletLock(client)
	ctx := context.Background()
	walletID := uuid.New()

	stale, err := lock.Acquire(ctx, walletID, time.Second)
	require.NoError(t, err)

	s.FastForward(2 * time.Second)

	current, err := lock.Acquire(ctx, walletID, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, current)

	require.NoError(t, lock.Release(ctx, walletID, stale))
	assert.True(t, s.Exists("walletlock:"+walletID.String()), "stale holder must not drop the new lock")

	require.NoError(t, lock.Release(ctx, walletID, current))
	assert.False(t, s.Exists("walletlock:"+walletID.String()))
}

func TestWalletLock_ReleaseEmptyToken(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewWalletLock(client)

	assert.NoError(t, lock.Release(context.Background(), uuid.New(), ""))
}
