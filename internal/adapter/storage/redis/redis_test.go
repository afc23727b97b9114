package redis

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"cryptopay-gateway/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisConfigFor(t *testing.T, addr string) config.RedisConfig {
	t.Helper()
	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	p, err := strconv.Atoi(port)
	require.NoError(t, err)
	return config.RedisConfig{Host: host, Port: p, OperationTimeout: time.Second}
}

func TestClientOptions(t *testing.T) {
	opts := clientOptions(config.RedisConfig{
		Host:             "redis.internal",
		Port:             6380,
		Password:         "hunter2",
		DB:               3,
		PoolSize:         40,
		OperationTimeout: 750 * time.Millisecond,
	})

	assert.Equal(t, "redis.internal:6380", opts.Addr)
	assert.Equal(t, "hunter2", opts.Password)
	assert.Equal(t, 3, opts.DB)
	assert.Equal(t, 40, opts.PoolSize)
	assert.Equal(t, 750*time.Millisecond, opts.ReadTimeout)
	assert.Equal(t, 750*time.Millisecond, opts.WriteTimeout)
	assert.Equal(t, 750*time.Millisecond, opts.PoolTimeout)
}

func TestClientOptions_LibraryDefaults(t *testing.T) {
	opts := clientOptions(config.RedisConfig{Host: "localhost", Port: 6379})
	assert.Zero(t, opts.PoolSize)
	assert.Zero(t, opts.ReadTimeout)
	assert.Zero(t, opts.PoolTimeout)
}

func TestNewClient(t *testing.T) {
	s := miniredis.RunT(t)
	s.RequireAuth("secret")
	cfg := redisConfigFor(t, s.Addr())
	cfg.Password = "secret"

	client, err := NewClient(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewClient_WrongPassword(t *testing.T) {
	s := miniredis.RunT(t)
	s.RequireAuth("secret")
	cfg := redisConfigFor(t, s.Addr())
	cfg.Password = "wrong"

	_, err := NewClient(context.Background(), cfg, zerolog.Nop())
	assert.ErrorContains(t, err, "pinging redis")
}

func TestNewClient_Unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := redisConfigFor(t, s.Addr())
	s.Close()

	_, err := NewClient(context.Background(), cfg, zerolog.Nop())
	assert.ErrorContains(t, err, cfg.Addr())
}
