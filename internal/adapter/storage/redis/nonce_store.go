package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// NonceStore implements ports.NonceStore. Nonces are scoped per merchant and
// remembered for the signature timestamp window.
type NonceStore struct {
	client *goredis.Client
	prefix string
}

// NewNonceStore creates a Redis-backed store for signed-request nonces.
func NewNonceStore(client *goredis.Client) *NonceStore {
	return &NonceStore{
		client: client,
		prefix: "apinonce:",
	}
}

// CheckAndSet records nonce for merchantID and reports whether it was unused.
func (s *NonceStore) CheckAndSet(ctx context.Context, merchantID string, nonce string, ttl time.Duration) (bool, error) {
	fresh, err := s.client.SetNX(ctx, s.prefix+merchantID+":"+nonce, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis nonce check: %w", err)
	}
	return fresh, nil
}
