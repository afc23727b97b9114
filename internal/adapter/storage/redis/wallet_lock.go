package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only if it still holds the caller's token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// WalletLock implements ports.WalletLock with SET NX PX and a
// compare-and-delete release.
type WalletLock struct {
	client *goredis.Client
	prefix string
}

// NewWalletLock creates a Redis-backed per-wallet signing lock.
func NewWalletLock(client *goredis.Client) *WalletLock {
	return &WalletLock{
		client: client,
		prefix: "walletlock:",
	}
}

// Acquire takes the lock for ttl. It returns "" without error when another
// holder owns it.
func (l *WalletLock) Acquire(ctx context.Context, walletID uuid.UUID, ttl time.Duration) (string, error) {
	token, err := newLockToken()
	if err != nil {
		return "", fmt.Errorf("wallet lock token: %w", err)
	}

	_, err = l.client.SetArgs(ctx, l.prefix+walletID.String(), token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis wallet lock acquire: %w", err)
	}
	return token, nil
}

// Release drops the lock if token still owns it. A lock that expired and was
// taken by someone else is left alone.
func (l *WalletLock) Release(ctx context.Context, walletID uuid.UUID, token string) error {
	if token == "" {
		return nil
	}
	if err := releaseScript.Run(ctx, l.client, []string{l.prefix + walletID.String()}, token).Err(); err != nil {
		return fmt.Errorf("redis wallet lock release: %w", err)
	}
	return nil
}

func newLockToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
