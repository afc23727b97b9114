package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// EventDedup implements ports.EventDedup using Redis SET NX.
type EventDedup struct {
	client *goredis.Client
	prefix string
}

// NewEventDedup creates a Redis-backed chain event deduplicator.
func NewEventDedup(client *goredis.Client) *EventDedup {
	return &EventDedup{
		client: client,
		prefix: "chainevent:",
	}
}

// FirstSeen marks key as seen for ttl and reports whether it was new.
func (d *EventDedup) FirstSeen(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := d.client.SetArgs(ctx, d.prefix+key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis event dedup: %w", err)
	}
	return result == "OK", nil
}

// Forget deletes key.
func (d *EventDedup) Forget(ctx context.Context, key string) error {
	if err := d.client.Del(ctx, d.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis event dedup forget: %w", err)
	}
	return nil
}
