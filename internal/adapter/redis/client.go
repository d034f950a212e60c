// Package redis implements the broker side of the pipeline on Redis: the
// domain event stream (Streams + consumer groups), the materialized view
// notification channel (Pub/Sub) and the redelivery deduper.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/facts-mng/internal/config"
)

// NewClient creates a Redis client from cfg and pings it.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rc := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rc, nil
}

// Pinger adapts a client to the health check interface.
type Pinger struct {
	Client *redis.Client
}

// Ping checks the server is reachable.
func (p Pinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx).Err()
}
