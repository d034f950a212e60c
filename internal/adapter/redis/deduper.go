package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Deduper records processed event sequences so a redelivered stream entry
// is applied only once across all instances.
type Deduper struct {
	rc  *redis.Client
	ttl time.Duration
}

// NewDeduper creates a deduper whose markers expire after ttl.
func NewDeduper(rc *redis.Client, ttl time.Duration) *Deduper {
	return &Deduper{rc: rc, ttl: ttl}
}

func (d *Deduper) key(seq int64) string {
	return fmt.Sprintf("processed:%d", seq)
}

// MarkProcessed records seq and reports whether it was newly recorded.
func (d *Deduper) MarkProcessed(ctx context.Context, seq int64) (bool, error) {
	return d.rc.SetNX(ctx, d.key(seq), 1, d.ttl).Result()
}

// Forget removes the marker for seq so a failed apply can be retried.
func (d *Deduper) Forget(ctx context.Context, seq int64) error {
	return d.rc.Del(ctx, d.key(seq)).Err()
}
