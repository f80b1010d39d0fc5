package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowLimiter implements a fixed-window request counter backed by
// Redis. Key format: ratelimit:<client_ip>. The first hit in a window sets
// the expiry; the counter resets when the key expires.
type FixedWindowLimiter struct {
	client *redis.Client
	window time.Duration
	max    int64
}

// NewFixedWindowLimiter creates a limiter allowing max requests per window.
func NewFixedWindowLimiter(client *redis.Client, window time.Duration, max int64) *FixedWindowLimiter {
	return &FixedWindowLimiter{client: client, window: window, max: max}
}

// Allow increments the caller's window counter and reports whether the
// request is within the limit.
func (l *FixedWindowLimiter) Allow(ctx context.Context, clientIP string) (bool, error) {
	key := l.key(clientIP)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("ratelimit expire: %w", err)
		}
	}
	return n <= l.max, nil
}

func (l *FixedWindowLimiter) key(clientIP string) string {
	return "ratelimit:" + clientIP
}
