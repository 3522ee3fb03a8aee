package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed cooldown per key backed by redis SET NX. A nil client
// allows everything.
type Limiter struct {
	rdb    *redis.Client
	prefix string
}

func New(rdb *redis.Client, prefix string) *Limiter {
	return &Limiter{rdb: rdb, prefix: prefix}
}

func (l *Limiter) key(subject, action string) string {
	return fmt.Sprintf("%s:%s:%s", l.prefix, action, subject)
}

// Allow claims the cooldown for subject/action. When the cooldown is already
// held it returns false and the remaining wait.
func (l *Limiter) Allow(ctx context.Context, subject, action string, cooldown time.Duration) (bool, time.Duration, error) {
	if l == nil || l.rdb == nil || cooldown <= 0 {
		return true, 0, nil
	}

	key := l.key(subject, action)

	wasSet, err := l.rdb.SetNX(ctx, key, "locked", cooldown).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}
	if wasSet {
		return true, 0, nil
	}

	ttl, err := l.rdb.TTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		ttl = cooldown
	}
	return false, ttl, nil
}

// Clear releases the cooldown, used when the guarded action fails.
func (l *Limiter) Clear(ctx context.Context, subject, action string) error {
	if l == nil || l.rdb == nil {
		return nil
	}
	return l.rdb.Del(ctx, l.key(subject, action)).Err()
}
