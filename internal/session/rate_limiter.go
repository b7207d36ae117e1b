package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitConfig defines how many submissions a client may make per window
type RateLimitConfig struct {
	MaxSubmissions int
	Window         time.Duration
}

// Limiter decides whether a client may submit again
type Limiter interface {
	Allow(ctx context.Context, client string) (bool, error)
}

// RedisLimiter counts submissions in Redis with a fixed window per client
type RedisLimiter struct {
	rdb    *redis.Client
	config RateLimitConfig
}

func NewRedisLimiter(rdb *redis.Client, config RateLimitConfig) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, config: config}
}

// Allow records the submission and reports whether it is within the limit
func (rl *RedisLimiter) Allow(ctx context.Context, client string) (bool, error) {
	if rl == nil || rl.rdb == nil {
		return false, fmt.Errorf("Redis client not available")
	}

	key := fmt.Sprintf("rate:submit:%s", client)

	count, err := rl.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}

	// Set expiration if first time
	if count == 1 {
		if err := rl.rdb.Expire(ctx, key, rl.config.Window).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(rl.config.MaxSubmissions), nil
}

type window struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is the in-process Limiter used when no Redis is configured
type MemoryLimiter struct {
	mu      sync.Mutex
	config  RateLimitConfig
	windows map[string]*window
	now     func() time.Time
}

func NewMemoryLimiter(config RateLimitConfig) *MemoryLimiter {
	return &MemoryLimiter{config: config, windows: make(map[string]*window), now: time.Now}
}

func (ml *MemoryLimiter) Allow(_ context.Context, client string) (bool, error) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	now := ml.now()
	w, ok := ml.windows[client]
	if !ok || now.After(w.resetAt) {
		w = &window{resetAt: now.Add(ml.config.Window)}
		ml.windows[client] = w
	}
	w.count++
	return w.count <= ml.config.MaxSubmissions, nil
}
