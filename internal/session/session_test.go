package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb, err := NewRedisClient(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRedisStore(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := NewRedisStore(rdb)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "abc", []byte(`{"id":"abc"}`), time.Minute))
	data, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"abc"}`, string(data))
	assert.True(t, mr.Exists("assessment:abc"))

	mr.FastForward(2 * time.Minute)
	_, err = store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewRedisClientUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisClient(context.Background(), addr, "", 0)
	assert.Error(t, err)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "x", []byte("payload"), time.Minute))
	data, err := store.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	now = now.Add(61 * time.Second)
	_, err = store.Get(ctx, "x")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Get(ctx, "never")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisLimiter(t *testing.T) {
	mr, rdb := newTestRedis(t)
	limiter := NewRedisLimiter(rdb, RateLimitConfig{MaxSubmissions: 2, Window: 10 * time.Second})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)

	// other clients are counted separately
	ok, err = limiter.Allow(ctx, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(11 * time.Second)
	ok, err = limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiter(t *testing.T) {
	limiter := NewMemoryLimiter(RateLimitConfig{MaxSubmissions: 1, Window: time.Minute})
	now := time.Now()
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	ok, _ := limiter.Allow(ctx, "c")
	assert.True(t, ok)
	ok, _ = limiter.Allow(ctx, "c")
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	ok, _ = limiter.Allow(ctx, "c")
	assert.True(t, ok)
}
