package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gopesh111/TrueClause/internal/config"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

func newLimiter(t *testing.T, limit int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.RateLimitConfig{Addr: mr.Addr(), Limit: limit, Window: window, Prefix: "test:"}
	client, err := NewClient(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewRateLimiter(client, cfg, nil), mr
}

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	l, _ := newLimiter(t, 3, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		d, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, 2-i, d.Remaining)
		assert.Equal(t, 3, d.Limit)
	}

	d, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	assert.Greater(t, d.ResetAfter, time.Duration(0))
	assert.LessOrEqual(t, d.ResetAfter, time.Hour)

	other, err := l.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	l, mr := newLimiter(t, 1, time.Minute)
	ctx := context.Background()

	d, err := l.Allow(ctx, "client")
	require.NoError(t, err)
	require.True(t, d.Allowed)

	key := l.Key("client", time.Now())
	assert.True(t, strings.HasPrefix(key, "test:client:"))
	assert.True(t, mr.Exists(key))
	assert.InDelta(t, time.Minute, mr.TTL(key), float64(time.Second))

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists(key))
}

func TestRateLimiter_EmptyKey(t *testing.T) {
	l, _ := newLimiter(t, 1, time.Minute)
	_, err := l.Allow(context.Background(), "")
	assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))
}

func TestRateLimiter_RedisDown(t *testing.T) {
	l, mr := newLimiter(t, 1, time.Minute)
	mr.Close()

	_, err := l.Allow(context.Background(), "client")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeCacheError))
}

func TestNewRateLimiter_Defaults(t *testing.T) {
	l := NewRateLimiter(nil, config.RateLimitConfig{}, nil)
	assert.Equal(t, config.DefaultRateLimitLimit, l.limit)
	assert.Equal(t, config.DefaultRateLimitWindow, l.window)
	assert.Equal(t, config.DefaultRateLimitKeyPrefix, l.prefix)
}

//Personal.AI order the ending
