package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/Gopesh111/TrueClause/internal/config"
	"github.com/Gopesh111/TrueClause/internal/infrastructure/monitoring/logging"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAfter time.Duration
}

// RateLimiter counts requests per key in fixed windows: INCR, then EXPIRE on
// the first hit of a window.
type RateLimiter struct {
	client *Client
	limit  int
	window time.Duration
	prefix string
	logger logging.Logger
}

// NewRateLimiter applies the config defaults for unset fields.
func NewRateLimiter(client *Client, cfg config.RateLimitConfig, log logging.Logger) *RateLimiter {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if cfg.Limit <= 0 {
		cfg.Limit = config.DefaultRateLimitLimit
	}
	if cfg.Window <= 0 {
		cfg.Window = config.DefaultRateLimitWindow
	}
	if cfg.Prefix == "" {
		cfg.Prefix = config.DefaultRateLimitKeyPrefix
	}
	return &RateLimiter{client: client, limit: cfg.Limit, window: cfg.Window, prefix: cfg.Prefix, logger: log}
}

// Key returns the Redis key for id in the current window.
func (l *RateLimiter) Key(id string, now time.Time) string {
	bucket := now.UnixNano() / int64(l.window)
	return l.prefix + id + ":" + strconv.FormatInt(bucket, 10)
}

// Allow records one request for id.  A Redis failure is returned to the
// caller, which decides whether to fail open.
func (l *RateLimiter) Allow(ctx context.Context, id string) (Decision, error) {
	if id == "" {
		return Decision{}, errors.InvalidParam("rate limit key is empty")
	}
	key := l.Key(id, time.Now())

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return Decision{}, errors.Wrap(err, errors.ErrCodeCacheError, "rate limit increment failed")
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return Decision{}, errors.Wrap(err, errors.ErrCodeCacheError, "rate limit expire failed")
		}
	}

	ttl, err := l.client.PTTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		if ttl == -1 {
			_ = l.client.Expire(ctx, key, l.window).Err()
		}
		ttl = l.window
	}

	d := Decision{
		Allowed:    count <= int64(l.limit),
		Limit:      l.limit,
		Remaining:  max(l.limit-int(count), 0),
		ResetAfter: ttl,
	}
	if !d.Allowed {
		l.logger.Debug("rate limit exceeded", logging.String("key", key), logging.Int64("count", count))
	}
	return d, nil
}

//Personal.AI order the ending
