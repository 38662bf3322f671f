package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Gopesh111/TrueClause/internal/infrastructure/database/redis"
	"github.com/Gopesh111/TrueClause/internal/infrastructure/monitoring/logging"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

// RateLimiter decides whether a keyed request may proceed.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (redis.Decision, error)
}

// RateLimit limits by client IP and sets the X-RateLimit-* headers.  When
// the limiter itself fails the request is let through and a warning logged.
func RateLimit(limiter RateLimiter, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logging.FromContext(c.Request.Context(), logger).Warn("rate limiter unavailable, allowing request", logging.Err(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		reset := int(math.Ceil(d.ResetAfter.Seconds()))
		c.Header("X-RateLimit-Reset", strconv.Itoa(reset))

		if !d.Allowed {
			c.Header("Retry-After", strconv.Itoa(reset))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    string(errors.CodeRateLimit),
				"message": errors.DefaultMessageForCode(errors.CodeRateLimit),
			})
			return
		}
		c.Next()
	}
}

//Personal.AI order the ending
