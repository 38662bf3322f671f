package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gopesh111/TrueClause/internal/infrastructure/database/redis"
	"github.com/Gopesh111/TrueClause/internal/infrastructure/monitoring/logging"
	"github.com/Gopesh111/TrueClause/internal/testutil"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, body io.Reader, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) {
		seen = logging.RequestIDFrom(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := serve(r, http.MethodGet, "/x", nil, http.Header{HeaderRequestID: {"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123", seen)

	w = serve(r, http.MethodGet, "/x", nil, http.Header{HeaderRequestID: {strings.Repeat("a", maxRequestIDLen+1)}})
	assert.Len(t, w.Header().Get(HeaderRequestID), 36)
	assert.Equal(t, w.Header().Get(HeaderRequestID), seen)

	w = serve(r, http.MethodGet, "/x", nil, nil)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestRequestLogging_Levels(t *testing.T) {
	logger := testutil.NewMockLogger()
	r := gin.New()
	r.Use(RequestID(), RequestLogging(logger, LoggingConfig{SkipPaths: []string{"/healthz"}, SlowThreshold: 20 * time.Millisecond}))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })
	r.GET("/slow", func(c *gin.Context) {
		time.Sleep(30 * time.Millisecond)
		c.Status(http.StatusOK)
	})
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, http.MethodGet, "/ok", nil, nil)
	serve(r, http.MethodGet, "/bad", nil, nil)
	serve(r, http.MethodGet, "/boom", nil, nil)
	serve(r, http.MethodGet, "/slow", nil, nil)
	serve(r, http.MethodGet, "/healthz", nil, nil)

	assert.True(t, logger.HasMessage("info", "HTTP request completed"))
	assert.True(t, logger.HasMessage("warn", "HTTP request completed with client error"))
	assert.True(t, logger.HasMessage("error", "HTTP request completed with server error"))
	assert.True(t, logger.HasMessage("warn", "HTTP request completed (slow)"))
	assert.Len(t, logger.GetMessages(), 4, "skipped paths are not logged")

	for _, m := range logger.GetMessages() {
		_, ok := m.Field(logging.FieldRequestID)
		assert.True(t, ok, "%q carries the request id", m.Message)
	}
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(8))
	r.POST("/x", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/x", strings.NewReader("12345678"), nil).Code)
	assert.Equal(t, http.StatusRequestEntityTooLarge, serve(r, http.MethodPost, "/x", strings.NewReader("123456789"), nil).Code)
}

func TestRecovery(t *testing.T) {
	logger := testutil.NewMockLogger()
	r := gin.New()
	r.Use(Recovery(logger))
	r.GET("/panic", func(c *gin.Context) { panic("secret internals") })

	w := serve(r, http.MethodGet, "/panic", nil, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), string(errors.ErrCodeInternal))
	assert.NotContains(t, w.Body.String(), "secret internals")
	assert.True(t, logger.HasMessage("error", "panic recovered"))
}

type fixedLimiter struct {
	d   redis.Decision
	err error
}

func (l fixedLimiter) Allow(context.Context, string) (redis.Decision, error) { return l.d, l.err }

func TestRateLimit_Headers(t *testing.T) {
	tests := []struct {
		name       string
		decision   redis.Decision
		wantStatus int
		retryAfter string
	}{
		{"allowed", redis.Decision{Allowed: true, Limit: 30, Remaining: 29, ResetAfter: 59500 * time.Millisecond}, http.StatusOK, ""},
		{"denied", redis.Decision{Allowed: false, Limit: 30, Remaining: 0, ResetAfter: 12 * time.Second}, http.StatusTooManyRequests, "12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RateLimit(fixedLimiter{d: tt.decision}, logging.NewNopLogger()))
			r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := serve(r, http.MethodGet, "/x", nil, nil)
			require.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "30", w.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, tt.retryAfter, w.Header().Get("Retry-After"))
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "60", w.Header().Get("X-RateLimit-Reset"))
			} else {
				assert.Contains(t, w.Body.String(), string(errors.CodeRateLimit))
			}
		})
	}
}

type recorder struct {
	method, path string
	status       int
}

func (r *recorder) RecordHTTPRequest(method, path string, status int, _ time.Duration) {
	r.method, r.path, r.status = method, path, status
}

func TestMetrics_RouteTemplate(t *testing.T) {
	rec := &recorder{}
	r := gin.New()
	r.Use(Metrics(rec))
	r.GET("/demos/:name", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, http.MethodGet, "/demos/rental", nil, nil)
	assert.Equal(t, "/demos/:name", rec.path)
	assert.Equal(t, http.StatusOK, rec.status)

	serve(r, http.MethodGet, "/nope", nil, nil)
	assert.Equal(t, "unmatched", rec.path)
	assert.Equal(t, http.StatusNotFound, rec.status)
}

//Personal.AI order the ending
