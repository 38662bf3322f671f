package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gopesh111/TrueClause/internal/application/audit"
	"github.com/Gopesh111/TrueClause/internal/domain/contract"
	"github.com/Gopesh111/TrueClause/internal/domain/rulebook"
	"github.com/Gopesh111/TrueClause/internal/infrastructure/database/redis"
	"github.com/Gopesh111/TrueClause/internal/interfaces/http/handlers"
	"github.com/Gopesh111/TrueClause/internal/testutil"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

type stubService struct {
	mu       sync.Mutex
	requests []audit.Request
	result   *audit.Result
	err      error
	email    string
}

func (s *stubService) Audit(_ context.Context, req audit.Request) (*audit.Result, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	return s.result, s.err
}

func (s *stubService) DraftEmail(_ context.Context, _ string, a *contract.ContractAnalysis) (string, error) {
	if !a.HasRisks() {
		return "", errors.InvalidParam("analysis has no risks to negotiate")
	}
	return s.email, s.err
}

func (s *stubService) Demo(name string) (*audit.Result, error) {
	if _, err := audit.LookupDemo(name); err != nil {
		return nil, err
	}
	return s.result, nil
}

type stubLimiter struct {
	decision redis.Decision
	err      error
}

func (l stubLimiter) Allow(context.Context, string) (redis.Decision, error) { return l.decision, l.err }

type stubRecorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *stubRecorder) RecordHTTPRequest(method, path string, status int, _ time.Duration) {
	r.mu.Lock()
	r.paths = append(r.paths, method+" "+path)
	r.mu.Unlock()
}

func newTestRouter(svc handlers.AuditService, opts ...func(*RouterConfig)) *gin.Engine {
	cfg := RouterConfig{
		AuditHandler:  handlers.NewAuditHandler(svc),
		RulesHandler:  handlers.NewRulesHandler(rulebook.MustCatalog()),
		HealthHandler: handlers.NewHealthHandler("test"),
		Mode:          gin.TestMode,
		MaxBodySize:   1 << 20,
	}
	for _, o := range opts {
		o(&cfg)
	}
	return NewRouter(cfg)
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateAudit(t *testing.T) {
	svc := &stubService{result: &audit.Result{AuditID: "a-1", Report: "REPORT", Assessment: contract.Assessment{Scored: true, Score: 60}}}
	r := newTestRouter(svc)

	w := do(r, http.MethodPost, "/api/v1/audits?export=true",
		`{"document_type":"rental","language":"English","contract_text":"lease text","draft_email":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "a-1", body["audit_id"])
	assert.Equal(t, "REPORT", body["report"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	require.Len(t, svc.requests, 1)
	assert.Equal(t, audit.Request{DocumentType: "rental", Language: "English", ContractText: "lease text", DraftEmail: true, Export: true}, svc.requests[0])
}

func TestCreateAudit_ErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    errors.ErrorCode
		message string
	}{
		{"unreadable", errors.New(errors.CodeDocumentUnreadable, "document text is empty"), http.StatusUnprocessableEntity, errors.CodeDocumentUnreadable, "document text is empty"},
		{"unknown type", errors.New(errors.CodeUnknownDocumentType, "unknown document type"), http.StatusBadRequest, errors.CodeUnknownDocumentType, "unknown document type"},
		{"unavailable", errors.New(errors.CodeProviderUnavailable, "x"), http.StatusServiceUnavailable, errors.CodeProviderUnavailable,
			"Both primary and backup engines are currently unavailable due to high traffic."},
		{"schema", errors.New(errors.CodeSchemaValidation, "risks[0]: bad"), http.StatusBadGateway, errors.CodeSchemaValidation,
			"analysis output did not match the expected schema"},
		{"foreign", assert.AnError, http.StatusInternalServerError, errors.ErrCodeInternal, "internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&stubService{err: tc.err})
			w := do(r, http.MethodPost, "/api/v1/audits", `{"contract_text":"x"}`)
			assert.Equal(t, tc.status, w.Code)
			body := decode(t, w)
			assert.Equal(t, string(tc.code), body["code"])
			assert.Equal(t, tc.message, body["message"])
		})
	}
}

func TestCreateAudit_BadJSON(t *testing.T) {
	svc := &stubService{}
	w := do(newTestRouter(svc), http.MethodPost, "/api/v1/audits", `{"contract_text":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.requests)
}

func TestCreateAudit_BodyTooLarge(t *testing.T) {
	svc := &stubService{}
	r := newTestRouter(svc, func(c *RouterConfig) { c.MaxBodySize = 16 })
	w := do(r, http.MethodPost, "/api/v1/audits", `{"contract_text":"this body is longer than sixteen bytes"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.requests)
}

func TestEmail(t *testing.T) {
	r := newTestRouter(&stubService{email: "Dear HR,"})

	w := do(r, http.MethodPost, "/api/v1/emails", `{"document_type":"employment","analysis":{"risks":[{"clause_text":"c","risk_level":"HIGH","category":"Career"}],"safe_clauses":[]}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dear HR,", decode(t, w)["email"])

	w = do(r, http.MethodPost, "/api/v1/emails", `{"document_type":"employment","analysis":{"risks":[]}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRules(t *testing.T) {
	r := newTestRouter(&stubService{})

	w := do(r, http.MethodGet, "/api/v1/rules", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["document_types"], 6)
	assert.Equal(t, []interface{}{"English", "Hindi", "Hinglish"}, body["languages"])

	w = do(r, http.MethodGet, "/api/v1/rules/rental", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Rental / Lease Agreement", decode(t, w)["label"])

	w = do(r, http.MethodGet, "/api/v1/rules/Rental%20%2F%20Lease%20Agreement", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rental", decode(t, w)["key"])

	w = do(r, http.MethodGet, "/api/v1/rules/NDA%20%2F%20Confidentiality", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nda", decode(t, w)["key"])

	w = do(r, http.MethodGet, "/api/v1/rules/mortgage", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["detail"], "rental")
}

func TestDemos(t *testing.T) {
	r := newTestRouter(&stubService{result: &audit.Result{AuditID: "demo"}})

	w := do(r, http.MethodGet, "/api/v1/demos", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"employment", "freelance", "rental"}, decode(t, w)["demos"])

	w = do(r, http.MethodGet, "/api/v1/demos/rental", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/v1/demos/nda", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateLimit(t *testing.T) {
	limited := stubLimiter{decision: redis.Decision{Allowed: false, Limit: 5, Remaining: 0, ResetAfter: 1500 * time.Millisecond}}
	svc := &stubService{result: &audit.Result{}}
	r := newTestRouter(svc, func(c *RouterConfig) { c.RateLimiter = limited })

	w := do(r, http.MethodPost, "/api/v1/audits", `{"contract_text":"x"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
	assert.Equal(t, string(errors.CodeRateLimit), decode(t, w)["code"])
	assert.Empty(t, svc.requests)

	w = do(r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	log := testutil.NewMockLogger()
	svc := &stubService{result: &audit.Result{}}
	r := newTestRouter(svc, func(c *RouterConfig) {
		c.RateLimiter = stubLimiter{err: assert.AnError}
		c.Logger = log
	})

	w := do(r, http.MethodPost, "/api/v1/audits", `{"contract_text":"x"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, svc.requests, 1)
	assert.True(t, log.HasMessage("warn", "rate limiter unavailable, allowing request"))
}

func TestMetricsAndRequestID(t *testing.T) {
	rec := &stubRecorder{}
	r := newTestRouter(&stubService{result: &audit.Result{}}, func(c *RouterConfig) {
		c.Recorder = rec
		c.MetricsHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("# metrics")) })
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/demos/rental", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))

	w = do(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, "# metrics", w.Body.String())

	w = do(r, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Contains(t, rec.paths, "GET /api/v1/demos/:name")
	assert.Contains(t, rec.paths, "GET unmatched")
}

func TestReadiness(t *testing.T) {
	down := handlers.CheckerFunc{ComponentName: "redis", Fn: func(context.Context) error { return assert.AnError }}
	up := handlers.CheckerFunc{ComponentName: "minio", Fn: func(context.Context) error { return nil }}

	r := newTestRouter(&stubService{}, func(c *RouterConfig) { c.HealthHandler = handlers.NewHealthHandler("v1", up) })
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/readyz", "").Code)

	r = newTestRouter(&stubService{}, func(c *RouterConfig) { c.HealthHandler = handlers.NewHealthHandler("v1", up, down) })
	w := do(r, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "not_ready", decode(t, w)["status"])
}

func TestRecovery(t *testing.T) {
	r := newTestRouter(&stubService{})
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	w := do(r, http.MethodGet, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

//Personal.AI order the ending
