package prometheus

import (
	"strconv"
	"time"
)

// AuditMetrics holds the metrics emitted by the audit engine and its HTTP surface.
type AuditMetrics struct {
	// Inference
	ProviderAttemptsTotal   CounterVec
	ProviderAttemptDuration HistogramVec
	FailoverDegradedTotal   CounterVec
	FailoverExhaustedTotal  CounterVec

	// Audit pipeline
	AuditsTotal      CounterVec
	AuditDuration    HistogramVec
	AuditScore       HistogramVec
	RisksFound       HistogramVec
	EmailDraftsTotal CounterVec
	ReportExports    CounterVec

	// HTTP
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPActiveRequests  GaugeVec
	RateLimitedTotal    CounterVec
}

// Default Buckets
var (
	DefaultHTTPDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60}
	DefaultLLMDurationBuckets  = []float64{.5, 1, 2, 5, 10, 30, 60, 120}
	DefaultScoreBuckets        = []float64{0, 15, 30, 45, 60, 70, 85, 100}
	DefaultRiskCountBuckets    = []float64{0, 1, 2, 3, 5, 8, 13}
)

// NewAuditMetrics registers all metrics on collector.
func NewAuditMetrics(collector MetricsCollector) *AuditMetrics {
	m := &AuditMetrics{}

	m.ProviderAttemptsTotal = collector.RegisterCounter("provider_attempts_total", "Inference provider attempts", "provider", "mode", "outcome")
	m.ProviderAttemptDuration = collector.RegisterHistogram("provider_attempt_duration_seconds", "Inference provider attempt duration", DefaultLLMDurationBuckets, "provider", "mode")
	m.FailoverDegradedTotal = collector.RegisterCounter("failover_degraded_total", "Primary provider failures that switched to the secondary", "mode")
	m.FailoverExhaustedTotal = collector.RegisterCounter("failover_exhausted_total", "Calls where every provider failed", "mode")

	m.AuditsTotal = collector.RegisterCounter("audits_total", "Contract audits", "document_type", "outcome")
	m.AuditDuration = collector.RegisterHistogram("audit_duration_seconds", "Contract audit duration", DefaultLLMDurationBuckets, "document_type")
	m.AuditScore = collector.RegisterHistogram("audit_score", "Risk score of scored audits", DefaultScoreBuckets, "document_type")
	m.RisksFound = collector.RegisterHistogram("audit_risks_found", "Risks found per audit", DefaultRiskCountBuckets, "document_type")
	m.EmailDraftsTotal = collector.RegisterCounter("email_drafts_total", "Negotiation email drafts", "outcome")
	m.ReportExports = collector.RegisterCounter("report_exports_total", "Report exports to object storage", "outcome")

	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")
	m.HTTPActiveRequests = collector.RegisterGauge("http_active_requests", "Active HTTP requests", "method")
	m.RateLimitedTotal = collector.RegisterCounter("http_rate_limited_total", "Requests rejected by the rate limiter", "path")

	return m
}

// NewNoopAuditMetrics returns metrics that record nothing.
func NewNoopAuditMetrics() *AuditMetrics {
	return NewAuditMetrics(NewNoopCollector())
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

// ProviderAttempt records one provider invocation.
func (m *AuditMetrics) ProviderAttempt(provider, mode string, success bool, duration time.Duration) {
	m.ProviderAttemptsTotal.WithLabelValues(provider, mode, outcome(success)).Inc()
	m.ProviderAttemptDuration.WithLabelValues(provider, mode).Observe(duration.Seconds())
}

// Degraded records a switch from the primary to the secondary provider.
func (m *AuditMetrics) Degraded(mode string) {
	m.FailoverDegradedTotal.WithLabelValues(mode).Inc()
}

// Exhausted records a call where both providers failed.
func (m *AuditMetrics) Exhausted(mode string) {
	m.FailoverExhaustedTotal.WithLabelValues(mode).Inc()
}

// RecordAudit records the outcome of one audit.  score and risks are ignored
// unless scored is true.
func (m *AuditMetrics) RecordAudit(documentType, result string, duration time.Duration, risks int, score int, scored bool) {
	m.AuditsTotal.WithLabelValues(documentType, result).Inc()
	m.AuditDuration.WithLabelValues(documentType).Observe(duration.Seconds())
	if result != "success" {
		return
	}
	m.RisksFound.WithLabelValues(documentType).Observe(float64(risks))
	if scored {
		m.AuditScore.WithLabelValues(documentType).Observe(float64(score))
	}
}

// RecordEmail records the outcome of one email draft.
func (m *AuditMetrics) RecordEmail(success bool) {
	m.EmailDraftsTotal.WithLabelValues(outcome(success)).Inc()
}

// RecordExport records the outcome of one report export.
func (m *AuditMetrics) RecordExport(success bool) {
	m.ReportExports.WithLabelValues(outcome(success)).Inc()
}

// RecordHTTPRequest records one served HTTP request.
func (m *AuditMetrics) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

//Personal.AI order the ending
