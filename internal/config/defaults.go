package config

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultServerPort            = 8080
	DefaultServerMode            = "release"
	DefaultServerReadTimeout     = 15 * time.Second
	DefaultServerWriteTimeout    = 150 * time.Second
	DefaultServerMaxBodySize     = 2 << 20
	DefaultServerShutdownTimeout = 10 * time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultPrimaryName      = "anthropic"
	DefaultPrimaryKind      = ProviderKindAnthropic
	DefaultPrimaryModel     = "claude-sonnet-4-5-20250929"
	DefaultSecondaryName    = "groq"
	DefaultSecondaryKind    = ProviderKindOpenAI
	DefaultSecondaryModel   = "llama3-70b-8192"
	DefaultSecondaryBaseURL = "https://api.groq.com/openai/v1"
	DefaultMaxTokens        = 4096
	DefaultMaxResponseBytes = 4 << 20
	DefaultAttemptTimeout   = 60 * time.Second

	DefaultMinWords           = 20
	DefaultLanguage           = "English"
	DefaultDocumentType       = "generic"
	DefaultMetricsNamespace   = "trueclause"
	DefaultMetricsPath        = "/metrics"
	DefaultMinIORegion        = "us-east-1"
	DefaultMinIOBucket        = "trueclause-reports"
	DefaultMinIOPrefix        = "reports/"
	DefaultMinIOPresignExpiry = time.Hour
	DefaultRateLimitAddr      = "localhost:6379"
	DefaultRateLimitLimit     = 30
	DefaultRateLimitWindow    = time.Minute
	DefaultRateLimitKeyPrefix = "trueclause:ratelimit:"
)

// ApplyDefaults fills every zero-value field in cfg with its default.
// Explicitly set values are left unchanged.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Server ────────────────────────────────────────────────────────────────
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultServerReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultServerWriteTimeout
	}
	if cfg.Server.MaxBodySize == 0 {
		cfg.Server.MaxBodySize = DefaultServerMaxBodySize
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultServerShutdownTimeout
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	// ── Inference ─────────────────────────────────────────────────────────────
	applyProviderDefaults(&cfg.Inference.Primary, DefaultPrimaryName, DefaultPrimaryKind, DefaultPrimaryModel, "")
	applyProviderDefaults(&cfg.Inference.Secondary, DefaultSecondaryName, DefaultSecondaryKind, DefaultSecondaryModel, DefaultSecondaryBaseURL)
	if cfg.Inference.AttemptTimeout == 0 {
		cfg.Inference.AttemptTimeout = DefaultAttemptTimeout
	}

	// ── Audit ─────────────────────────────────────────────────────────────────
	if cfg.Audit.MinWords == 0 {
		cfg.Audit.MinWords = DefaultMinWords
	}
	if cfg.Audit.DefaultLanguage == "" {
		cfg.Audit.DefaultLanguage = DefaultLanguage
	}
	if cfg.Audit.DefaultDocumentType == "" {
		cfg.Audit.DefaultDocumentType = DefaultDocumentType
	}

	// ── Metrics ───────────────────────────────────────────────────────────────
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}

	// ── Storage ───────────────────────────────────────────────────────────────
	if cfg.Storage.MinIO.Region == "" {
		cfg.Storage.MinIO.Region = DefaultMinIORegion
	}
	if cfg.Storage.MinIO.Bucket == "" {
		cfg.Storage.MinIO.Bucket = DefaultMinIOBucket
	}
	if cfg.Storage.MinIO.Prefix == "" {
		cfg.Storage.MinIO.Prefix = DefaultMinIOPrefix
	}
	if cfg.Storage.MinIO.PresignExpiry == 0 {
		cfg.Storage.MinIO.PresignExpiry = DefaultMinIOPresignExpiry
	}

	// ── Rate limit ────────────────────────────────────────────────────────────
	if cfg.RateLimit.Addr == "" {
		cfg.RateLimit.Addr = DefaultRateLimitAddr
	}
	if cfg.RateLimit.Limit == 0 {
		cfg.RateLimit.Limit = DefaultRateLimitLimit
	}
	if cfg.RateLimit.Window == 0 {
		cfg.RateLimit.Window = DefaultRateLimitWindow
	}
	if cfg.RateLimit.Prefix == "" {
		cfg.RateLimit.Prefix = DefaultRateLimitKeyPrefix
	}
}

func applyProviderDefaults(p *ProviderConfig, name, kind, model, baseURL string) {
	if p.Name == "" {
		p.Name = name
	}
	if p.Kind == "" {
		p.Kind = kind
	}
	if p.Model == "" {
		p.Model = model
	}
	if p.BaseURL == "" {
		p.BaseURL = baseURL
	}
	if p.MaxTokens == 0 {
		p.MaxTokens = DefaultMaxTokens
	}
	if p.MaxResponseBytes == 0 {
		p.MaxResponseBytes = DefaultMaxResponseBytes
	}
}

//Personal.AI order the ending
