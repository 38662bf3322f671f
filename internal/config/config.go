// Package config defines the configuration structures for TrueClause.
// No I/O lives here, only plain data types and validation.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Gopesh111/TrueClause/internal/infrastructure/monitoring/logging"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Provider kinds.
const (
	ProviderKindAnthropic = "anthropic"
	ProviderKindOpenAI    = "openai"
)

// ProviderConfig describes one inference backend.
type ProviderConfig struct {
	// Name labels logs and metrics ("anthropic", "groq").
	Name string `mapstructure:"name"`
	// Kind selects the wire protocol: "anthropic" or "openai" (OpenAI-compatible chat completions).
	Kind             string  `mapstructure:"kind"`
	Model            string  `mapstructure:"model"`
	APIKey           string  `mapstructure:"api_key"`
	BaseURL          string  `mapstructure:"base_url"`
	MaxTokens        int     `mapstructure:"max_tokens"`
	Temperature      float64 `mapstructure:"temperature"`
	MaxResponseBytes int64   `mapstructure:"max_response_bytes"`
}

// InferenceConfig holds the primary/secondary pair used by the failover client.
type InferenceConfig struct {
	Primary        ProviderConfig `mapstructure:"primary"`
	Secondary      ProviderConfig `mapstructure:"secondary"`
	AttemptTimeout time.Duration  `mapstructure:"attempt_timeout"`
}

// AuditConfig holds engine-level tunables.
type AuditConfig struct {
	MinWords            int    `mapstructure:"min_words"`
	DefaultLanguage     string `mapstructure:"default_language"`
	DefaultDocumentType string `mapstructure:"default_document_type"`
}

// MetricsConfig controls the Prometheus collector.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
	Path      string `mapstructure:"path"`
}

// MinIOConfig holds the optional S3-compatible report export target.
type MinIOConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Endpoint        string        `mapstructure:"endpoint"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	UseSSL          bool          `mapstructure:"use_ssl"`
	Region          string        `mapstructure:"region"`
	Bucket          string        `mapstructure:"bucket"`
	Prefix          string        `mapstructure:"prefix"`
	PresignExpiry   time.Duration `mapstructure:"presign_expiry"`
}

// StorageConfig groups object storage backends.
type StorageConfig struct {
	MinIO MinIOConfig `mapstructure:"minio"`
}

// RateLimitConfig holds the optional Redis-backed HTTP rate limiter.
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Limit    int           `mapstructure:"limit"`
	Window   time.Duration `mapstructure:"window"`
	Prefix   string        `mapstructure:"prefix"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root configuration
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration object.
type Config struct {
	Server    ServerConfig      `mapstructure:"server"`
	Log       logging.LogConfig `mapstructure:"log"`
	Inference InferenceConfig   `mapstructure:"inference"`
	Audit     AuditConfig       `mapstructure:"audit"`
	Metrics   MetricsConfig     `mapstructure:"metrics"`
	Storage   StorageConfig     `mapstructure:"storage"`
	RateLimit RateLimitConfig   `mapstructure:"ratelimit"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of a fully-populated Config and
// returns the first problem found.  API keys are not checked here: a missing
// key surfaces as a provider construction failure at first use.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level %q is invalid", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	if err := validateProvider("inference.primary", c.Inference.Primary); err != nil {
		return err
	}
	if err := validateProvider("inference.secondary", c.Inference.Secondary); err != nil {
		return err
	}
	if c.Inference.AttemptTimeout <= 0 {
		return fmt.Errorf("config: inference.attempt_timeout must be > 0")
	}

	if c.Audit.MinWords < 1 {
		return fmt.Errorf("config: audit.min_words must be >= 1, got %d", c.Audit.MinWords)
	}

	if c.Storage.MinIO.Enabled {
		if c.Storage.MinIO.Endpoint == "" {
			return fmt.Errorf("config: storage.minio.endpoint is required when enabled")
		}
		if c.Storage.MinIO.Bucket == "" {
			return fmt.Errorf("config: storage.minio.bucket is required when enabled")
		}
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.Addr == "" {
			return fmt.Errorf("config: ratelimit.addr is required when enabled")
		}
		if c.RateLimit.Limit < 1 {
			return fmt.Errorf("config: ratelimit.limit must be >= 1, got %d", c.RateLimit.Limit)
		}
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("config: ratelimit.window must be > 0")
		}
	}
	return nil
}

func validateProvider(key string, p ProviderConfig) error {
	switch strings.ToLower(p.Kind) {
	case ProviderKindAnthropic, ProviderKindOpenAI:
	default:
		return fmt.Errorf("config: %s.kind %q is invalid; expected anthropic|openai", key, p.Kind)
	}
	if p.Model == "" {
		return fmt.Errorf("config: %s.model is required", key)
	}
	if p.Name == "" {
		return fmt.Errorf("config: %s.name is required", key)
	}
	if p.MaxTokens < 1 {
		return fmt.Errorf("config: %s.max_tokens must be >= 1, got %d", key, p.MaxTokens)
	}
	return nil
}

//Personal.AI order the ending
