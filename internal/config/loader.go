package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for every setting.
const envPrefix = "TRUECLAUSE"

// newViper builds a Viper instance with YAML file type, the TRUECLAUSE_ env
// prefix, automatic env binding and a "." → "_" key replacer so that
// "inference.primary.model" resolves to TRUECLAUSE_INFERENCE_PRIMARY_MODEL.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	registerKeys(v)
	return v
}

// registerKeys declares every key to viper.  AutomaticEnv only resolves keys
// viper already knows about, so env-only deployments depend on this list.
func registerKeys(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.mode", DefaultServerMode)
	v.SetDefault("server.read_timeout", DefaultServerReadTimeout)
	v.SetDefault("server.write_timeout", DefaultServerWriteTimeout)
	v.SetDefault("server.max_body_size", DefaultServerMaxBodySize)
	v.SetDefault("server.shutdown_timeout", DefaultServerShutdownTimeout)

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.output_paths", []string{"stderr"})

	for _, slot := range []struct {
		key, name, kind, model, baseURL string
	}{
		{"inference.primary", DefaultPrimaryName, DefaultPrimaryKind, DefaultPrimaryModel, ""},
		{"inference.secondary", DefaultSecondaryName, DefaultSecondaryKind, DefaultSecondaryModel, DefaultSecondaryBaseURL},
	} {
		v.SetDefault(slot.key+".name", slot.name)
		v.SetDefault(slot.key+".kind", slot.kind)
		v.SetDefault(slot.key+".model", slot.model)
		v.SetDefault(slot.key+".api_key", "")
		v.SetDefault(slot.key+".base_url", slot.baseURL)
		v.SetDefault(slot.key+".max_tokens", DefaultMaxTokens)
		v.SetDefault(slot.key+".temperature", 0.0)
		v.SetDefault(slot.key+".max_response_bytes", DefaultMaxResponseBytes)
	}
	// Vendor-conventional key variables are honoured as fallbacks.
	_ = v.BindEnv("inference.primary.api_key", envPrefix+"_INFERENCE_PRIMARY_API_KEY", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("inference.secondary.api_key", envPrefix+"_INFERENCE_SECONDARY_API_KEY", "GROQ_API_KEY")
	v.SetDefault("inference.attempt_timeout", DefaultAttemptTimeout)

	v.SetDefault("audit.min_words", DefaultMinWords)
	v.SetDefault("audit.default_language", DefaultLanguage)
	v.SetDefault("audit.default_document_type", DefaultDocumentType)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.namespace", DefaultMetricsNamespace)
	v.SetDefault("metrics.path", DefaultMetricsPath)

	v.SetDefault("storage.minio.enabled", false)
	v.SetDefault("storage.minio.endpoint", "")
	v.SetDefault("storage.minio.access_key_id", "")
	v.SetDefault("storage.minio.secret_access_key", "")
	v.SetDefault("storage.minio.use_ssl", false)
	v.SetDefault("storage.minio.region", DefaultMinIORegion)
	v.SetDefault("storage.minio.bucket", DefaultMinIOBucket)
	v.SetDefault("storage.minio.prefix", DefaultMinIOPrefix)
	v.SetDefault("storage.minio.presign_expiry", DefaultMinIOPresignExpiry)

	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.addr", DefaultRateLimitAddr)
	v.SetDefault("ratelimit.password", "")
	v.SetDefault("ratelimit.db", 0)
	v.SetDefault("ratelimit.limit", DefaultRateLimitLimit)
	v.SetDefault("ratelimit.window", DefaultRateLimitWindow)
	v.SetDefault("ratelimit.prefix", DefaultRateLimitKeyPrefix)
}

// Load reads the YAML file at configPath, merges TRUECLAUSE_* overrides,
// applies defaults and validates the result.  An empty path is LoadFromEnv.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return LoadFromEnv()
	}
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}
	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config from environment variables and defaults only.
//
//	TRUECLAUSE_<SECTION>_<FIELD>   e.g. TRUECLAUSE_SERVER_PORT, TRUECLAUSE_INFERENCE_ATTEMPT_TIMEOUT
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

// Watch monitors configPath and calls onChange with each newly parsed,
// valid Config.  Invalid revisions are reported to onError and skipped.
// Callers apply only the runtime-safe subset (log level).  Watch returns
// after the initial read; viper owns the watcher goroutine.
func Watch(configPath string, onChange func(*Config), onError func(error)) error {
	v := newViper()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
	return nil
}

// MustLoad is Load that panics on error.  For main() only.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}

//Personal.AI order the ending
