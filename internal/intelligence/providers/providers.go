// Package providers maps inference configuration onto provider factories
// and assembles the failover client.
package providers

import (
	"net/http"
	"strings"

	"github.com/Gopesh111/TrueClause/internal/config"
	"github.com/Gopesh111/TrueClause/internal/infrastructure/monitoring/logging"
	"github.com/Gopesh111/TrueClause/internal/intelligence/anthropic"
	"github.com/Gopesh111/TrueClause/internal/intelligence/common"
	"github.com/Gopesh111/TrueClause/internal/intelligence/failover"
	"github.com/Gopesh111/TrueClause/internal/intelligence/openai"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

// FactoryFor returns a lazy factory for cfg.  An unknown kind still yields a
// factory; it fails on first use so the other slot can serve.
func FactoryFor(cfg config.ProviderConfig, httpClient *http.Client) common.Factory {
	switch strings.ToLower(strings.TrimSpace(cfg.Kind)) {
	case config.ProviderKindAnthropic:
		return anthropic.Factory(anthropic.Config{
			Name:        cfg.Name,
			Model:       cfg.Model,
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		})
	case config.ProviderKindOpenAI:
		return openai.Factory(openai.Config{
			Name:             cfg.Name,
			Model:            cfg.Model,
			APIKey:           cfg.APIKey,
			BaseURL:          cfg.BaseURL,
			MaxTokens:        cfg.MaxTokens,
			Temperature:      cfg.Temperature,
			MaxResponseBytes: cfg.MaxResponseBytes,
		}, httpClient)
	default:
		kind := cfg.Kind
		return func() (common.Provider, error) {
			return nil, errors.Newf(errors.CodeProviderConstruction, "unknown provider kind %q", kind)
		}
	}
}

// NewClient builds the failover client for the configured pair.  Providers
// are constructed on first use.
func NewClient(cfg config.InferenceConfig, logger logging.Logger, observer failover.Observer) *failover.Client {
	return failover.New(
		cfg.Primary.Name, FactoryFor(cfg.Primary, nil),
		cfg.Secondary.Name, FactoryFor(cfg.Secondary, nil),
		failover.WithLogger(logger),
		failover.WithObserver(observer),
		failover.WithAttemptTimeout(cfg.AttemptTimeout),
	)
}

//Personal.AI order the ending
