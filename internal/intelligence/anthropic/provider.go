// Package anthropic adapts the Anthropic Messages API to common.Provider.
package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/Gopesh111/TrueClause/internal/domain/contract"
	"github.com/Gopesh111/TrueClause/internal/intelligence/common"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

// Config holds the model settings for one Anthropic-backed provider.
type Config struct {
	Name        string
	Model       string
	APIKey      string
	BaseURL     string
	MaxTokens   int
	Temperature float64
}

// Provider calls the Messages API.  Retries are disabled; failover is
// handled one level up.
type Provider struct {
	name   string
	client anthropic.Client
	cfg    Config
}

// New validates cfg and builds the SDK client.  It does not contact the API.
func New(cfg Config, opts ...option.RequestOption) (*Provider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New(errors.CodeProviderConstruction, "anthropic api key is not configured")
	}
	if cfg.Model == "" {
		return nil, errors.New(errors.CodeProviderConstruction, "anthropic model is not configured")
	}
	if cfg.MaxTokens < 1 {
		cfg.MaxTokens = 4096
	}
	if cfg.Name == "" {
		cfg.Name = "anthropic"
	}

	all := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		all = append(all, option.WithBaseURL(cfg.BaseURL))
	}
	all = append(all, opts...)

	return &Provider{name: cfg.Name, client: anthropic.NewClient(all...), cfg: cfg}, nil
}

// Factory defers New until the provider is first needed.
func Factory(cfg Config, opts ...option.RequestOption) common.Factory {
	return func() (common.Provider, error) {
		p, err := New(cfg, opts...)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

func (p *Provider) Name() string { return p.name }

// Invoke sends a single user turn and joins the text blocks of the reply.
// In structured mode the analysis schema is appended to the system prompt.
func (p *Provider) Invoke(ctx context.Context, prompt common.Prompt, mode common.Mode) (string, error) {
	system := prompt.System
	if mode == common.ModeStructured {
		system = strings.TrimSpace(system + "\n\n" + common.StructuredInstruction + contract.AnalysisSchema)
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(p.cfg.Model),
		MaxTokens:   int64(p.cfg.MaxTokens),
		Temperature: anthropic.Float(p.cfg.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt.User)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", classify(ctx, err)
	}
	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", errors.New(errors.CodeProviderEmptyOutput, "anthropic response has no text content")
	}
	return sb.String(), nil
}

func classify(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return errors.Wrap(err, errors.CodeProviderTimeout, "anthropic call cancelled")
	}
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return errors.Newf(errors.CodeProviderInvocation, "anthropic returned status %d", apiErr.StatusCode).WithCause(err)
	}
	return errors.Wrap(err, errors.CodeProviderInvocation, "anthropic call failed")
}

//Personal.AI order the ending
