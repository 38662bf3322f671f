// Package openai adapts any OpenAI-compatible Chat Completions endpoint
// (Groq, OpenAI, vLLM) to common.Provider.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Gopesh111/TrueClause/internal/domain/contract"
	"github.com/Gopesh111/TrueClause/internal/intelligence/common"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	defaultMaxResponseBytes = 4 * 1024 * 1024
)

// Config holds the endpoint and model settings for one provider.
type Config struct {
	Name             string
	Model            string
	APIKey           string
	BaseURL          string
	MaxTokens        int
	Temperature      float64
	MaxResponseBytes int64
}

// Provider posts to {BaseURL}/chat/completions.  Deadlines come from the
// caller's context, so the HTTP client carries no timeout of its own.
type Provider struct {
	name             string
	baseURL          string
	apiKey           string
	model            string
	maxTokens        int
	temperature      float64
	maxResponseBytes int64
	client           *http.Client
}

// New validates cfg.  A nil client uses a fresh http.Client.
func New(cfg Config, client *http.Client) (*Provider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New(errors.CodeProviderConstruction, "openai-compatible api key is not configured")
	}
	if cfg.Model == "" {
		return nil, errors.New(errors.CodeProviderConstruction, "openai-compatible model is not configured")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.MaxResponseBytes <= 0 {
		cfg.MaxResponseBytes = defaultMaxResponseBytes
	}
	if cfg.Name == "" {
		cfg.Name = "openai"
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Provider{
		name:             cfg.Name,
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:           cfg.APIKey,
		model:            cfg.Model,
		maxTokens:        cfg.MaxTokens,
		temperature:      cfg.Temperature,
		maxResponseBytes: cfg.MaxResponseBytes,
		client:           client,
	}, nil
}

// Factory defers New until the provider is first needed.
func Factory(cfg Config, client *http.Client) common.Factory {
	return func() (common.Provider, error) {
		p, err := New(cfg, client)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

func (p *Provider) Name() string { return p.name }

// Invoke sends one system and one user message.  Structured mode requests a
// JSON object and embeds the analysis schema in the system message.
func (p *Provider) Invoke(ctx context.Context, prompt common.Prompt, mode common.Mode) (string, error) {
	system := prompt.System
	req := chatRequest{
		Model:       p.model,
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	}
	if mode == common.ModeStructured {
		system = strings.TrimSpace(system + "\n\n" + common.StructuredInstruction + contract.AnalysisSchema)
		req.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	if system != "" {
		req.Messages = append(req.Messages, chatMessage{Role: "system", Content: system})
	}
	req.Messages = append(req.Messages, chatMessage{Role: "user", Content: prompt.User})

	body, err := json.Marshal(req)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeProviderInvocation, "marshal chat request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, errors.CodeProviderInvocation, "create chat request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return "", errors.Wrap(err, errors.CodeProviderTimeout, p.name+" call cancelled")
		}
		return "", errors.Wrap(err, errors.CodeProviderInvocation, p.name+" call failed")
	}
	defer resp.Body.Close()

	respBody, err := p.readLimited(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode >= 400 {
		var errBody errorResponse
		if jerr := json.Unmarshal(respBody, &errBody); jerr != nil || errBody.Error.Message == "" {
			return "", errors.Newf(errors.CodeProviderInvocation, "%s returned status %d", p.name, resp.StatusCode)
		}
		return "", errors.Newf(errors.CodeProviderInvocation, "%s returned status %d", p.name, resp.StatusCode).
			WithDetail(fmt.Sprintf("%s (type=%s)", errBody.Error.Message, errBody.Error.Type))
	}

	var out chatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", errors.Wrap(err, errors.CodeProviderInvocation, "decode chat response")
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", errors.Newf(errors.CodeProviderEmptyOutput, "%s response had no content", p.name)
	}
	return out.Choices[0].Message.Content, nil
}

func (p *Provider) readLimited(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, p.maxResponseBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeProviderInvocation, "read chat response")
	}
	if int64(len(b)) > p.maxResponseBytes {
		return nil, errors.Newf(errors.CodeProviderInvocation, "%s response exceeded limit (%d bytes)", p.name, p.maxResponseBytes)
	}
	return b, nil
}

//Personal.AI order the ending
