// Package common defines the contract between the audit engine and the
// language-model backends it calls.
package common

import (
	"context"
	"strings"
)

// ---------------------------------------------------------------------------
// Mode enum
// ---------------------------------------------------------------------------

// Mode selects the output shape requested from a provider.
type Mode int

const (
	// ModeStructured asks for a JSON object matching the analysis schema.
	ModeStructured Mode = iota
	// ModeText asks for free prose.
	ModeText
)

func (m Mode) String() string {
	switch m {
	case ModeStructured:
		return "structured"
	case ModeText:
		return "text"
	default:
		return "unknown"
	}
}

// ---------------------------------------------------------------------------
// Prompt
// ---------------------------------------------------------------------------

// Prompt is a single-turn request: fixed instructions plus the user payload.
type Prompt struct {
	System string `json:"system"`
	User   string `json:"user"`
}

// Empty reports whether there is nothing to send.
func (p Prompt) Empty() bool {
	return strings.TrimSpace(p.System) == "" && strings.TrimSpace(p.User) == ""
}

// ---------------------------------------------------------------------------
// Provider interface
// ---------------------------------------------------------------------------

// Provider is one hosted model.  Implementations must be safe for
// concurrent use and must honour ctx cancellation.
type Provider interface {
	// Name identifies the provider in logs and metrics.
	Name() string
	// Invoke sends prompt and returns the raw text of the first answer.
	Invoke(ctx context.Context, prompt Prompt, mode Mode) (string, error)
}

// Factory constructs a Provider.  Construction may fail, for example when
// credentials are missing, and is deferred until the provider is first needed.
type Factory func() (Provider, error)

// Static wraps an already-built provider as a Factory.
func Static(p Provider) Factory {
	return func() (Provider, error) { return p, nil }
}

// StructuredInstruction is appended to system prompts in structured mode
// for backends that cannot enforce a schema themselves.
const StructuredInstruction = "Respond with a single JSON object only, no markdown fences and no commentary. It must validate against this JSON Schema:\n"

//Personal.AI order the ending
