package common

import (
	"context"
	"sync"
	"sync/atomic"
)

// MockProvider is a scripted Provider for tests.  Responses and Errors are
// consumed in call order; once exhausted the last entry repeats.
type MockProvider struct {
	ProviderName string
	Responses    []string
	Errors       []error
	InvokeFunc   func(ctx context.Context, prompt Prompt, mode Mode) (string, error)

	calls   atomic.Int64
	mu      sync.Mutex
	prompts []Prompt
	modes   []Mode
}

// NewMockProvider returns a mock that always answers with response.
func NewMockProvider(name, response string) *MockProvider {
	return &MockProvider{ProviderName: name, Responses: []string{response}}
}

// NewFailingProvider returns a mock that always fails with err.
func NewFailingProvider(name string, err error) *MockProvider {
	return &MockProvider{ProviderName: name, Errors: []error{err}}
}

func (m *MockProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

func (m *MockProvider) Invoke(ctx context.Context, prompt Prompt, mode Mode) (string, error) {
	n := int(m.calls.Add(1)) - 1
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.modes = append(m.modes, mode)
	m.mu.Unlock()

	if m.InvokeFunc != nil {
		return m.InvokeFunc(ctx, prompt, mode)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(m.Errors) > 0 {
		if err := m.Errors[min(n, len(m.Errors)-1)]; err != nil {
			return "", err
		}
	}
	if len(m.Responses) == 0 {
		return "", nil
	}
	return m.Responses[min(n, len(m.Responses)-1)], nil
}

// Calls returns how many times Invoke ran.
func (m *MockProvider) Calls() int { return int(m.calls.Load()) }

// Prompts returns the prompts received, in order.
func (m *MockProvider) Prompts() []Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Prompt, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// Modes returns the modes received, in order.
func (m *MockProvider) Modes() []Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Mode, len(m.modes))
	copy(out, m.modes)
	return out
}

//Personal.AI order the ending
