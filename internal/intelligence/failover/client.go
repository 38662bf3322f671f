// Package failover puts a primary and a secondary provider behind a single
// call.  Attempts are strictly sequential: primary first, secondary only
// after the primary failed, one try each.
package failover

import (
	"context"
	"sync"
	"time"

	"github.com/Gopesh111/TrueClause/internal/infrastructure/monitoring/logging"
	"github.com/Gopesh111/TrueClause/internal/intelligence/common"
	"github.com/Gopesh111/TrueClause/pkg/errors"
)

// State is a step of the failover state machine.
type State string

const (
	StateTryPrimary   State = "TRY_PRIMARY"
	StateTrySecondary State = "TRY_SECONDARY"
	StateSuccess      State = "SUCCESS"
	StateFailed       State = "FAILED"
)

// DefaultAttemptTimeout bounds one provider attempt.
const DefaultAttemptTimeout = 60 * time.Second

// DegradedNotice is logged when the secondary takes over.
const DegradedNotice = "Primary engine busy. Switching to backup engine."

// Observer receives attempt outcomes.  prometheus.AuditMetrics implements it.
type Observer interface {
	ProviderAttempt(provider, mode string, success bool, duration time.Duration)
	Degraded(mode string)
	Exhausted(mode string)
}

type noopObserver struct{}

func (noopObserver) ProviderAttempt(string, string, bool, time.Duration) {}
func (noopObserver) Degraded(string)                                     {}
func (noopObserver) Exhausted(string)                                    {}

// Validator inspects raw provider output.  A non-nil error makes the attempt
// count as failed.
type Validator func(raw string) error

// Result is a successful invocation.
type Result struct {
	Text     string
	Provider string
	// Degraded is true when the secondary produced the answer.
	Degraded bool
}

// slot holds one lazily constructed provider.  A construction failure is
// remembered and reported on every later call.
type slot struct {
	name     string
	factory  common.Factory
	once     sync.Once
	provider common.Provider
	err      error
}

func (s *slot) get() (common.Provider, error) {
	s.once.Do(func() {
		if s.factory == nil {
			s.err = errors.Newf(errors.CodeProviderConstruction, "%s provider is not configured", s.name)
			return
		}
		p, err := s.factory()
		if err == nil && p == nil {
			err = errors.Newf(errors.CodeProviderConstruction, "%s provider factory returned nil", s.name)
		}
		s.provider, s.err = p, err
	})
	return s.provider, s.err
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver sets the attempt observer.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithAttemptTimeout bounds each provider attempt.  Non-positive values keep
// the default.
func WithAttemptTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.attemptTimeout = d
		}
	}
}

// WithTransitionHook is called on every state change.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(c *Client) { c.onTransition = fn }
}

// Client is safe for concurrent use.  Providers are built at most once and
// then shared.
type Client struct {
	primary        *slot
	secondary      *slot
	logger         logging.Logger
	observer       Observer
	attemptTimeout time.Duration
	onTransition   func(from, to State)
}

// New wires the two provider slots.  Neither factory runs until the first
// Invoke that needs it.
func New(primaryName string, primary common.Factory, secondaryName string, secondary common.Factory, opts ...Option) *Client {
	c := &Client{
		primary:        &slot{name: primaryName, factory: primary},
		secondary:      &slot{name: secondaryName, factory: secondary},
		logger:         logging.NewNopLogger(),
		observer:       noopObserver{},
		attemptTimeout: DefaultAttemptTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("failover")
	return c
}

// Invoke runs TRY_PRIMARY then, on failure, TRY_SECONDARY with the same
// prompt and mode.  If both fail the caller receives CodeProviderUnavailable,
// or CodeSchemaValidation when the secondary answered but its output was
// rejected.  Neither carries the provider causes; those are logged.
func (c *Client) Invoke(ctx context.Context, prompt common.Prompt, mode common.Mode, validate Validator) (Result, error) {
	log := logging.FromContext(ctx, c.logger).With(logging.String("mode", mode.String()))

	var primaryErr, secondaryErr error
	state := StateTryPrimary
	for {
		switch state {
		case StateTryPrimary:
			text, err := c.attempt(ctx, c.primary, prompt, mode, validate)
			if err == nil {
				c.transition(state, StateSuccess)
				return Result{Text: text, Provider: c.primary.name}, nil
			}
			primaryErr = err
			log.Warn(DegradedNotice,
				logging.String(logging.FieldProvider, c.primary.name),
				logging.String("code", string(errors.GetCode(err))),
				logging.Err(err))
			c.observer.Degraded(mode.String())
			state = c.transition(state, StateTrySecondary)

		case StateTrySecondary:
			text, err := c.attempt(ctx, c.secondary, prompt, mode, validate)
			if err == nil {
				c.transition(state, StateSuccess)
				return Result{Text: text, Provider: c.secondary.name, Degraded: true}, nil
			}
			secondaryErr = err
			log.Warn("secondary provider attempt failed",
				logging.String(logging.FieldProvider, c.secondary.name),
				logging.String("code", string(errors.GetCode(err))),
				logging.Err(err))
			state = c.transition(state, StateFailed)

		case StateFailed:
			log.Error("all inference providers failed",
				logging.NamedErr("primary_error", primaryErr),
				logging.NamedErr("secondary_error", secondaryErr))
			c.observer.Exhausted(mode.String())
			if errors.IsCode(secondaryErr, errors.CodeSchemaValidation) {
				return Result{}, errors.New(errors.CodeSchemaValidation, errors.DefaultMessageForCode(errors.CodeSchemaValidation))
			}
			return Result{}, errors.New(errors.CodeProviderUnavailable, errors.DefaultMessageForCode(errors.CodeProviderUnavailable))
		}
	}
}

func (c *Client) transition(from, to State) State {
	if c.onTransition != nil {
		c.onTransition(from, to)
	}
	return to
}

// attempt performs exactly one try against s.
func (c *Client) attempt(ctx context.Context, s *slot, prompt common.Prompt, mode common.Mode, validate Validator) (text string, err error) {
	start := time.Now()
	defer func() {
		c.observer.ProviderAttempt(s.name, mode.String(), err == nil, time.Since(start))
	}()

	p, err := s.get()
	if err != nil {
		return "", err
	}

	actx, cancel := context.WithTimeout(ctx, c.attemptTimeout)
	defer cancel()

	text, err = p.Invoke(actx, prompt, mode)
	if err != nil {
		if actx.Err() == context.DeadlineExceeded && !errors.IsCode(err, errors.CodeProviderTimeout) {
			err = errors.Wrap(err, errors.CodeProviderTimeout, s.name+" attempt timed out")
		}
		return "", err
	}
	if validate != nil {
		if verr := validate(text); verr != nil {
			if !errors.IsCode(verr, errors.CodeSchemaValidation) {
				verr = errors.Wrap(verr, errors.CodeSchemaValidation, s.name+" output rejected")
			}
			return "", verr
		}
	}
	return text, nil
}

// Warm constructs both providers ahead of the first call and reports the
// construction errors.  It never fails the caller.
func (c *Client) Warm() map[string]error {
	out := make(map[string]error, 2)
	for _, s := range []*slot{c.primary, c.secondary} {
		if _, err := s.get(); err != nil {
			out[s.name] = err
		}
	}
	return out
}

//Personal.AI order the ending
