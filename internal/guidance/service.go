// Package guidance runs one journaling exchange: it renders the prompt of the
// selected mode, asks the generator for a response and reports the outcome as
// a value. It never returns an error and never panics.
package guidance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/alnah/journal-companion/internal/mode"
)

// DefaultTimeout bounds a single generator call.
const DefaultTimeout = 60 * time.Second

// unknownModeLabel replaces unrecognized identifiers in logs and metrics.
const unknownModeLabel = "unknown"

// Generator produces the response for a rendered prompt.
// generate.Generator implementations satisfy it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Observer is notified once per exchange.
// modeID is a known mode identifier or "unknown".
type Observer interface {
	ObserveGuidance(modeID, outcome string, elapsed time.Duration)
}

// Service answers guidance requests. It holds no per-request state and is
// safe for concurrent use.
type Service struct {
	gen      Generator
	timeout  time.Duration
	logger   *slog.Logger
	observer Observer
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout bounds each generator call. Zero or negative disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.timeout = d
	}
}

// WithLogger sets the structured logger. Nil keeps the default (discard).
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver registers an observer notified after every exchange.
func WithObserver(o Observer) Option {
	return func(s *Service) {
		s.observer = o
	}
}

// withClock sets the time source (for testing).
func withClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a Service backed by gen.
func NewService(gen Generator, opts ...Option) *Service {
	s := &Service{
		gen:     gen,
		timeout: DefaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckInput returns ErrEmptyInput if text is empty or whitespace only.
// Callers must not call Get when it fails.
func CheckInput(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyInput
	}
	return nil
}

// Get resolves modeID and runs the exchange for userText.
// An unrecognized modeID yields a KindUnknownMode failure.
func (s *Service) Get(ctx context.Context, modeID, userText string) Result {
	m, err := mode.Parse(modeID)
	if err != nil {
		start := s.now()
		r := unknownMode(modeID, err)
		s.record(ctx, unknownModeLabel, r, start)
		return r
	}
	return s.GetMode(ctx, m, userText)
}

// GetMode runs the exchange for an already parsed mode.
func (s *Service) GetMode(ctx context.Context, m mode.Mode, userText string) Result {
	start := s.now()

	tmpl, err := mode.TemplateFor(m)
	if err != nil {
		r := unknownMode(m.String(), err)
		s.record(ctx, unknownModeLabel, r, start)
		return r
	}

	text, err := s.generate(ctx, tmpl(userText))
	r := Success(text)
	if err != nil {
		r = generationFailed(err)
	}
	s.record(ctx, m.String(), r, start)
	return r
}

// generate calls the generator once under the configured timeout.
// A panic in the generator is returned as an error.
func (s *Service) generate(ctx context.Context, prompt string) (text string, err error) {
	if s.gen == nil {
		return "", ErrNoGenerator
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	defer func() {
		if p := recover(); p != nil {
			text, err = "", fmt.Errorf("generator panicked: %v", p)
		}
	}()
	return s.gen.Generate(ctx, prompt)
}

// record logs the exchange and notifies the observer.
// User text and generated text are never logged.
func (s *Service) record(ctx context.Context, modeID string, r Result, start time.Time) {
	elapsed := s.now().Sub(start)

	attrs := []slog.Attr{
		slog.String("mode", modeID),
		slog.String("outcome", r.Outcome()),
		slog.Duration("duration", elapsed),
	}
	level := slog.LevelInfo
	if !r.OK() {
		level = slog.LevelWarn
		if r.Failure.Err != nil {
			attrs = append(attrs, slog.String("error", r.Failure.Err.Error()))
		}
	}
	s.logger.LogAttrs(ctx, level, "guidance exchange", attrs...)

	if s.observer != nil {
		s.observer.ObserveGuidance(modeID, r.Outcome(), elapsed)
	}
}
