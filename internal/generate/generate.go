// Package generate provides the text-generation collaborators that turn a
// rendered prompt into a single response.
package generate

import (
	"context"
	"errors"
	"time"
)

// Generator produces one response for one prompt.
// Implementations are safe for concurrent use once constructed.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f(ctx, prompt).
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// ErrEmptyAPIKey indicates that the API key was not provided.
var ErrEmptyAPIKey = errors.New("API key is required")

// defaultHTTPTimeout bounds a single provider round-trip.
// The caller's context usually expires first.
const defaultHTTPTimeout = 2 * time.Minute
