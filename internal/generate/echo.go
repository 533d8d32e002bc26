package generate

import (
	"context"
	"strings"
)

// Compile-time interface compliance check.
var _ Generator = (*EchoGenerator)(nil)

// EchoGenerator answers without any network call. It quotes the rendered
// prompt back, which is handy for checking templates locally.
type EchoGenerator struct{}

// NewEchoGenerator creates an EchoGenerator.
func NewEchoGenerator() *EchoGenerator {
	return &EchoGenerator{}
}

// Generate returns prompt as a markdown block quote.
func (EchoGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lines := strings.Split(strings.TrimSpace(prompt), "\n")
	var b strings.Builder
	b.WriteString("_Echo provider: no model was called. Rendered prompt:_\n\n")
	for _, line := range lines {
		b.WriteString("> ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String(), nil
}
