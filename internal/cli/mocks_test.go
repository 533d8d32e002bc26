package cli

import (
	"context"
	"sync"

	"github.com/alnah/journal-companion/internal/config"
	"github.com/alnah/journal-companion/internal/generate"
)

// ---------------------------------------------------------------------------
// Mock ConfigLoader
// ---------------------------------------------------------------------------

type mockConfigLoader struct {
	LoadFunc func() (config.Config, error)

	mu        sync.Mutex
	loadCalls int
}

func (m *mockConfigLoader) Load() (config.Config, error) {
	m.mu.Lock()
	m.loadCalls++
	m.mu.Unlock()

	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return config.Config{}, nil
}

func (m *mockConfigLoader) LoadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadCalls
}

// ---------------------------------------------------------------------------
// Mock GeneratorFactory + Generator
// ---------------------------------------------------------------------------

type mockGeneratorFactory struct {
	NewGeneratorFunc func(ctx context.Context, s generate.Settings) (generate.Generator, error)
	mockGenerator    *mockGenerator

	mu       sync.Mutex
	settings []generate.Settings
}

func (m *mockGeneratorFactory) NewGenerator(ctx context.Context, s generate.Settings) (generate.Generator, error) {
	m.mu.Lock()
	m.settings = append(m.settings, s)
	m.mu.Unlock()

	if m.NewGeneratorFunc != nil {
		return m.NewGeneratorFunc(ctx, s)
	}
	if m.mockGenerator != nil {
		return m.mockGenerator, nil
	}
	return &mockGenerator{}, nil
}

func (m *mockGeneratorFactory) Settings() []generate.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]generate.Settings(nil), m.settings...)
}

func (m *mockGeneratorFactory) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.settings)
}

type mockGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)

	mu      sync.Mutex
	prompts []string
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return "mock guidance", nil
}

func (m *mockGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// Compile-time interface verification.
var (
	_ ConfigLoader       = (*mockConfigLoader)(nil)
	_ GeneratorFactory   = (*mockGeneratorFactory)(nil)
	_ generate.Generator = (*mockGenerator)(nil)
)
