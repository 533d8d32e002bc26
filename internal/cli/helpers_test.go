package cli

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/alnah/journal-companion/internal/config"
	"github.com/alnah/journal-companion/internal/generate"
)

// ---------------------------------------------------------------------------
// syncBuffer - thread-safe bytes.Buffer for concurrent test output
// ---------------------------------------------------------------------------

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (n int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Compile-time check that syncBuffer implements io.Writer.
var _ io.Writer = (*syncBuffer)(nil)

// ---------------------------------------------------------------------------
// testMocks - convenience struct for grouping all mocks
// ---------------------------------------------------------------------------

type testMocks struct {
	configLoader *mockConfigLoader
	generators   *mockGeneratorFactory
	generator    *mockGenerator
}

func newTestMocks() *testMocks {
	gen := &mockGenerator{}
	return &testMocks{
		configLoader: &mockConfigLoader{},
		generators:   &mockGeneratorFactory{mockGenerator: gen},
		generator:    gen,
	}
}

// ---------------------------------------------------------------------------
// testEnv - creates a fully mocked Env for testing
// ---------------------------------------------------------------------------

// testEnvOptions configures a test environment.
type testEnvOptions struct {
	stdin  io.Reader
	getenv func(string) string
	mocks  *testMocks
}

// testEnvOption configures testEnv.
type testEnvOption func(*testEnvOptions)

func withTestStdin(s string) testEnvOption {
	return func(o *testEnvOptions) { o.stdin = strings.NewReader(s) }
}

func withTestGetenv(fn func(string) string) testEnvOption {
	return func(o *testEnvOptions) { o.getenv = fn }
}

func withTestConfig(cfg config.Config) testEnvOption {
	return func(o *testEnvOptions) {
		o.mocks.configLoader.LoadFunc = func() (config.Config, error) { return cfg, nil }
	}
}

// testEnv creates a test Env with all dependencies mocked.
// Returns the Env, its stdout and stderr buffers, and the mocks for assertions.
func testEnv(opts ...testEnvOption) (*Env, *syncBuffer, *syncBuffer, *testMocks) {
	options := &testEnvOptions{
		stdin:  strings.NewReader(""),
		getenv: defaultTestEnv,
		mocks:  newTestMocks(),
	}
	for _, opt := range opts {
		opt(options)
	}

	stdout, stderr := &syncBuffer{}, &syncBuffer{}
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	env := &Env{
		Stdin:            options.stdin,
		Stdout:           stdout,
		Stderr:           stderr,
		Getenv:           options.getenv,
		IsTerminal:       func(io.Writer) bool { return false },
		LogLevel:         level,
		ConfigLoader:     options.mocks.configLoader,
		GeneratorFactory: options.mocks.generators,
	}

	return env, stdout, stderr, options.mocks
}

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

// staticEnv returns a getenv function that returns values from the given map.
func staticEnv(env map[string]string) func(string) string {
	return func(key string) string {
		return env[key]
	}
}

// defaultTestEnv returns API keys for every provider.
func defaultTestEnv(key string) string {
	switch key {
	case generate.EnvGoogleAPIKey:
		return "test-google-key"
	case generate.EnvOpenAIAPIKey:
		return "test-openai-key"
	case generate.EnvDeepSeekAPIKey:
		return "test-deepseek-key"
	default:
		return ""
	}
}
