package cli

import (
	"context"
	"io"
	"log/slog"
	"net"
	"os"

	"golang.org/x/term"

	"github.com/alnah/journal-companion/internal/config"
	"github.com/alnah/journal-companion/internal/generate"
)

// Env holds injectable dependencies for CLI commands.
// This is the central injection point for testing CLI commands in isolation.
//
// All fields have sensible defaults via DefaultEnv(). Tests can override
// specific fields using the With* options or by creating a custom Env.
//
// Env must not be nil when passed to command functions. Use DefaultEnv()
// or NewEnv() to create a valid instance.
type Env struct {
	// I/O and environment
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Getenv     func(string) string
	IsTerminal func(w io.Writer) bool
	Listen     func(network, address string) (net.Listener, error)

	// LogLevel controls the logger returned by Logger.
	LogLevel *slog.LevelVar

	// Factories for domain objects
	ConfigLoader     ConfigLoader
	GeneratorFactory GeneratorFactory
}

// ConfigLoader loads and provides access to configuration.
type ConfigLoader interface {
	Load() (config.Config, error)
}

// GeneratorFactory creates text generators.
type GeneratorFactory interface {
	NewGenerator(ctx context.Context, s generate.Settings) (generate.Generator, error)
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithStdin sets the stdin reader.
func WithStdin(r io.Reader) EnvOption {
	return func(e *Env) {
		e.Stdin = r
	}
}

// WithStdout sets the stdout writer.
func WithStdout(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stdout = w
	}
}

// WithStderr sets the stderr writer.
func WithStderr(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stderr = w
	}
}

// WithGetenv sets the environment variable getter.
func WithGetenv(fn func(string) string) EnvOption {
	return func(e *Env) {
		e.Getenv = fn
	}
}

// WithListen sets the function used to open the server listener.
func WithListen(fn func(network, address string) (net.Listener, error)) EnvOption {
	return func(e *Env) {
		e.Listen = fn
	}
}

// WithConfigLoader sets the config loader.
func WithConfigLoader(l ConfigLoader) EnvOption {
	return func(e *Env) {
		e.ConfigLoader = l
	}
}

// WithGeneratorFactory sets the generator factory.
func WithGeneratorFactory(f GeneratorFactory) EnvOption {
	return func(e *Env) {
		e.GeneratorFactory = f
	}
}

// DefaultEnv returns an Env with production defaults.
// Logging defaults to warnings and above.
func DefaultEnv() *Env {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	return &Env{
		Stdin:            os.Stdin,
		Stdout:           os.Stdout,
		Stderr:           os.Stderr,
		Getenv:           os.Getenv,
		IsTerminal:       isTerminal,
		Listen:           net.Listen,
		LogLevel:         level,
		ConfigLoader:     &defaultConfigLoader{},
		GeneratorFactory: &defaultGeneratorFactory{},
	}
}

// NewEnv creates an Env with the given options applied to defaults.
func NewEnv(opts ...EnvOption) *Env {
	env := DefaultEnv()
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// Logger returns a text logger writing to Stderr at LogLevel.
func (e *Env) Logger() *slog.Logger {
	var level slog.Leveler = slog.LevelWarn
	if e.LogLevel != nil {
		level = e.LogLevel
	}
	return slog.New(slog.NewTextHandler(e.Stderr, &slog.HandlerOptions{Level: level}))
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ---------------------------------------------------------------------------
// Default implementations - delegate to real packages
// ---------------------------------------------------------------------------

// defaultConfigLoader implements ConfigLoader using the config package.
type defaultConfigLoader struct{}

func (defaultConfigLoader) Load() (config.Config, error) {
	return config.Load()
}

// defaultGeneratorFactory implements GeneratorFactory using the generate package.
type defaultGeneratorFactory struct{}

func (defaultGeneratorFactory) NewGenerator(ctx context.Context, s generate.Settings) (generate.Generator, error) {
	return generate.New(ctx, s)
}

// Compile-time interface verification.
var (
	_ ConfigLoader     = (*defaultConfigLoader)(nil)
	_ GeneratorFactory = (*defaultGeneratorFactory)(nil)
)
