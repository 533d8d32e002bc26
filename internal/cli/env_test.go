package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/alnah/journal-companion/internal/generate"
)

// ---------------------------------------------------------------------------
// Tests for DefaultEnv
// ---------------------------------------------------------------------------

func TestDefaultEnvReturnsValidEnv(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()

	if env == nil {
		t.Fatal("DefaultEnv() returned nil")
	}
	if env.Stdin != os.Stdin || env.Stdout != os.Stdout || env.Stderr != os.Stderr {
		t.Error("DefaultEnv() standard streams are not os.Stdin/os.Stdout/os.Stderr")
	}
	if env.Getenv == nil || env.IsTerminal == nil || env.Listen == nil {
		t.Error("DefaultEnv() left a function field nil")
	}
	if env.ConfigLoader == nil || env.GeneratorFactory == nil {
		t.Error("DefaultEnv() left a factory nil")
	}
	if env.LogLevel == nil || env.LogLevel.Level() != slog.LevelWarn {
		t.Errorf("DefaultEnv() LogLevel = %v, want warn", env.LogLevel)
	}
}

func TestDefaultEnvGetenvUsesOsGetenv(t *testing.T) {
	// Cannot use t.Parallel() with t.Setenv()

	testKey := "JOURNAL_COMPANION_TEST_KEY_12345"
	t.Setenv(testKey, "test_value_xyz")

	if got := DefaultEnv().Getenv(testKey); got != "test_value_xyz" {
		t.Errorf("DefaultEnv().Getenv(%q) = %q, want %q", testKey, got, "test_value_xyz")
	}
}

func TestDefaultGeneratorFactory_BuildsEcho(t *testing.T) {
	t.Parallel()

	gen, err := DefaultEnv().GeneratorFactory.NewGenerator(context.Background(),
		generate.Settings{Provider: generate.EchoProvider})
	if err != nil {
		t.Fatalf("NewGenerator(echo) unexpected error: %v", err)
	}
	if _, ok := gen.(*generate.EchoGenerator); !ok {
		t.Errorf("NewGenerator(echo) = %T, want *generate.EchoGenerator", gen)
	}
}

// ---------------------------------------------------------------------------
// Tests for NewEnv options
// ---------------------------------------------------------------------------

func TestNewEnvAppliesOptions(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader("in")
	loader := &mockConfigLoader{}
	factory := &mockGeneratorFactory{}
	getenv := staticEnv(map[string]string{"K": "V"})

	env := NewEnv(
		WithStdin(stdin),
		WithStdout(&stdout),
		WithStderr(&stderr),
		WithGetenv(getenv),
		WithConfigLoader(loader),
		WithGeneratorFactory(factory),
	)

	if env.Stdin != stdin || env.Stdout != &stdout || env.Stderr != &stderr {
		t.Error("NewEnv() did not apply stream options")
	}
	if env.Getenv("K") != "V" {
		t.Error("NewEnv() did not apply WithGetenv")
	}
	if env.ConfigLoader != loader || env.GeneratorFactory != factory {
		t.Error("NewEnv() did not apply factory options")
	}
}

// ---------------------------------------------------------------------------
// Tests for Logger
// ---------------------------------------------------------------------------

func TestEnvLoggerFollowsLevel(t *testing.T) {
	t.Parallel()

	env, _, stderr, _ := testEnv()

	env.Logger().Info("hidden")
	env.LogLevel.Set(slog.LevelDebug)
	env.Logger().Debug("shown")

	out := stderr.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record written at warn level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("debug record missing at debug level")
	}
}

func TestIsTerminal_NonFile(t *testing.T) {
	t.Parallel()

	if isTerminal(&bytes.Buffer{}) {
		t.Error("isTerminal(bytes.Buffer) = true, want false")
	}
}
