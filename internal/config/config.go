// Package config reads and writes the user configuration file and resolves
// settings from it, the environment and built-in defaults.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"maps"
	"net"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/alnah/journal-companion/internal/generate"
)

// Config keys.
const (
	KeyProvider = "provider"
	KeyModel    = "model"
	KeyAddr     = "addr"
	KeyTimeout  = "timeout"
)

// Environment variable fallbacks.
const (
	EnvProvider = "JOURNAL_PROVIDER"
	EnvModel    = "JOURNAL_MODEL"
	EnvAddr     = "JOURNAL_ADDR"
	EnvTimeout  = "JOURNAL_TIMEOUT"
)

// Defaults applied by the With* accessors.
const (
	DefaultAddr    = "127.0.0.1:8501"
	DefaultTimeout = 60 * time.Second
)

// appDir is the directory name under the user config home.
const appDir = "journal-companion"

// Sentinel errors.
var (
	ErrInvalidKey    = errors.New("invalid config key")
	ErrInvalidSyntax = errors.New("invalid config syntax")
	ErrUnknownKey    = errors.New("unknown config key")
	ErrInvalidValue  = errors.New("invalid config value")
)

// keys lists the supported keys in display order.
var keys = []string{KeyProvider, KeyModel, KeyAddr, KeyTimeout}

// envFallbacks maps each key to its environment variable.
var envFallbacks = map[string]string{
	KeyProvider: EnvProvider,
	KeyModel:    EnvModel,
	KeyAddr:     EnvAddr,
	KeyTimeout:  EnvTimeout,
}

// Config holds user configuration loaded from ~/.config/journal-companion/config.
// Empty fields mean "not set"; use the accessors to apply defaults.
type Config struct {
	Provider generate.Provider
	Model    string
	Addr     string
	Timeout  time.Duration
}

// ProviderOrDefault returns the configured provider, or Gemini.
func (c Config) ProviderOrDefault() generate.Provider {
	return c.Provider.OrDefault()
}

// AddrOrDefault returns the configured listen address, or DefaultAddr.
func (c Config) AddrOrDefault() string {
	if c.Addr == "" {
		return DefaultAddr
	}
	return c.Addr
}

// TimeoutOrDefault returns the configured timeout, or DefaultTimeout.
func (c Config) TimeoutOrDefault() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

// Keys returns the supported keys in display order.
func Keys() []string {
	return slices.Clone(keys)
}

// dir returns the configuration directory path.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config/journal-companion.
func dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appDir), nil
}

// path returns the full path to the config file.
func path() (string, error) {
	d, err := dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config"), nil
}

// Load reads the configuration file and environment variables.
// Precedence: config file values, then environment variable fallbacks.
// Returns an empty Config if the file doesn't exist (not an error).
// Values are validated; an invalid value returns ErrInvalidValue.
func Load() (Config, error) {
	var cfg Config

	p, err := path()
	if err != nil {
		return cfg, err
	}

	data, err := parseFile(p)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		data = make(map[string]string)
	}

	// Environment variable fallback (only if not set in config).
	for key, env := range envFallbacks {
		if data[key] == "" {
			data[key] = os.Getenv(env)
		}
	}

	if v := data[KeyProvider]; v != "" {
		if cfg.Provider, err = generate.ParseProvider(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w: %w", KeyProvider, ErrInvalidValue, err)
		}
	}
	if v := data[KeyTimeout]; v != "" {
		if cfg.Timeout, err = parseTimeout(v); err != nil {
			return Config{}, err
		}
	}
	cfg.Model = data[KeyModel]
	cfg.Addr = data[KeyAddr]

	return cfg, nil
}

// Validate checks that key is supported and value is acceptable for it.
func Validate(key, value string) error {
	if !slices.Contains(keys, key) {
		return fmt.Errorf("%q (use %s): %w", key, strings.Join(keys, ", "), ErrUnknownKey)
	}

	switch key {
	case KeyProvider:
		if _, err := generate.ParseProvider(value); err != nil {
			return fmt.Errorf("%s: %w: %w", key, ErrInvalidValue, err)
		}
	case KeyModel:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s cannot be empty: %w", key, ErrInvalidValue)
		}
	case KeyAddr:
		if _, _, err := net.SplitHostPort(value); err != nil {
			return fmt.Errorf("%s %q: %w: %w", key, value, ErrInvalidValue, err)
		}
	case KeyTimeout:
		if _, err := parseTimeout(value); err != nil {
			return err
		}
	}
	return nil
}

// parseTimeout parses a positive Go duration such as "45s" or "2m".
func parseTimeout(v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w: %w", KeyTimeout, v, ErrInvalidValue, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s %q must be positive: %w", KeyTimeout, v, ErrInvalidValue)
	}
	return d, nil
}

// parseFile reads a key=value config file.
// Format: one key=value per line, # comments, empty lines ignored.
func parseFile(p string) (map[string]string, error) {
	f, err := os.Open(p) // #nosec G304 -- config path is constructed from home dir
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data := make(map[string]string)
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: %q: %w", lineNum, line, ErrInvalidSyntax)
		}
		data[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return data, nil
}

// Save writes a single key=value to the config file.
// Creates the config directory and file if they don't exist.
// Preserves existing key=value pairs but discards comments.
func Save(key, value string) error {
	if key == "" || strings.ContainsAny(key, "=\n\r#") {
		return fmt.Errorf("%q: %w", key, ErrInvalidKey)
	}
	if strings.ContainsAny(value, "\n\r") {
		return fmt.Errorf("%s value contains a newline: %w", key, ErrInvalidValue)
	}

	p, err := path()
	if err != nil {
		return err
	}

	// Ensure config directory exists.
	if err := os.MkdirAll(filepath.Dir(p), 0750); err != nil { // #nosec G301 -- user config dir
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	existing, err := parseFile(p)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		existing = make(map[string]string)
	}
	existing[key] = value

	return writeFile(p, existing)
}

// writeFile writes the config map to a file, keys sorted.
func writeFile(p string, data map[string]string) error {
	// #nosec G302 G304 -- config file with standard permissions, path from home dir
	f, err := os.OpenFile(p, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot write config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	for _, key := range slices.Sorted(maps.Keys(data)) {
		if _, err := fmt.Fprintf(f, "%s=%s\n", key, data[key]); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	return nil
}

// Get reads a single value from the config file.
// Returns empty string if the key doesn't exist.
func Get(key string) (string, error) {
	data, err := List()
	if err != nil {
		return "", err
	}
	return data[key], nil
}

// List returns all config values as a map.
func List() (map[string]string, error) {
	p, err := path()
	if err != nil {
		return nil, err
	}

	data, err := parseFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}

	return data, nil
}

// Path returns the config file path.
func Path() (string, error) {
	return path()
}
