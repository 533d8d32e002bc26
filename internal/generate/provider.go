package generate

import (
	"errors"
	"fmt"
	"strings"
)

// Provider names.
const (
	ProviderGemini   = "gemini"
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderEcho     = "echo"
)

// API key environment variables per provider.
const (
	EnvGoogleAPIKey   = "GOOGLE_API_KEY"
	EnvOpenAIAPIKey   = "OPENAI_API_KEY"
	EnvDeepSeekAPIKey = "DEEPSEEK_API_KEY"
)

// Provider represents a validated text-generation provider.
// Zero value is invalid and must be defaulted with OrDefault before use.
type Provider struct {
	name string
}

// Compile-time interface compliance check.
var _ fmt.Stringer = Provider{}

// ErrInvalidProvider indicates an invalid provider name was specified.
var ErrInvalidProvider = errors.New("invalid provider")

// Pre-parsed provider constants for use in code.
var (
	GeminiProvider   = Provider{name: ProviderGemini}
	OpenAIProvider   = Provider{name: ProviderOpenAI}
	DeepSeekProvider = Provider{name: ProviderDeepSeek}
	EchoProvider     = Provider{name: ProviderEcho}
)

// providerOrder is the order used in help and error messages.
var providerOrder = []string{ProviderGemini, ProviderOpenAI, ProviderDeepSeek, ProviderEcho}

// providerSpecs holds per-provider defaults.
var providerSpecs = map[string]struct {
	apiKeyEnv    string
	defaultModel string
}{
	ProviderGemini:   {EnvGoogleAPIKey, defaultGeminiModel},
	ProviderOpenAI:   {EnvOpenAIAPIKey, defaultOpenAIModel},
	ProviderDeepSeek: {EnvDeepSeekAPIKey, defaultDeepSeekModel},
	ProviderEcho:     {"", "echo"},
}

// ParseProvider validates and parses a provider name string.
// Returns ErrInvalidProvider if the name is not recognized.
func ParseProvider(s string) (Provider, error) {
	if s == "" {
		return Provider{}, fmt.Errorf("provider cannot be empty: %w", ErrInvalidProvider)
	}
	if _, ok := providerSpecs[s]; !ok {
		return Provider{}, fmt.Errorf("unknown provider %q (use %s): %w",
			s, strings.Join(providerOrder, ", "), ErrInvalidProvider)
	}
	return Provider{name: s}, nil
}

// Providers returns the provider names in display order.
func Providers() []string {
	result := make([]string, len(providerOrder))
	copy(result, providerOrder)
	return result
}

// String returns the provider name string.
func (p Provider) String() string {
	return p.name
}

// IsZero returns true if no provider is set.
func (p Provider) IsZero() bool {
	return p.name == ""
}

// OrDefault returns the provider, or GeminiProvider if zero.
func (p Provider) OrDefault() Provider {
	if p.IsZero() {
		return GeminiProvider
	}
	return p
}

// APIKeyEnv returns the environment variable holding the provider's API key.
// Empty for providers that need no credentials.
func (p Provider) APIKeyEnv() string {
	return providerSpecs[p.OrDefault().name].apiKeyEnv
}

// NeedsAPIKey reports whether the provider requires credentials.
func (p Provider) NeedsAPIKey() bool {
	return p.APIKeyEnv() != ""
}

// DefaultModel returns the model used when none is configured.
func (p Provider) DefaultModel() string {
	return providerSpecs[p.OrDefault().name].defaultModel
}
