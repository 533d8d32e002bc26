package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alnah/journal-companion/internal/config"
	"github.com/alnah/journal-companion/internal/generate"
	"github.com/alnah/journal-companion/internal/guidance"
)

// serviceFlags are the generation overrides shared by ask and serve.
// Flags win over the config file, which wins over the environment.
type serviceFlags struct {
	provider string
	model    string
	timeout  time.Duration
}

func (f *serviceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.provider, "provider", "p", "", "Text generation provider: gemini, openai, deepseek, echo (default: gemini)")
	cmd.Flags().StringVar(&f.model, "model", "", "Model name (default: provider's default model)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "Maximum time to wait for a response (default: 60s)")
}

// newService loads configuration, resolves the provider and its API key,
// and builds a guidance service around the resulting generator.
// The loaded config is returned for callers that need other settings.
func newService(ctx context.Context, env *Env, flags serviceFlags, opts ...guidance.Option) (*guidance.Service, config.Config, error) {
	cfg, err := env.ConfigLoader.Load()
	if err != nil {
		return nil, cfg, err
	}

	// 1. Provider: flag, then config (gemini when neither is set)
	provider := cfg.ProviderOrDefault()
	if flags.provider != "" {
		if provider, err = generate.ParseProvider(flags.provider); err != nil {
			return nil, cfg, err
		}
	}

	// 2. API key from the provider's environment variable
	var apiKey string
	if provider.NeedsAPIKey() {
		apiKey = env.Getenv(provider.APIKeyEnv())
		if apiKey == "" {
			return nil, cfg, fmt.Errorf("%s: %w (set it with: export %s=...)",
				provider.APIKeyEnv(), ErrAPIKeyMissing, provider.APIKeyEnv())
		}
	}

	// 3. Generator
	model := cfg.Model
	if flags.model != "" {
		model = flags.model
	}
	gen, err := env.GeneratorFactory.NewGenerator(ctx, generate.Settings{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	})
	if err != nil {
		return nil, cfg, fmt.Errorf("create %s generator: %w", provider, err)
	}

	// 4. Service
	timeout := cfg.TimeoutOrDefault()
	if flags.timeout > 0 {
		timeout = flags.timeout
	}
	base := []guidance.Option{
		guidance.WithTimeout(timeout),
		guidance.WithLogger(env.Logger()),
	}
	return guidance.NewService(gen, append(base, opts...)...), cfg, nil
}
