package generate

import (
	"context"
)

// Settings selects and configures a generator.
type Settings struct {
	Provider Provider
	APIKey   string
	// Model overrides the provider default when non-empty.
	Model string
}

// New builds the generator for s.Provider (Gemini when zero).
// Returns ErrEmptyAPIKey if the provider needs a key and none is set.
func New(ctx context.Context, s Settings) (Generator, error) {
	p := s.Provider.OrDefault()
	model := s.Model
	if model == "" {
		model = p.DefaultModel()
	}

	switch p {
	case OpenAIProvider:
		return NewOpenAIGenerator(s.APIKey, WithModel(model))
	case DeepSeekProvider:
		return NewOpenAIGenerator(s.APIKey, WithModel(model), WithBaseURL(deepSeekBaseURL))
	case EchoProvider:
		return NewEchoGenerator(), nil
	default:
		return NewGeminiGenerator(ctx, s.APIKey, WithGeminiModel(model))
	}
}
