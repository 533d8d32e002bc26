package generate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/alnah/journal-companion/internal/apierr"
)

// OpenAI-compatible API configuration.
const (
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultDeepSeekModel = "deepseek-chat"

	// deepSeekBaseURL serves the OpenAI chat completion protocol.
	deepSeekBaseURL = "https://api.deepseek.com/v1"
)

// chatCompleter is an internal interface for OpenAI chat completion.
// *openai.Client implements this implicitly.
// This allows injecting mocks in tests.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Compile-time interface compliance check.
var _ Generator = (*OpenAIGenerator)(nil)

// OpenAIGenerator generates responses through an OpenAI-compatible chat
// completion API (OpenAI itself, DeepSeek).
type OpenAIGenerator struct {
	client     chatCompleter
	model      string
	baseURL    string
	httpClient *http.Client
}

// Option configures an OpenAIGenerator.
type Option func(*OpenAIGenerator)

// WithModel sets the chat model.
func WithModel(model string) Option {
	return func(g *OpenAIGenerator) {
		if model != "" {
			g.model = model
		}
	}
}

// WithBaseURL points the client at another OpenAI-compatible endpoint.
// The URL must include the version prefix (e.g. ".../v1").
func WithBaseURL(url string) Option {
	return func(g *OpenAIGenerator) {
		g.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client (for testing or proxies).
func WithHTTPClient(c *http.Client) Option {
	return func(g *OpenAIGenerator) {
		g.httpClient = c
	}
}

// withChatCompleter sets a custom chat completer (for testing).
func withChatCompleter(cc chatCompleter) Option {
	return func(g *OpenAIGenerator) {
		g.client = cc
	}
}

// NewOpenAIGenerator creates an OpenAIGenerator.
// Returns ErrEmptyAPIKey if apiKey is empty.
func NewOpenAIGenerator(apiKey string, opts ...Option) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}

	g := &OpenAIGenerator{
		model: defaultOpenAIModel,
	}
	for _, opt := range opts {
		opt(g)
	}

	// Create client after options are applied (base URL may be customized).
	if g.client == nil {
		cfg := openai.DefaultConfig(apiKey)
		if g.baseURL != "" {
			cfg.BaseURL = g.baseURL
		}
		if g.httpClient != nil {
			cfg.HTTPClient = g.httpClient
		} else {
			cfg.HTTPClient = &http.Client{Timeout: defaultHTTPTimeout}
		}
		g.client = openai.NewClientWithConfig(cfg)
	}
	return g, nil
}

// Model returns the configured chat model.
func (g *OpenAIGenerator) Model() string {
	return g.model
}

// Generate sends prompt as a single user message and returns the first choice.
// An empty choice, such as one cut by a content filter, is a malformed response.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response: %w", apierr.ErrMalformedResponse)
	}
	choice := resp.Choices[0]
	if choice.Message.Content == "" {
		return "", fmt.Errorf("no text in response (finish reason: %s): %w",
			choice.FinishReason, apierr.ErrMalformedResponse)
	}
	return choice.Message.Content, nil
}

// classifyOpenAIError maps go-openai errors to apierr sentinels.
// Uses errors.As for typed errors before falling back to transport checks.
func classifyOpenAIError(err error) error {
	if err == nil {
		return nil
	}

	// JSON error envelope from the API.
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return apierr.FromStatus(apiErr.HTTPStatusCode, apiErr.Message)
	}

	// Non-JSON error body (proxies, gateways).
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		msg := ""
		if reqErr.Err != nil {
			msg = reqErr.Err.Error()
		}
		return apierr.FromStatus(reqErr.HTTPStatusCode, msg)
	}

	// Body that is not a chat completion at all.
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fmt.Errorf("%v: %w", err, apierr.ErrMalformedResponse)
	}

	return apierr.FromTransport(err)
}
