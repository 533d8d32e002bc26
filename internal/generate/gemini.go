package generate

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/alnah/journal-companion/internal/apierr"
)

// defaultGeminiModel is used when no model is configured.
const defaultGeminiModel = "gemini-2.5-flash"

// contentGenerator is the subset of *genai.Models used here.
// This allows injecting mocks in tests.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Compile-time interface compliance check.
var _ Generator = (*GeminiGenerator)(nil)

// GeminiGenerator generates responses with Google's Gemini API.
type GeminiGenerator struct {
	models     contentGenerator
	model      string
	baseURL    string
	httpClient *http.Client
}

// GeminiOption configures a GeminiGenerator.
type GeminiOption func(*GeminiGenerator)

// WithGeminiModel sets the Gemini model.
func WithGeminiModel(model string) GeminiOption {
	return func(g *GeminiGenerator) {
		if model != "" {
			g.model = model
		}
	}
}

// WithGeminiBaseURL overrides the API endpoint (for testing or proxies).
func WithGeminiBaseURL(url string) GeminiOption {
	return func(g *GeminiGenerator) {
		g.baseURL = url
	}
}

// WithGeminiHTTPClient sets a custom HTTP client.
func WithGeminiHTTPClient(c *http.Client) GeminiOption {
	return func(g *GeminiGenerator) {
		g.httpClient = c
	}
}

// withContentGenerator sets a custom content generator (for testing).
func withContentGenerator(cg contentGenerator) GeminiOption {
	return func(g *GeminiGenerator) {
		g.models = cg
	}
}

// NewGeminiGenerator creates a GeminiGenerator backed by the Gemini API.
// Returns ErrEmptyAPIKey if apiKey is empty.
func NewGeminiGenerator(ctx context.Context, apiKey string, opts ...GeminiOption) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}

	g := &GeminiGenerator{
		model: defaultGeminiModel,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.models == nil {
		httpClient := g.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: defaultHTTPTimeout}
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      apiKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPClient:  httpClient,
			HTTPOptions: genai.HTTPOptions{BaseURL: g.baseURL},
		})
		if err != nil {
			return nil, fmt.Errorf("creating Gemini client: %w", err)
		}
		g.models = client.Models
	}
	return g, nil
}

// Model returns the configured Gemini model.
func (g *GeminiGenerator) Model() string {
	return g.model
}

// Generate sends prompt as a single user turn and returns the response text.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	res, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classifyGeminiError(err)
	}
	if res == nil {
		return "", fmt.Errorf("empty response: %w", apierr.ErrMalformedResponse)
	}

	text := res.Text()
	if text == "" {
		reason := "no text"
		if res.PromptFeedback != nil && res.PromptFeedback.BlockReason != "" {
			reason = "blocked: " + string(res.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("gemini returned %s: %w", reason, apierr.ErrMalformedResponse)
	}
	return text, nil
}

// classifyGeminiError maps genai errors to apierr sentinels.
func classifyGeminiError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apierr.FromStatus(apiErr.Code, geminiMessage(apiErr))
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apierr.FromStatus(apiErrPtr.Code, geminiMessage(*apiErrPtr))
	}

	return apierr.FromTransport(err)
}

// geminiMessage joins the status and message of an API error.
func geminiMessage(e genai.APIError) string {
	switch {
	case e.Status != "" && e.Message != "":
		return e.Status + ": " + e.Message
	case e.Message != "":
		return e.Message
	default:
		return e.Status
	}
}
