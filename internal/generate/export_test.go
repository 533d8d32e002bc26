package generate

// Exports for testing. These allow black-box tests to inject dependencies
// without modifying the public API.

var (
	WithChatCompleter    = withChatCompleter
	WithContentGenerator = withContentGenerator
)

// Function exports for unit testing internal logic.
var (
	ClassifyOpenAIError = classifyOpenAIError
	ClassifyGeminiError = classifyGeminiError
)

// Default models.
const (
	DefaultGeminiModel   = defaultGeminiModel
	DefaultOpenAIModel   = defaultOpenAIModel
	DefaultDeepSeekModel = defaultDeepSeekModel
)
