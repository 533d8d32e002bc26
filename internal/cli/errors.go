package cli

import "errors"

// CLI-specific sentinel errors.
// These are validation/usage errors that don't belong to domain packages.

var (
	// ErrAPIKeyMissing indicates the selected provider's API key environment
	// variable is not set.
	ErrAPIKeyMissing = errors.New("API key environment variable not set")

	// ErrServeFailed indicates the web server stopped with an error.
	ErrServeFailed = errors.New("server failed")
)
