// Package apierr provides shared error sentinels for text-generation
// providers. All provider-specific error types are classified into these
// sentinels at the adapter boundary.
//
// Providers map failures to these errors using fmt.Errorf("%s: %w", msg, sentinel).
// Callers check with errors.Is(err, apierr.ErrRateLimit) etc.
package apierr

import "errors"

// Sentinel errors for API interaction failures.
var (
	// ErrRateLimit indicates the API rate limit was exceeded.
	ErrRateLimit = errors.New("rate limit exceeded")

	// ErrQuotaExceeded indicates the API quota was exceeded (billing issue).
	ErrQuotaExceeded = errors.New("quota exceeded")

	// ErrTimeout indicates a request timed out.
	ErrTimeout = errors.New("request timeout")

	// ErrAuthFailed indicates API authentication failed (invalid or missing key).
	ErrAuthFailed = errors.New("authentication failed")

	// ErrBadRequest indicates a client error (4xx) that is not otherwise classified.
	ErrBadRequest = errors.New("bad request")

	// ErrUnavailable indicates a server-side failure (5xx).
	ErrUnavailable = errors.New("service unavailable")

	// ErrNetwork indicates the request never got an HTTP response.
	ErrNetwork = errors.New("network error")

	// ErrMalformedResponse indicates a response without usable text.
	ErrMalformedResponse = errors.New("malformed response")
)
