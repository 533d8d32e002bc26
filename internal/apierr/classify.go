package apierr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// FromStatus maps an HTTP status code and provider message to a sentinel.
// Returns nil for 2xx codes.
func FromStatus(statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == http.StatusTooManyRequests:
		// Distinguish between temporary rate limit and quota exceeded (billing issue).
		lower := strings.ToLower(message)
		if strings.Contains(lower, "quota") || strings.Contains(lower, "billing") ||
			strings.Contains(lower, "resource_exhausted") || strings.Contains(lower, "exhausted") {
			return fmt.Errorf("%s: %w", message, ErrQuotaExceeded)
		}
		return fmt.Errorf("%s: %w", message, ErrRateLimit)
	case statusCode == http.StatusPaymentRequired:
		return fmt.Errorf("%s: %w", message, ErrQuotaExceeded)
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", message, ErrAuthFailed)
	case statusCode == http.StatusRequestTimeout, statusCode == http.StatusGatewayTimeout:
		return fmt.Errorf("%s: %w", message, ErrTimeout)
	case statusCode >= 500:
		return fmt.Errorf("%s: %w", message, ErrUnavailable)
	case statusCode >= 400:
		return fmt.Errorf("%s: %w", message, ErrBadRequest)
	}

	return fmt.Errorf("unexpected status %d: %s", statusCode, message)
}

// FromTransport classifies errors raised before any HTTP response arrived.
// Already-classified errors are returned unchanged. The cause stays in the
// chain, so a canceled request still matches context.Canceled.
func FromTransport(err error) error {
	if err == nil {
		return nil
	}
	if IsClassified(err) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out: %w", ErrTimeout)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Errorf("%w: %w", err, ErrTimeout)
		}
		return fmt.Errorf("%w: %w", err, ErrNetwork)
	}
	return err
}

// IsClassified reports whether err already wraps one of the sentinels.
func IsClassified(err error) bool {
	for _, s := range []error{
		ErrRateLimit, ErrQuotaExceeded, ErrTimeout, ErrAuthFailed,
		ErrBadRequest, ErrUnavailable, ErrNetwork, ErrMalformedResponse,
	} {
		if errors.Is(err, s) {
			return true
		}
	}
	return false
}
