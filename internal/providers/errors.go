package providers

import (
	"context"
	"errors"
	"fmt"
)

// ConfigurationError means the credential for a provider is not configured.
// No network call is made when it is returned.
type ConfigurationError struct {
	KeyName string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not set on the server", e.KeyName)
}

// ProviderError means the provider answered with a non-success status or an unusable body.
// Body holds the raw response text for diagnostics.
type ProviderError struct {
	Provider   Provider
	StatusCode int
	Body       string
	Reason     string
}

func (e *ProviderError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s provider error: %s (status %d)", e.Provider, e.Reason, e.StatusCode)
	}
	return fmt.Sprintf("%s provider returned status code: %d", e.Provider, e.StatusCode)
}

// TransportError wraps a network-level fault: timeout, DNS failure, connection reset.
type TransportError struct {
	Provider Provider
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the fault was a deadline being exceeded.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}
