package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrEmptyResponse indicates the provider returned no usable content
	ErrEmptyResponse = errors.New("empty response from provider")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// transientError is satisfied by the client packages' APIError types.
type transientError interface {
	Transient() bool
}

// IsTransient reports whether err is a retryable provider failure
// (network error, rate limit, or server-side error).
func IsTransient(err error) bool {
	var te transientError
	if errors.As(err, &te) {
		return te.Transient()
	}
	return false
}
