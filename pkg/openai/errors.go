package openai

import (
	"fmt"
	"net/http"
)

// APIError is a failed exchange with the API: either a transport failure
// (Err set) or a non-200 status (StatusCode set).
type APIError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("API call failed: %v", e.Err)
	}
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error { return e.Err }

// Transient reports whether the failure is worth retrying: transport errors,
// rate limiting, and server-side errors.
func (e *APIError) Transient() bool {
	if e.Err != nil {
		return true
	}
	switch e.StatusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	}
	return e.StatusCode >= 500
}
