package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrRateLimited = errors.New("rate limited by upstream API")
	ErrUpstream    = errors.New("upstream API error")
)

// APIError is a non-2xx response other than 401.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream API error [%d]", e.StatusCode)
	}
	return fmt.Sprintf("upstream API error [%d] %s: %s", e.StatusCode, e.Code, e.Message)
}

// Unwrap lets callers match with errors.Is(err, ErrRateLimited) or ErrUpstream.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	return ErrUpstream
}
