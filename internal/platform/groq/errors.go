package groq

import (
	"errors"
	"fmt"
)

// Common errors returned by the groq package
var (
	// ErrMissingAPIKey is returned before any network call when the provider
	// credential is not configured.
	ErrMissingAPIKey = errors.New("GROQ_API_KEY missing on server")

	// ErrEmptyCompletion is returned when the provider response carries no
	// choices.
	ErrEmptyCompletion = errors.New("completion response contains no choices")
)

// UpstreamError is returned when the completion endpoint responds with a
// non-2xx status. It carries the provider status and a bounded copy of the
// response body; this error class is never retried.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("groq: upstream returned status %d", e.Status)
}
