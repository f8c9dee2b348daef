package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sprintslides/sprintslides-api/internal/domain"
	"github.com/sprintslides/sprintslides-api/internal/generation"
	"github.com/sprintslides/sprintslides-api/internal/platform/groq"
	"github.com/sprintslides/sprintslides-api/internal/redact"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var upstream *groq.UpstreamError

	switch {
	// Caller input errors
	case errors.Is(err, domain.ErrEmptyTopic),
		errors.Is(err, domain.ErrSlideCountOutOfRange),
		errors.Is(err, domain.ErrNoSlides):
		return http.StatusBadRequest

	// Upstream transport/status errors: pass the provider status through,
	// the way the original single-shot pipeline surfaces them.
	case errors.As(err, &upstream):
		if upstream.Status >= http.StatusBadRequest {
			return upstream.Status
		}
		return http.StatusBadGateway

	// Configuration and terminal generation errors
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var outputErr *generation.OutputError
	var upstream *groq.UpstreamError

	switch {
	// Caller input errors carry caller-facing messages already.
	case errors.Is(err, domain.ErrEmptyTopic),
		errors.Is(err, domain.ErrSlideCountOutOfRange),
		errors.Is(err, domain.ErrNoSlides):
		return err.Error()

	case errors.Is(err, groq.ErrMissingAPIKey):
		return "GROQ_API_KEY missing on server"

	case errors.As(err, &outputErr):
		return outputErr.Error()

	case errors.As(err, &upstream):
		return "Completion provider returned an error"

	case errors.Is(err, generation.ErrInvalidJSON):
		return "Invalid JSON from model"

	default:
		return "An unexpected error occurred"
	}
}

// ErrorDetails returns bounded machine-readable diagnostics for terminal
// errors, or nil when none apply. Previews are truncated by the generation
// layer and upstream bodies are redacted and truncated here; raw unbounded
// provider output never reaches the client.
func ErrorDetails(err error) map[string]string {
	var outputErr *generation.OutputError
	if errors.As(err, &outputErr) {
		return map[string]string{
			"attempt1_preview": outputErr.Attempt1Preview,
			"attempt2_preview": outputErr.Attempt2Preview,
		}
	}

	var upstream *groq.UpstreamError
	if errors.As(err, &upstream) {
		body := upstream.Body
		if len(body) > generation.PreviewLimit {
			body = body[:generation.PreviewLimit]
		}
		return map[string]string{
			"upstream_status": strconv.Itoa(upstream.Status),
			"upstream_body":   redact.String(body),
		}
	}

	return nil
}
