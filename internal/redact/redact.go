// Package redact provides utilities for redacting sensitive information from
// strings before they are logged or included in diagnostic previews. It helps
// prevent the accidental leakage of provider credentials that might be echoed
// back in upstream error bodies.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder = "[REDACTED_KEY]"
)

// Precompiled regex patterns
var (
	// Bearer tokens in Authorization headers or echoed request dumps
	bearerRegex = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]{8,}`)

	// API keys and secrets in key=value or key: value form
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|authorization)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Groq-style key material
	gskKeyRegex = regexp.MustCompile(`\bgsk_[A-Za-z0-9]{8,}\b`)

	patterns = []*regexp.Regexp{bearerRegex, apiKeyRegex, gskKeyRegex}
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, pattern := range patterns {
		result = pattern.ReplaceAllString(result, RedactedKeyPlaceholder)
	}
	return result
}

// Error redacts sensitive information from an error's message.
// Returns an empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
