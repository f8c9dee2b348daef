package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrInvalidJSON is returned when the cleaned model output cannot be
	// parsed as JSON.
	ErrInvalidJSON = errors.New("model output is not valid JSON")

	// ErrInvalidSlides is returned when parsed output lacks a valid slides
	// sequence of the exact requested length.
	ErrInvalidSlides = errors.New("model output lacks a valid slides sequence")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// OutputError is the terminal failure raised after both generation attempts
// produced output that could not be normalized. It carries truncated previews
// of what each attempt returned, never raw unbounded provider output.
type OutputError struct {
	// Expected is the slide count the caller asked for.
	Expected int

	// Attempt1Preview and Attempt2Preview hold up to PreviewLimit characters
	// of each attempt's cleaned output, for diagnostics.
	Attempt1Preview string
	Attempt2Preview string
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("model output inconsistent: expected %d slides", e.Expected)
}
