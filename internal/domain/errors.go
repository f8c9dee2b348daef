package domain

import "errors"

// Common validation errors for deck requests.
var (
	// ErrEmptyTopic is returned when a deck topic is empty after trimming.
	ErrEmptyTopic = errors.New("topic is required")

	// ErrSlideCountOutOfRange is returned when the requested slide count is
	// outside the supported range.
	ErrSlideCountOutOfRange = errors.New("slideCount must be between 3 and 15")

	// ErrNoSlides is returned when a caller-supplied slide list is empty.
	ErrNoSlides = errors.New("slides list is required")
)
