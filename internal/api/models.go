package api

import (
	"github.com/sprintslides/sprintslides-api/internal/domain"
)

// Common request/response structures

// GenerateDeckRequest defines the payload for the deck generation endpoint.
// SlideCount defaults to domain.DefaultSlideCount when omitted or zero; range
// checks happen in the domain layer so the error messages stay caller-facing.
type GenerateDeckRequest struct {
	Topic      string `json:"topic"`
	SlideCount int    `json:"slideCount"`
}

// GenerateDeckResponse defines the successful response for deck generation.
type GenerateDeckResponse struct {
	OK     bool           `json:"ok"`
	Slides []domain.Slide `json:"slides"`
}

// RenderPDFRequest defines the payload for the caller-supplied-deck PDF
// endpoint. The handler checks the topic and slide list itself so the error
// messages stay caller-facing.
type RenderPDFRequest struct {
	Topic  string         `json:"topic"`
	Slides []domain.Slide `json:"slides"`
}

// HealthResponse defines the health check payload.
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Status  string `json:"status"`
}
