package generation

import (
	"context"

	"github.com/sprintslides/sprintslides-api/internal/domain"
)

// DeckGenerator defines the interface for generating revision decks from a
// topic. This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type DeckGenerator interface {
	// GenerateDeck creates a deck of exactly slideCount slides for the topic.
	// It returns a fully validated domain.Deck or an error; partial decks are
	// never returned.
	GenerateDeck(ctx context.Context, topic string, slideCount int) (*domain.Deck, error)
}

// CompletionClient defines the interface for the remote text-completion
// service. Implementations send a single synchronous request and return the
// raw completion text.
type CompletionClient interface {
	// Complete sends one prompt to the completion endpoint and returns the
	// first choice's message text.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest holds everything the completion endpoint needs for one
// generation call.
type CompletionRequest struct {
	// Model is the provider-side model identifier.
	Model string

	// System sets the system-level instructions for the model.
	System string

	// Prompt is the user-level prompt text.
	Prompt string

	// Temperature controls randomness (low values bias toward schema-following).
	Temperature float32

	// MaxTokens limits the response length.
	MaxTokens int

	// JSONOnly asks the provider for its JSON-only response mode.
	JSONOnly bool
}
