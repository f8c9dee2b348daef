package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sprintslides/sprintslides-api/internal/config"
	"github.com/sprintslides/sprintslides-api/internal/domain"
)

// Generation temperature: low variance biases the model toward following the
// schema.
const temperature = 0.25

// Token budget parameters. The budget scales with the requested slide count
// while bounding per-request cost; the retry attempt gets extra room because
// truncated output is a common first-attempt failure.
const (
	budgetBase     = 1200
	budgetPerSlide = 350
	budgetCap      = 6500
	retryBonus     = 1200
)

// Service generates revision decks through a CompletionClient. It implements
// DeckGenerator with an at-most-two-attempt protocol: a verbose primary
// prompt, then one terser retry with a larger token budget if normalization
// fails. There is no backoff and no further retry, because the failures being
// recovered are deterministic output-shape mismatches, not transient network
// errors; transport and provider errors are surfaced immediately.
type Service struct {
	client CompletionClient
	config config.LLMConfig
	logger *slog.Logger
}

// NewService creates a deck generation service from its dependencies.
func NewService(client CompletionClient, cfg config.LLMConfig, logger *slog.Logger) (*Service, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: completion client cannot be nil", ErrInvalidConfig)
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", ErrInvalidConfig)
	}

	return &Service{client: client, config: cfg, logger: logger}, nil
}

// TokenBudget computes the max-output-token budget for a deck of slideCount
// slides: min(6500, 1200 + 350*slideCount).
func TokenBudget(slideCount int) int {
	budget := budgetBase + budgetPerSlide*slideCount
	if budget > budgetCap {
		return budgetCap
	}
	return budget
}

// GenerateDeck creates a deck of exactly slideCount slides for the topic.
//
// Caller input is validated before any remote call. Attempt one uses the
// primary prompt at the computed token budget; if its output cannot be
// normalized, attempt two uses the retry prompt with the budget raised by
// retryBonus. Failure of both attempts is terminal and carries previews of
// what each attempt returned.
func (s *Service) GenerateDeck(ctx context.Context, topic string, slideCount int) (*domain.Deck, error) {
	topic, err := domain.ValidateGenerationRequest(topic, slideCount)
	if err != nil {
		return nil, err
	}

	generationID := uuid.New().String()
	budget := TokenBudget(slideCount)
	log := s.logger.With(
		slog.String("generation_id", generationID),
		slog.Int("slide_count", slideCount))

	log.InfoContext(ctx, "generating deck",
		"model", s.config.ModelName,
		"token_budget", budget)

	prompt, err := BuildPrompt(topic, slideCount)
	if err != nil {
		return nil, err
	}

	slides, preview1, err := s.attempt(ctx, prompt, budget, slideCount)
	if err == nil {
		return domain.NewDeck(topic, slides)
	}
	if !isNormalizationFailure(err) {
		return nil, err
	}

	log.WarnContext(ctx, "normalization failed, retrying with stricter prompt",
		"attempt", 1,
		"error", err.Error())

	retryPrompt, err := BuildRetryPrompt(topic, slideCount)
	if err != nil {
		return nil, err
	}

	slides, preview2, err := s.attempt(ctx, retryPrompt, budget+retryBonus, slideCount)
	if err == nil {
		return domain.NewDeck(topic, slides)
	}
	if !isNormalizationFailure(err) {
		return nil, err
	}

	log.ErrorContext(ctx, "both generation attempts failed",
		"attempt", 2,
		"error", err.Error())

	return nil, &OutputError{
		Expected:        slideCount,
		Attempt1Preview: preview1,
		Attempt2Preview: preview2,
	}
}

// attempt performs one completion call followed by normalization. The
// returned preview describes the cleaned model output regardless of outcome.
func (s *Service) attempt(ctx context.Context, prompt string, budget, slideCount int) ([]domain.Slide, string, error) {
	raw, err := s.client.Complete(ctx, CompletionRequest{
		Model:       s.config.ModelName,
		System:      systemPrompt,
		Prompt:      prompt,
		Temperature: temperature,
		MaxTokens:   budget,
		JSONOnly:    true,
	})
	if err != nil {
		return nil, "", err
	}

	return Normalize(raw, slideCount)
}

// isNormalizationFailure reports whether err is a recoverable output-shape
// failure as opposed to a transport, provider or configuration error.
func isNormalizationFailure(err error) bool {
	return errors.Is(err, ErrInvalidJSON) || errors.Is(err, ErrInvalidSlides)
}
