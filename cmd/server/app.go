package main

import (
	"fmt"
	"log/slog"

	"github.com/sprintslides/sprintslides-api/internal/config"
	"github.com/sprintslides/sprintslides-api/internal/generation"
	"github.com/sprintslides/sprintslides-api/internal/platform/groq"
	"github.com/sprintslides/sprintslides-api/internal/render"
)

// application holds the wired dependencies for the server: configuration,
// logging and the deck pipeline components injected into the HTTP handlers.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	generator generation.DeckGenerator
	renderer  render.DeckRenderer
}

// newApplication wires the completion client, deck generation service and PDF
// renderer from configuration.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	completionClient, err := groq.NewClient(cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	generator, err := generation.NewService(completionClient, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create deck generator: %w", err)
	}

	return &application{
		config:    cfg,
		logger:    logger,
		generator: generator,
		renderer:  render.NewRenderer(cfg.Render, logger),
	}, nil
}
