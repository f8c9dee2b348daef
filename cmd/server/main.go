// Package main implements the entry point for the SprintSlides API server,
// which turns a topic into an LLM-generated revision deck and optionally
// renders it as a themed PDF.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/sprintslides/sprintslides-api/internal/config"
	"github.com/sprintslides/sprintslides-api/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the wired application and any initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"credential_present", cfg.LLM.GroqAPIKey != "")

	return newApplication(cfg, appLogger)
}
