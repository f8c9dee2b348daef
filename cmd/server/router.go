package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sprintslides/sprintslides-api/internal/api"
	apiMiddleware "github.com/sprintslides/sprintslides-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// Permissive CORS so browser frontends can call the API directly.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	deckHandler := api.NewDeckHandler(app.generator, app.renderer, app.logger)

	// Register routes
	r.Get("/", deckHandler.Health)
	r.Post("/generateDeck", deckHandler.GenerateDeck)
	r.Post("/downloadPdf", deckHandler.DownloadPDF)
	r.Get("/downloadPdf", deckHandler.DownloadPDFByQuery)

	return r
}
