package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/sprintslides/sprintslides-api/internal/api/shared"
	"github.com/sprintslides/sprintslides-api/internal/domain"
	"github.com/sprintslides/sprintslides-api/internal/generation"
	"github.com/sprintslides/sprintslides-api/internal/render"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "SprintSlides Backend"

// DeckHandler handles deck generation and PDF download HTTP requests.
type DeckHandler struct {
	generator generation.DeckGenerator
	renderer  render.DeckRenderer
	logger    *slog.Logger
}

// NewDeckHandler creates a new DeckHandler.
func NewDeckHandler(generator generation.DeckGenerator, renderer render.DeckRenderer, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{
		generator: generator,
		renderer:  renderer,
		logger:    logger,
	}
}

// Health handles GET / requests.
func (h *DeckHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		OK:      true,
		Service: ServiceName,
		Status:  "running",
	})
}

// GenerateDeck handles POST /generateDeck requests.
func (h *DeckHandler) GenerateDeck(w http.ResponseWriter, r *http.Request) {
	var req GenerateDeckRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.SlideCount == 0 {
		req.SlideCount = domain.DefaultSlideCount
	}

	deck, err := h.generator.GenerateDeck(r.Context(), req.Topic, req.SlideCount)
	if err != nil {
		h.respondDeckError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateDeckResponse{
		OK:     true,
		Slides: deck.Slides,
	})
}

// DownloadPDF handles POST /downloadPdf requests, rendering a caller-supplied
// deck.
func (h *DeckHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	var req RenderPDFRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, domain.ErrEmptyTopic.Error())
		return
	}
	if len(req.Slides) == 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, domain.ErrNoSlides.Error())
		return
	}

	pdfBytes, err := h.renderer.RenderDeck(topic, req.Slides)
	if err != nil {
		h.respondDeckError(w, r, err)
		return
	}

	h.writePDF(w, topic, pdfBytes)
}

// DownloadPDFByQuery handles GET /downloadPdf requests, generating the deck
// server-side before rendering it.
func (h *DeckHandler) DownloadPDFByQuery(w http.ResponseWriter, r *http.Request) {
	topic := r.URL.Query().Get("topic")

	slideCount := domain.DefaultSlideCount
	if raw := r.URL.Query().Get("slideCount"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "slideCount must be an integer")
			return
		}
		if parsed != 0 {
			slideCount = parsed
		}
	}

	deck, err := h.generator.GenerateDeck(r.Context(), topic, slideCount)
	if err != nil {
		h.respondDeckError(w, r, err)
		return
	}

	pdfBytes, err := h.renderer.RenderDeck(deck.Topic, deck.Slides)
	if err != nil {
		h.respondDeckError(w, r, err)
		return
	}

	h.writePDF(w, deck.Topic, pdfBytes)
}

// writePDF streams document bytes with the download headers.
func (h *DeckHandler) writePDF(w http.ResponseWriter, topic string, pdfBytes []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", render.Filename(topic)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfBytes); err != nil {
		h.logger.Error("failed to write PDF response", "error", err)
	}
}

// respondDeckError translates pipeline errors into sanitized responses with
// bounded diagnostics.
func (h *DeckHandler) respondDeckError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, ErrorDetails(err))
}
