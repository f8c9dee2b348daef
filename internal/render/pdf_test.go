package render

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/sprintslides/sprintslides-api/internal/config"
	"github.com/sprintslides/sprintslides-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRenderer() *Renderer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	// Point at a path that does not exist; rendering must tolerate a
	// missing logo asset.
	return NewRenderer(config.RenderConfig{LogoPath: "testdata/absent-logo.png"}, logger)
}

func testSlides() []domain.Slide {
	return []domain.Slide{
		{Type: "overview", Title: "Intro", Content: "What photosynthesis is.\nWhy plants need it."},
		{Type: "core_concepts", Title: "Light Reactions", Content: "Photons excite chlorophyll."},
		{Type: "exam_tips", Title: "Tips", Content: "Draw the chloroplast diagram."},
	}
}

// countPages counts page objects in the document. The page-tree root also
// matches the /Type /Page prefix, so its own count is subtracted.
func countPages(doc []byte) int {
	return bytes.Count(doc, []byte("/Type /Page")) - bytes.Count(doc, []byte("/Type /Pages"))
}

func TestRenderDeck(t *testing.T) {
	doc, err := testRenderer().RenderDeck("Photosynthesis", testSlides())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
	// One title page plus one page per slide
	assert.Equal(t, 4, countPages(doc))
}

func TestRenderDeck_LongContentOverflows(t *testing.T) {
	line := "A very long explanation of the citric acid cycle and its regulation."
	content := strings.TrimSpace(strings.Repeat(line+"\n", 120))
	slides := []domain.Slide{
		{Type: "core_concepts", Title: "Krebs Cycle", Content: content},
	}

	doc, err := testRenderer().RenderDeck("Metabolism", slides)
	require.NoError(t, err)

	// Title page plus at least two physical pages for the one slide
	assert.GreaterOrEqual(t, countPages(doc), 3)
}

func TestRenderDeck_DefaultsBlankFields(t *testing.T) {
	slides := []domain.Slide{{Type: "", Title: "  ", Content: "body"}}

	doc, err := testRenderer().RenderDeck("Algebra", slides)
	require.NoError(t, err)
	assert.Equal(t, 2, countPages(doc))
}

func TestRenderDeck_InputValidation(t *testing.T) {
	r := testRenderer()

	_, err := r.RenderDeck("   ", testSlides())
	assert.ErrorIs(t, err, domain.ErrEmptyTopic)

	_, err = r.RenderDeck("Photosynthesis", nil)
	assert.ErrorIs(t, err, domain.ErrNoSlides)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "SprintSlidesAI_Cell_Biology.pdf", Filename("Cell Biology"))
	assert.Equal(t, "SprintSlidesAI_Algebra.pdf", Filename("Algebra"))
}
