package render

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/sprintslides/sprintslides-api/internal/config"
	"github.com/sprintslides/sprintslides-api/internal/domain"
)

// ProductName appears on the title page and in download filenames.
const ProductName = "SprintSlidesAI"

// cm converts centimeters to the document's point unit.
const cm = 72.0 / 2.54

// Layout constants, A4 portrait in points.
const (
	maxLineChars = 95 // character budget per wrapped content line
	lineAdvance  = 14 // vertical cursor advance per wrapped line
	paragraphGap = 10 // gap produced by an empty paragraph line

	contentX        = 1.7 * cm
	contentTop      = 6.0 * cm // first content line on a slide page
	continuationTop = 3.0 * cm // first content line on an overflow page
	bottomMargin    = 2.5 * cm // crossing this starts a new physical page
	footerOffset    = 1.4 * cm // footer baseline, measured from the bottom
)

// Theme colors: slide background #0A0D14, content text #D1D5DB, subtitle and
// counter #9CA3AF, footers #6B7280, badge and divider rule #6366F1.
var (
	colorTitleBg = rgb{0, 0, 0}
	colorSlideBg = rgb{10, 13, 20}
	colorWhite   = rgb{255, 255, 255}
	colorGrey300 = rgb{209, 213, 219}
	colorGrey400 = rgb{156, 163, 175}
	colorGrey500 = rgb{107, 114, 128}
	colorIndigo  = rgb{99, 102, 241}
)

type rgb struct{ r, g, b int }

// DeckRenderer produces paginated document bytes for a topic and its slides.
type DeckRenderer interface {
	RenderDeck(topic string, slides []domain.Slide) ([]byte, error)
}

// Renderer implements DeckRenderer with a fixed dark visual theme.
type Renderer struct {
	logoPath string
	logger   *slog.Logger
}

// NewRenderer creates a Renderer. The logo asset at cfg.LogoPath is optional;
// when absent the logo is simply omitted from every page.
func NewRenderer(cfg config.RenderConfig, logger *slog.Logger) *Renderer {
	return &Renderer{logoPath: cfg.LogoPath, logger: logger}
}

// Filename builds the download filename for a deck PDF, replacing spaces in
// the topic with underscores.
func Filename(topic string) string {
	return ProductName + "_" + strings.ReplaceAll(topic, " ", "_") + ".pdf"
}

// RenderDeck renders the full document: a title page, then one logical unit
// per slide that overflows onto continuation pages as needed. A slide's
// content is never clipped.
func (r *Renderer) RenderDeck(topic string, slides []domain.Slide) ([]byte, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, domain.ErrEmptyTopic
	}
	if len(slides) == 0 {
		return nil, domain.ErrNoSlides
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, pageH := pdf.GetPageSize()

	hasLogo := r.logoAvailable()

	r.titlePage(pdf, tr, pageW, pageH, topic, hasLogo)
	for i, slide := range slides {
		r.slidePages(pdf, tr, pageW, pageH, slide, i+1, len(slides), hasLogo)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// logoAvailable reports whether the configured logo asset exists. Absence is
// tolerated and logged once per render at debug level.
func (r *Renderer) logoAvailable() bool {
	if r.logoPath == "" {
		return false
	}
	if _, err := os.Stat(r.logoPath); err != nil {
		r.logger.Debug("logo asset not found, rendering without it",
			"logo_path", r.logoPath)
		return false
	}
	return true
}

func (r *Renderer) titlePage(pdf *gofpdf.Fpdf, tr func(string) string, pageW, pageH float64, topic string, hasLogo bool) {
	pdf.AddPage()
	fill(pdf, colorTitleBg)
	pdf.Rect(0, 0, pageW, pageH, "F")

	if hasLogo {
		logoW, logoH := 16*cm, 4*cm
		pdf.ImageOptions(r.logoPath, (pageW-logoW)/2, 3*cm, logoW, logoH,
			false, gofpdf.ImageOptions{}, 0, "")
	}

	text(pdf, colorWhite)
	pdf.SetFont("Helvetica", "B", 28)
	centered(pdf, pageW, 10.2*cm, tr(ProductName))

	pdf.SetFont("Helvetica", "", 16)
	text(pdf, colorGrey400)
	centered(pdf, pageW, 11.5*cm, tr("Topic: "+topic))

	pdf.SetFont("Helvetica", "", 11)
	text(pdf, colorGrey500)
	centered(pdf, pageW, pageH-2.2*cm, tr("Generated using Groq"))
}

// slidePages renders one slide, spanning as many physical pages as its
// content needs.
func (r *Renderer) slidePages(pdf *gofpdf.Fpdf, tr func(string) string, pageW, pageH float64, slide domain.Slide, index, total int, hasLogo bool) {
	slideType := slide.Type
	if slideType == "" {
		slideType = "slide"
	}
	badge := strings.ToUpper(strings.ReplaceAll(slideType, "_", " "))

	title := strings.TrimSpace(slide.Title)
	if title == "" {
		title = "Untitled"
	}

	r.newSlidePage(pdf, tr, pageW, pageH, hasLogo)

	// Page counter, top right
	text(pdf, colorGrey400)
	pdf.SetFont("Helvetica", "", 10)
	counter := fmt.Sprintf("%d / %d", index, total)
	pdf.Text(pageW-1.6*cm-pdf.GetStringWidth(counter), 1.7*cm, counter)

	// Type badge
	text(pdf, colorIndigo)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(1.5*cm, 3.2*cm, tr(badge))

	// Title and divider rule
	text(pdf, colorWhite)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.Text(1.5*cm, 4.5*cm, tr(title))

	draw(pdf, colorIndigo)
	pdf.SetLineWidth(2)
	pdf.Line(1.5*cm, 5.0*cm, 6.0*cm, 5.0*cm)

	// Content: paragraphs split on newlines, each word-wrapped. The cursor
	// descends a fixed amount per line and overflows to a continuation page
	// before crossing the bottom margin.
	text(pdf, colorGrey300)
	pdf.SetFont("Helvetica", "", 12)

	y := contentTop
	for _, block := range strings.Split(strings.TrimSpace(slide.Content), "\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			y += paragraphGap
			continue
		}
		for _, line := range WrapText(block, maxLineChars) {
			if y > pageH-bottomMargin {
				r.newSlidePage(pdf, tr, pageW, pageH, hasLogo)
				y = continuationTop
				text(pdf, colorGrey300)
				pdf.SetFont("Helvetica", "", 12)
			}
			pdf.Text(contentX, y, tr(line))
			y += lineAdvance
		}
	}
}

// newSlidePage starts a physical slide page: dark background, header logo and
// the footer caption, which appears on every physical page.
func (r *Renderer) newSlidePage(pdf *gofpdf.Fpdf, tr func(string) string, pageW, pageH float64, hasLogo bool) {
	pdf.AddPage()
	fill(pdf, colorSlideBg)
	pdf.Rect(0, 0, pageW, pageH, "F")

	if hasLogo {
		pdf.ImageOptions(r.logoPath, 1.4*cm, 0.85*cm, 5.5*cm, 1.35*cm,
			false, gofpdf.ImageOptions{}, 0, "")
	}

	text(pdf, colorGrey500)
	pdf.SetFont("Helvetica", "", 10)
	centered(pdf, pageW, pageH-footerOffset, tr(ProductName+" - Study smarter"))
}

func centered(pdf *gofpdf.Fpdf, pageW, y float64, s string) {
	pdf.Text((pageW-pdf.GetStringWidth(s))/2, y, s)
}

func fill(pdf *gofpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }
func text(pdf *gofpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
func draw(pdf *gofpdf.Fpdf, c rgb) { pdf.SetDrawColor(c.r, c.g, c.b) }
