package domain

import "strings"

// SlideType tags a slide with its revision category.
type SlideType = string

// Slide types the model is instructed to produce. Membership is documented
// but deliberately not enforced: an unknown type only affects the badge label
// on the rendered page, and rejecting it would turn recoverable model
// variance into a hard failure.
const (
	SlideTypeOverview     SlideType = "overview"
	SlideTypeCoreConcepts SlideType = "core_concepts"
	SlideTypeActiveRecall SlideType = "active_recall"
	SlideTypeExamples     SlideType = "examples"
	SlideTypeExamTips     SlideType = "exam_tips"
)

// Bounds for the number of slides in a single deck.
const (
	MinSlideCount     = 3
	MaxSlideCount     = 15
	DefaultSlideCount = 5
)

// Slide is one structured unit of deck content: a category tag, a title and
// newline-delimited bullet text. After normalization all three fields are
// present as trimmed strings, even if empty.
type Slide struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Deck is the full generated output: a topic plus an ordered slide sequence.
// Decks are constructed fresh per request and never persisted.
type Deck struct {
	Topic  string  `json:"topic"`
	Slides []Slide `json:"slides"`
}

// NewDeck creates a Deck from a topic and a non-empty slide sequence.
// The topic is trimmed before validation.
func NewDeck(topic string, slides []Slide) (*Deck, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}

	return &Deck{Topic: topic, Slides: slides}, nil
}

// ValidateGenerationRequest checks caller input for a deck generation and
// returns the trimmed topic. It rejects empty topics and slide counts outside
// [MinSlideCount, MaxSlideCount] before any remote call is attempted.
func ValidateGenerationRequest(topic string, slideCount int) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", ErrEmptyTopic
	}
	if slideCount < MinSlideCount || slideCount > MaxSlideCount {
		return "", ErrSlideCountOutOfRange
	}

	return topic, nil
}
