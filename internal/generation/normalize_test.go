package generation

import (
	"strings"
	"testing"

	"github.com/sprintslides/sprintslides-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeSlidesJSON = `{
  "slides": [
    {"type": "overview", "title": "Intro", "content": "Line one\nLine two"},
    {"type": "core_concepts", "title": " Key Ideas ", "content": " Details "},
    {"type": "exam_tips", "title": "Tips", "content": "Revise daily"}
  ]
}`

func TestNormalize_WellFormedArray(t *testing.T) {
	slides, _, err := Normalize(threeSlidesJSON, 3)
	require.NoError(t, err)
	require.Len(t, slides, 3)

	assert.Equal(t, domain.Slide{Type: "overview", Title: "Intro", Content: "Line one\nLine two"}, slides[0])
	// Fields are trimmed during coercion
	assert.Equal(t, "Key Ideas", slides[1].Title)
	assert.Equal(t, "Details", slides[1].Content)
	assert.Equal(t, "exam_tips", slides[2].Type)
}

func TestNormalize_SlidesAsObject(t *testing.T) {
	// The model sometimes returns slides keyed by name instead of an array;
	// values are taken in insertion order.
	input := `{
  "slides": {
    "slide1": {"type": "overview", "title": "First", "content": "a"},
    "slide2": {"type": "examples", "title": "Second", "content": "b"},
    "slide3": {"type": "exam_tips", "title": "Third", "content": "c"}
  }
}`

	slides, _, err := Normalize(input, 3)
	require.NoError(t, err)
	require.Len(t, slides, 3)
	assert.Equal(t, "First", slides[0].Title)
	assert.Equal(t, "Second", slides[1].Title)
	assert.Equal(t, "Third", slides[2].Title)
}

func TestNormalize_TruncatesExtraSlides(t *testing.T) {
	input := `{"slides": [
		{"title": "one"}, {"title": "two"}, {"title": "three"}, {"title": "four"}, {"title": "five"}
	]}`

	slides, _, err := Normalize(input, 3)
	require.NoError(t, err)
	require.Len(t, slides, 3)
	assert.Equal(t, "one", slides[0].Title)
	assert.Equal(t, "three", slides[2].Title)
}

func TestNormalize_TooFewSlidesFails(t *testing.T) {
	input := `{"slides": [{"title": "only one"}]}`

	slides, _, err := Normalize(input, 3)
	assert.Nil(t, slides)
	assert.ErrorIs(t, err, ErrInvalidSlides)
}

func TestNormalize_NonObjectEntryFails(t *testing.T) {
	input := `{"slides": [{"title": "ok"}, "not an object", {"title": "ok too"}]}`

	slides, _, err := Normalize(input, 3)
	assert.Nil(t, slides)
	assert.ErrorIs(t, err, ErrInvalidSlides)
}

func TestNormalize_SlidesNotASequenceFails(t *testing.T) {
	for name, input := range map[string]string{
		"string_slides": `{"slides": "three slides"}`,
		"number_slides": `{"slides": 3}`,
		"missing_field": `{"deck": []}`,
	} {
		t.Run(name, func(t *testing.T) {
			slides, _, err := Normalize(input, 3)
			assert.Nil(t, slides)
			assert.ErrorIs(t, err, ErrInvalidSlides)
		})
	}
}

func TestNormalize_StripsFences(t *testing.T) {
	fenced := "```json\n" + threeSlidesJSON + "\n```"

	fencedSlides, _, err := Normalize(fenced, 3)
	require.NoError(t, err)

	plainSlides, _, err := Normalize(threeSlidesJSON, 3)
	require.NoError(t, err)

	// Fence stripping yields the same parse result as the unwrapped document
	assert.Equal(t, plainSlides, fencedSlides)
}

func TestNormalize_SlicesSurroundingCommentary(t *testing.T) {
	chatty := "Here is your deck:\n" + threeSlidesJSON + "\nHope this helps!"

	slides, _, err := Normalize(chatty, 3)
	require.NoError(t, err)
	assert.Len(t, slides, 3)
}

func TestNormalize_InvalidJSON(t *testing.T) {
	garbage := `{"slides": [` + strings.Repeat("x", 2000)

	slides, preview, err := Normalize(garbage, 3)
	assert.Nil(t, slides)
	assert.ErrorIs(t, err, ErrInvalidJSON)
	// Diagnostic preview is bounded
	assert.LessOrEqual(t, len(preview), PreviewLimit)
	assert.NotEmpty(t, preview)
}

func TestNormalize_FieldDefaultsAndCoercion(t *testing.T) {
	input := `{"slides": [
		{"title": "no type"},
		{"type": null, "title": null, "content": "kept"},
		{"type": "custom_type", "title": 42, "content": true}
	]}`

	slides, _, err := Normalize(input, 3)
	require.NoError(t, err)

	assert.Equal(t, domain.SlideTypeOverview, slides[0].Type)
	assert.Equal(t, "", slides[0].Title)
	assert.Equal(t, "", slides[0].Content)

	assert.Equal(t, domain.SlideTypeOverview, slides[1].Type)
	assert.Equal(t, "", slides[1].Title)
	assert.Equal(t, "kept", slides[1].Content)

	// Unknown types pass through unchanged; non-string scalars keep their
	// literal text
	assert.Equal(t, "custom_type", slides[2].Type)
	assert.Equal(t, "42", slides[2].Title)
	assert.Equal(t, "true", slides[2].Content)
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no_fence", `{"a": 1}`, `{"a": 1}`},
		{"json_fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare_fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fence_without_close", "```json\n{\"a\": 1}", `{"a": 1}`},
		{"padded", "  ```json\n{\"a\": 1}\n```  ", `{"a": 1}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, stripFences(tc.input))
		})
	}
}

func TestForceJSONOnly(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, forceJSONOnly(`noise {"a": 1} trailing`))
	// Without braces the text is left unchanged
	assert.Equal(t, "no braces here", forceJSONOnly("no braces here"))
	assert.Equal(t, "} backwards {", forceJSONOnly("} backwards {"))
}
