package generation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sprintslides/sprintslides-api/internal/domain"
)

// PreviewLimit caps the diagnostic preview of cleaned model output carried in
// normalization errors.
const PreviewLimit = 900

// codeFence is the delimiter pattern models sometimes wrap JSON output in.
const codeFence = "```"

// Normalize turns raw model output into a slide sequence of exactly
// slideCount entries. It strips markdown fences, slices the text to its
// outermost braces, parses the result and coerces the slides field, which the
// model sometimes returns as an object instead of an array. On failure it
// returns ErrInvalidJSON or ErrInvalidSlides along with a truncated preview
// of the cleaned text for diagnostics; it never returns a partial sequence.
func Normalize(raw string, slideCount int) ([]domain.Slide, string, error) {
	cleaned := forceJSONOnly(stripFences(raw))
	preview := truncatePreview(cleaned)

	var payload struct {
		Slides json.RawMessage `json:"slides"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, preview, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if len(payload.Slides) == 0 {
		return nil, preview, fmt.Errorf("%w: missing slides field", ErrInvalidSlides)
	}

	entries, err := slideEntries(payload.Slides)
	if err != nil {
		return nil, preview, err
	}

	// Trim if the model over-produced; under-production is unrecoverable.
	if len(entries) > slideCount {
		entries = entries[:slideCount]
	}
	if len(entries) != slideCount {
		return nil, preview, fmt.Errorf("%w: got %d slides, expected %d",
			ErrInvalidSlides, len(entries), slideCount)
	}

	slides := make([]domain.Slide, 0, slideCount)
	for i, entry := range entries {
		slide, err := coerceSlide(entry)
		if err != nil {
			return nil, preview, fmt.Errorf("%w: slide %d: %v", ErrInvalidSlides, i, err)
		}
		slides = append(slides, slide)
	}

	return slides, preview, nil
}

// stripFences removes a leading and trailing markdown code fence if present.
// Everything before the first line break of the opening fence and everything
// after the last fence occurrence is dropped.
func stripFences(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, codeFence) {
		return t
	}
	if nl := strings.Index(t, "\n"); nl != -1 {
		t = t[nl+1:]
	}
	if last := strings.LastIndex(t, codeFence); last != -1 {
		t = t[:last]
	}
	return strings.TrimSpace(t)
}

// forceJSONOnly slices the text to the span between the first '{' and the
// last '}', discarding any leading or trailing commentary the model added.
// If either brace is absent the text is returned unchanged.
func forceJSONOnly(text string) string {
	t := strings.TrimSpace(text)
	start := strings.Index(t, "{")
	end := strings.LastIndex(t, "}")
	if start == -1 || end == -1 || end <= start {
		return t
	}
	return strings.TrimSpace(t[start : end+1])
}

// slideEntries extracts the raw slide entries in order. Arrays are taken
// as-is; objects are converted to the ordered sequence of their values, which
// requires a token walk because decoding into a map would lose key insertion
// order. Anything else is not a sequence.
func slideEntries(raw json.RawMessage) ([]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlides, err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, fmt.Errorf("%w: slides is not a sequence", ErrInvalidSlides)
	}

	var entries []json.RawMessage
	switch delim {
	case '[':
		for dec.More() {
			var entry json.RawMessage
			if err := dec.Decode(&entry); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidSlides, err)
			}
			entries = append(entries, entry)
		}
	case '{':
		for dec.More() {
			if _, err := dec.Token(); err != nil { // key
				return nil, fmt.Errorf("%w: %v", ErrInvalidSlides, err)
			}
			var entry json.RawMessage
			if err := dec.Decode(&entry); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidSlides, err)
			}
			entries = append(entries, entry)
		}
	default:
		return nil, fmt.Errorf("%w: slides is not a sequence", ErrInvalidSlides)
	}

	return entries, nil
}

// coerceSlide converts one raw entry into a domain.Slide. The entry must be a
// JSON object; its fields are coerced to trimmed strings with defaults for
// absent or null values. The type value is passed through without enum
// membership checks.
func coerceSlide(entry json.RawMessage) (domain.Slide, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(entry, &obj); err != nil {
		return domain.Slide{}, fmt.Errorf("not an object")
	}

	return domain.Slide{
		Type:    fieldString(obj, "type", domain.SlideTypeOverview),
		Title:   fieldString(obj, "title", ""),
		Content: fieldString(obj, "content", ""),
	}, nil
}

// fieldString coerces a JSON field to a trimmed string. Strings are decoded;
// other values keep their literal JSON text; absent or null fields take the
// default.
func fieldString(obj map[string]json.RawMessage, key, def string) string {
	raw, ok := obj[key]
	if !ok {
		return def
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return def
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(trimmed))
}

func truncatePreview(s string) string {
	if len(s) <= PreviewLimit {
		return s
	}
	return s[:PreviewLimit]
}
