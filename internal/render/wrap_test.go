package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxChars int
		expected []string
	}{
		{
			name:     "empty",
			input:    "",
			maxChars: 10,
			expected: nil,
		},
		{
			name:     "fits_on_one_line",
			input:    "short line",
			maxChars: 20,
			expected: []string{"short line"},
		},
		{
			name:     "wraps_greedily",
			input:    "alpha beta gamma delta",
			maxChars: 11,
			expected: []string{"alpha beta", "gamma delta"},
		},
		{
			name:     "collapses_whitespace",
			input:    "  alpha   beta  ",
			maxChars: 20,
			expected: []string{"alpha beta"},
		},
		{
			name:     "oversized_word_kept_whole",
			input:    "a supercalifragilistic b",
			maxChars: 10,
			expected: []string{"a", "supercalifragilistic", "b"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, WrapText(tc.input, tc.maxChars))
		})
	}
}

func TestWrapText_PreservesEveryWord(t *testing.T) {
	input := "The mitochondria is the powerhouse of the cell and oxidative phosphorylation drives ATP synthesis"

	lines := WrapText(input, 30)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 30)
	}
	assert.Equal(t, input, strings.Join(lines, " "))
}
