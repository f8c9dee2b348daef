package render

import "strings"

// WrapText splits text into greedy word-wrapped lines of at most maxChars
// characters. Words longer than maxChars become lines of their own; they are
// never split.
func WrapText(text string, maxChars int) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		if len(current)+len(word)+1 <= maxChars {
			if current == "" {
				current = word
			} else {
				current += " " + word
			}
		} else {
			if current != "" {
				lines = append(lines, current)
			}
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
