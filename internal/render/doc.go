// Package render produces the paginated PDF document for a deck: a dark
// title page followed by one or more content pages per slide. Layout is
// deterministic for a given deck and logo asset; line wrapping is measured in
// characters, an approximation rather than a typographic guarantee.
package render
