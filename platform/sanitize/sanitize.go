// Package sanitize provides text normalization utilities for user-provided fields.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// spaceRunRegex matches runs of whitespace, including newlines
	spaceRunRegex = regexp.MustCompile(`\s+`)
)

// Line normalizes a single-line text field: trims surrounding whitespace and
// collapses internal whitespace runs (including newlines) to single spaces.
func Line(s string) string {
	return strings.TrimSpace(spaceRunRegex.ReplaceAllString(s, " "))
}

// Block normalizes a multi-line text field: trims surrounding whitespace and
// normalizes line endings, leaving internal line breaks intact.
func Block(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(s)
}

// LinePtr is a helper for optional single-line string pointers.
func LinePtr(s *string) *string {
	if s == nil {
		return nil
	}
	result := Line(*s)
	return &result
}

// BlockPtr is a helper for optional multi-line string pointers.
func BlockPtr(s *string) *string {
	if s == nil {
		return nil
	}
	result := Block(*s)
	return &result
}
