package util

import (
	"strings"
	"unicode"
)

// Preview truncates content to at most limit characters on a word
// boundary and appends "...". Content at or under the limit is returned
// unchanged.
func Preview(content string, limit int) string {
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}

	cut := string(runes[:limit])
	if idx := strings.LastIndexFunc(cut, unicode.IsSpace); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRightFunc(cut, unicode.IsSpace) + "..."
}
