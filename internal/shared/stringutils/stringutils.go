package stringutils

import "strings"

// condensedLimit is the length above which condensed-context text is cut.
const condensedLimit = 50

// Truncate shortens a string to at most n characters, adding "..." if it was truncated.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// Condense applies the condensed-list truncation rule: text longer than 50
// characters is cut to 47 plus an ellipsis.
func Condense(s string) string {
	if len([]rune(s)) <= condensedLimit {
		return s
	}
	return Truncate(s, condensedLimit-3)
}

// NormalizeHandle strips a leading @ so callers may pass handles either way.
func NormalizeHandle(s string) string {
	return strings.TrimPrefix(strings.TrimSpace(s), "@")
}
