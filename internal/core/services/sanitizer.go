package services

import (
	"html"
	"regexp"
	"strings"
)

// maxInputLength is the hard cap applied to every sanitized text, in runes.
// Truncation is silent.
const maxInputLength = 500

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	emailPattern   = regexp.MustCompile(`\b[\w.\-]+@[\w.\-]+\.\w+\b`)
	phonePattern   = regexp.MustCompile(`\b\+?\d[\d\-\s]{6,}\d\b`)
)

// Sanitize cleans one free-text input: trims, collapses whitespace runs,
// redacts email- and phone-like substrings, escapes markup-significant
// characters, and truncates. The redaction is a best-effort privacy
// measure, not a guarantee. Empty input maps to the empty string.
func Sanitize(text string) string {
	s := strings.TrimSpace(text)
	if s == "" {
		return ""
	}
	s = whitespaceRuns.ReplaceAllString(s, " ")
	// Escape before redacting so the redaction markers survive intact.
	s = html.EscapeString(s)
	s = emailPattern.ReplaceAllString(s, "<REDACTED_EMAIL>")
	s = phonePattern.ReplaceAllString(s, "<REDACTED_PHONE>")
	if runes := []rune(s); len(runes) > maxInputLength {
		s = string(runes[:maxInputLength])
	}
	return s
}
