package model

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*?>`)

// Sanitize strips anything that looks like an HTML tag and trims the
// surrounding whitespace.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}

func SanitizeAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Sanitize(v)
	}
	return out
}
