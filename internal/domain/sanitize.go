package domain

import (
	"regexp"
	"strings"
)

// tagPattern matches a '<' up to the next '>'. A lone '<' is not matched.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Sanitize strips markup-like substrings and trims surrounding whitespace.
// It is not an HTML sanitizer: it only keeps tag-shaped input out of free
// text fields.
func Sanitize(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}
