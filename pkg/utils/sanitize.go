package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// CleanText strips every HTML tag from free text submitted through forms
// (symptoms, alert messages, community content) and trims whitespace.
// Entities escaped by the policy are decoded again since the text is served
// as JSON, not HTML.
func CleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}
