package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.StrictPolicy()

// SanitizeContent normalizes user-supplied post and comment bodies:
// strips all HTML, null bytes and surrounding whitespace.
func SanitizeContent(input string) string {
	input = htmlPolicy.Sanitize(input)
	input = strings.ReplaceAll(input, "\x00", "")
	return strings.TrimSpace(input)
}
