// Package sanitize strips markup from user-supplied text before it is
// validated, stored, or used in a search.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy allows no elements and no attributes. The contents of elements such
// as script and style are dropped entirely rather than kept as text.
// bluemonday policies are safe for concurrent use once built.
var policy = bluemonday.StrictPolicy()

// Text removes every tag and attribute from s, leaving its plain-text content,
// and trims leading and trailing whitespace. Malformed markup is handled on a
// best-effort basis; Text never fails.
//
// The policy emits HTML-escaped text, so the result is unescaped once more:
// "Tom & Jerry" comes back as "Tom & Jerry", not "Tom &amp; Jerry".
func Text(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}
