// Package sanitize strips markup from free-text fields before storage.
// Instructions, descriptions, and notes arrive from forms and spreadsheets
// and are later rendered verbatim by clients, so they are sanitized once at
// the write boundary.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes all HTML from s and trims the result.
func Text(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
