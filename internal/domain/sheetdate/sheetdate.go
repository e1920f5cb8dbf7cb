// Package sheetdate converts spreadsheet date cells into "YYYY-MM-DD" strings
// and derives task deadlines from post dates.
//
// Spreadsheet programs store dates as serial numbers where serial 1 is
// 1900-01-01, and the count includes a phantom 1900-02-29 (serial 60):
// spreadsheets treat 1900 as a leap year even though it was not. Serials from
// 1900-03-01 onward are therefore one day ahead of plain epoch arithmetic.
// Serial 45000 converts to 2023-03-15.
package sheetdate

import (
	"strconv"
	"strings"
	"time"
)

const isoDay = "2006-01-02"

// Serial day-zeroes. Serials below 61 predate the phantom 1900-02-29 and
// count from 1899-12-31; later serials count from 1899-12-30, which absorbs
// the extra day.
var (
	preLeapEpoch  = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)
	postLeapEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
)

// Normalize converts a raw spreadsheet cell into a post-date string.
//
//   - Numeric serials become ISO dates via epoch-plus-days arithmetic.
//   - Strings that already parse as ISO dates are normalized (trimmed).
//   - Anything else passes through unchanged; downstream filtering simply
//     never matches an unparsable date.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		days := int(serial)
		epoch := preLeapEpoch
		if days >= 61 {
			epoch = postLeapEpoch
		}
		return epoch.AddDate(0, 0, days).Format(isoDay)
	}
	if _, err := time.Parse(isoDay, s); err == nil {
		return s
	}
	return s
}

// DeadlineFor derives the deadline from a post date: two calendar days
// earlier when the post date parses, the post date verbatim when it does not.
// The deadline is computed once at creation and never re-derived.
func DeadlineFor(postDate string) string {
	t, err := time.Parse(isoDay, strings.TrimSpace(postDate))
	if err != nil {
		return postDate
	}
	return t.AddDate(0, 0, -2).Format(isoDay)
}
