// Package normalize centralizes input normalization for fields that are
// stored or compared. Keeping these tiny helpers in one place means every
// ingestion path (forms, JSON, bulk import) agrees on canonical values.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Status lowercases and trims a status value.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Role lowercases and trims a role value.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Department lowercases and trims a department value.
func Department(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ClientID trims a human-facing client id. Case is preserved: ids are
// compared exactly, the way the spreadsheets carry them.
func ClientID(s string) string {
	return strings.TrimSpace(s)
}

// QueryParam trims a free-text query parameter, preserving case.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// ContactNumber strips spaces and dashes from a phone number.
func ContactNumber(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

// ValidContactNumber reports whether s is a 10-digit phone number.
func ValidContactNumber(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
