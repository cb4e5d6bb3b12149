// Package normalize provides small input-normalization helpers used by
// handlers before validation and persistence.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// QueryParam trims a query or form parameter.
func QueryParam(s string) string {
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

// Lang normalizes a language code to "en" or "de"; anything else
// returns the empty string.
func Lang(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en":
		return "en"
	case "de":
		return "de"
	}
	return ""
}
