// Package normalize centralizes string normalization for values that are
// compared or stored canonically (emails, roles, statuses).
package normalize

import "strings"

// Email lowercases and trims an email address for canonical comparison.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a role value so comparisons are case-insensitive.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Status lowercases and trims a status value.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
