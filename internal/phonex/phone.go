// Package phonex holds small helpers for the 10-digit mobile numbers the
// backend expects on login and the tel: hand-off used for calling drivers.
package phonex

import "strings"

// Normalize strips every non-digit character from s.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidMobile reports whether s normalizes to exactly ten digits, the
// format the login form accepts.
func IsValidMobile(s string) bool {
	return len(Normalize(s)) == 10
}

// TelURL builds a tel: URL for the dialer. Returns "" when the number is
// empty after normalization.
func TelURL(s string) string {
	n := Normalize(s)
	if n == "" {
		return ""
	}
	return "tel:" + n
}
