package utils

import "strings"

// Slugify lowers a slug candidate and normalizes everything outside
// [a-z0-9] to single dashes.
func Slugify(s string) string {
	var b strings.Builder
	prevDash := true // swallow leading dashes
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
