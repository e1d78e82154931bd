package http

import (
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	spacePattern      = regexp.MustCompile(`\s+`)
	nonDigitPattern   = regexp.MustCompile(`\D`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	menuItemIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// StripTags removes HTML/script tags from a string.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// SanitizeString cleans a plain-text field: strips tags, collapses runs of
// whitespace, and trims the ends.
func SanitizeString(s string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(StripTags(s), " "))
}

// SanitizePhone extracts the digits from a phone string, caps them at 12,
// and re-formats them into the fixed +91 XXXXX XXXXX pattern, best-effort.
// Whether the result is a valid number is the domain's call.
func SanitizePhone(s string) string {
	digits := nonDigitPattern.ReplaceAllString(s, "")
	if len(digits) > 12 {
		digits = digits[:12]
	}
	if digits == "" {
		return ""
	}

	var b strings.Builder
	b.WriteByte('+')
	for i := 0; i < len(digits); i++ {
		if i == 2 || i == 7 {
			b.WriteByte(' ')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// IsValidEmail reports whether the string looks like an email address.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// isValidMenuItemID rejects ids with characters outside the simple
// alphanumeric id alphabet the catalog uses.
func isValidMenuItemID(id string) bool {
	return menuItemIDPattern.MatchString(id)
}
