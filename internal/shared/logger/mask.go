package logger

import "strings"

// MaskHidden replaces a value that must not be shown at all
const MaskHidden = "***"

// Example: john.doe@gmail.com -> j***@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}

	username := []rune(parts[0])
	domain := parts[1]

	if len(username) == 0 {
		return "***@" + domain
	}

	// Keep only first rune of username
	return string(username[:1]) + "***@" + domain
}

// MaskValue keeps the first two runes of an arbitrary input and hides the rest.
// The result is never empty.
// Example: 01712345678 -> 01***
func MaskValue(value string) string {
	runes := []rune(value)
	switch {
	case len(runes) <= 2:
		return MaskHidden
	default:
		return string(runes[:2]) + MaskHidden
	}
}
