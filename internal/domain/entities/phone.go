package entities

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+?\d{10,15}$`)

// NormalizePhone strips surrounding whitespace and inner spaces or dashes.
func NormalizePhone(raw string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(raw))
}

// ValidPhone reports whether phone is an optional '+' followed by 10-15 digits.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
