package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates an email address
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// SanitizeEmail lowercases and trims an email address. Emails are matched
// case-insensitively, so every stored or queried address goes through here.
func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
