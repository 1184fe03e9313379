package handlers

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation limits for contact form fields.
const (
	maxNameLen    = 200
	maxEmailLen   = 320
	maxMessageLen = 10_000
)

// emailPattern accepts the usual local@domain.tld shape. Anything fancier
// gets verified by the delivery provider anyway.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateSubmission checks contact form input, collecting every failure
// rather than stopping at the first so the visitor can fix them all at once.
func validateSubmission(name, email, message string) []string {
	var errs []string

	if strings.TrimSpace(name) == "" {
		errs = append(errs, "Name is required.")
	} else if utf8.RuneCountInString(name) > maxNameLen {
		errs = append(errs, "Name is too long (max 200 characters).")
	}

	if !emailPattern.MatchString(email) {
		errs = append(errs, "Please enter a valid email address.")
	} else if utf8.RuneCountInString(email) > maxEmailLen {
		errs = append(errs, "Email address is too long.")
	}

	if strings.TrimSpace(message) == "" {
		errs = append(errs, "Message is required.")
	} else if utf8.RuneCountInString(message) > maxMessageLen {
		errs = append(errs, "Message is too long (max 10,000 characters).")
	}

	return errs
}
