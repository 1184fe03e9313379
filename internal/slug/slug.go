// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug normalizes display names into URL-safe catalog identifiers.
// Category and subcategory routing matches on these normalized forms, so
// callers may pass either "Kitchen Equipment" or "kitchen-equipment".
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, space, or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// whitespaceRun matches one or more whitespace characters.
	whitespaceRun = regexp.MustCompile(`\s+`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Normalize converts a display name to its routable identifier form:
// lowercase, whitespace runs collapsed to a single dash, punctuation
// stripped. Normalizing an already-normalized string returns it unchanged.
// Example: "Commercial  Ovens" → "commercial-ovens"
func Normalize(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = whitespaceRun.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
