// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

// Package slug generates ASCII URL slugs from poster titles.
//
// # Usage
//
// Slugs are the human-readable identifiers for posters and sessions
// (e.g., "community-based-stroke-self-management"). This package handles
// normalization, accent removal, and character sanitization. Collision
// suffixing ("-1", "-2", ...) is the caller's responsibility.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonWord matches characters that are not word characters, whitespace, or hyphens.
	nonWord = regexp.MustCompile(`[^\w\s-]`)
	// whitespaceRun matches one or more consecutive whitespace characters.
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// From converts a poster title into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD and removes combining marks (é → e).
// 2. Converts to lowercase.
// 3. Strips characters that are not word characters, whitespace, or hyphens.
// 4. Replaces whitespace runs with single hyphens.
func From(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Strip punctuation, keep word chars, spaces, and hyphens
	result = nonWord.ReplaceAllString(result, "")

	// 4. Whitespace runs become hyphens
	result = whitespaceRun.ReplaceAllString(result, "-")

	return result
}

// WithSuffix returns the slug with a numeric collision suffix appended.
//
//	WithSuffix("example-study", 1) // "example-study-1"
func WithSuffix(base string, n int) string {
	return fmt.Sprintf("%s-%d", base, n)
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
