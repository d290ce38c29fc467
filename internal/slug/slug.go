// Package slug derives canonical URL slugs from post titles for tpmigrate.
package slug

import (
	"strings"
	"unicode"
)

// Derive converts a post title into its canonical URL slug.
// The title is lowercased, every ASCII punctuation character except the
// hyphen is removed, surrounding whitespace is stripped, and each
// remaining run of whitespace is collapsed into a single hyphen.
// An empty title derives to an empty slug.
//
// Distinct titles may derive to the same slug; collisions are not
// detected here.
func Derive(title string) string {
	if title == "" {
		return ""
	}

	lowered := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if r != '-' && isASCIIPunct(r) {
			continue
		}
		b.WriteRune(r)
	}

	// FieldsFunc both trims surrounding whitespace and collapses each
	// internal run into a single field boundary.
	return strings.Join(strings.FieldsFunc(b.String(), unicode.IsSpace), "-")
}

// isASCIIPunct reports whether r is an ASCII punctuation character.
// The four ranges cover !-/ :-@ [-` and {-~.
func isASCIIPunct(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	}
	return false
}
