package slug

import (
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation removed", "Hello, World!", "hello-world"},
		{"hyphens preserved", "  Already-Hyphenated  ", "already-hyphenated"},
		{"empty title", "", ""},
		{"punctuation only", "?!...", ""},
		{"apostrophe removed not split", "Don't Stop", "dont-stop"},
		{"internal whitespace run collapsed", "One\t\t Two   Three", "one-two-three"},
		{"mixed case", "CamelCase Title", "camelcase-title"},
		{"digits kept", "Top 10 Posts of 2005", "top-10-posts-of-2005"},
		{"ampersand and slash removed", "Cats & Dogs / Birds", "cats-dogs-birds"},
		{"leading and trailing whitespace", "   trimmed   ", "trimmed"},
		{"capital without lowercase mapping kept", "\U0001D514 Fraktur", "\U0001D514-fraktur"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Derive(tt.title); got != tt.want {
				t.Errorf("Derive(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestDeriveDeterminism(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("Derive is pure: two calls with the same title agree", prop.ForAll(
		func(title string) bool {
			return Derive(title) == Derive(title)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestDeriveFixedPoint(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("A derived slug derives to itself", prop.ForAll(
		func(title string) bool {
			derived := Derive(title)
			return Derive(derived) == derived
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestDeriveOutputCharset(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("Slugs contain no whitespace, non-hyphen ASCII punctuation, or rune with a distinct lower case", prop.ForAll(
		func(title string) bool {
			derived := Derive(title)
			for _, r := range derived {
				if r != '-' && isASCIIPunct(r) {
					return false
				}
				// Uppercase letters without a lowercase mapping, such as
				// mathematical capitals, survive ToLower and are legal in
				// a slug. Only runes that could still lower are defects.
				if unicode.IsSpace(r) || r != unicode.ToLower(r) {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
