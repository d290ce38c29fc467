// Package scanner classifies export lines and pairs post titles with
// the basename lines that follow them.
package scanner

import "strings"

// Line prefixes that are structurally significant in a TypePad export.
// Every other line is opaque body text.
const (
	TitlePrefix     = "TITLE: "
	BasenamePrefix  = "BASENAME: "
	UniqueURLPrefix = "UNIQUE URL: "
)

// LineKind represents the structural classification of one export line.
type LineKind string

const (
	LineTitle     LineKind = "TITLE"
	LineBasename  LineKind = "BASENAME"
	LineUniqueURL LineKind = "UNIQUE_URL"
	LineBody      LineKind = "BODY"
)

// Classification represents the result of classifying a single line.
// Value holds the text after the prefix, trimmed of surrounding
// whitespace; it is empty for body lines.
type Classification struct {
	Kind  LineKind
	Value string
}

// Classify determines the structural kind of a single export line.
// Classification is by fixed prefix only; no further format validation
// is performed.
func Classify(line string) *Classification {
	switch {
	case strings.HasPrefix(line, TitlePrefix):
		return &Classification{
			Kind:  LineTitle,
			Value: strings.TrimSpace(line[len(TitlePrefix):]),
		}
	case strings.HasPrefix(line, BasenamePrefix):
		return &Classification{
			Kind:  LineBasename,
			Value: strings.TrimSpace(line[len(BasenamePrefix):]),
		}
	case strings.HasPrefix(line, UniqueURLPrefix):
		return &Classification{
			Kind:  LineUniqueURL,
			Value: strings.TrimSpace(line[len(UniqueURLPrefix):]),
		}
	default:
		return &Classification{Kind: LineBody}
	}
}

// Pair couples a post title with the old basename that follows it in
// the export.
type Pair struct {
	Title       string
	OldBasename string
}

// pairState tracks whether an unconsumed title is waiting for its
// basename line.
type pairState int

const (
	stateNoPending pairState = iota
	statePending
)

// ScanPairs walks the export lines and returns the ordered sequence of
// (title, old basename) pairs.
//
// Pairing is a two-state machine: a TITLE line with non-empty text
// becomes the pending title; the next BASENAME line consumes it and
// emits a pair. A BASENAME line with no pending title emits nothing,
// so a second BASENAME without an intervening TITLE is never paired
// with a stale title. All other lines leave the state untouched.
func ScanPairs(lines []string) []Pair {
	pairs := make([]Pair, 0)

	state := stateNoPending
	pending := ""

	for _, line := range lines {
		c := Classify(line)
		switch c.Kind {
		case LineTitle:
			if c.Value == "" {
				state = stateNoPending
				pending = ""
				continue
			}
			state = statePending
			pending = c.Value
		case LineBasename:
			if state != statePending {
				continue
			}
			pairs = append(pairs, Pair{Title: pending, OldBasename: c.Value})
			state = stateNoPending
			pending = ""
		}
	}

	return pairs
}
