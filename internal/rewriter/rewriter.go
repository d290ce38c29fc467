// Package rewriter rewrites export lines using a built basename table.
package rewriter

import (
	"fmt"
	"regexp"
	"strings"

	"tpmigrate/internal/mapping"
	"tpmigrate/internal/scanner"
)

// URLReplacement records one rewritten permalink for the URL report.
// Title is the post title the old slug belongs to, or empty when the
// slug has no recorded title.
type URLReplacement struct {
	Title  string
	OldURL string
	NewURL string
}

// Rewriter applies a basename table to export lines.
type Rewriter struct {
	table      *mapping.Table
	urlPattern *regexp.Regexp
	newDomain  string
}

// New creates a Rewriter that recognizes permalinks of the form
// scheme://<originalDomain>/blog/YYYY/MM/<slug>.html, where the slug is
// any run of non-dot characters. Rewritten URLs use the secure scheme
// under newDomain with no /blog/ segment and no .html suffix.
func New(table *mapping.Table, originalDomain, newDomain string) *Rewriter {
	pattern := regexp.MustCompile(
		`https?://` + regexp.QuoteMeta(originalDomain) + `/blog/(\d{4})/(\d{2})/([^.]+)\.html`)
	return &Rewriter{
		table:      table,
		urlPattern: pattern,
		newDomain:  newDomain,
	}
}

// Rewrite processes every line and returns the rewritten lines plus the
// URL replacements made, in order of appearance.
func (r *Rewriter) Rewrite(lines []string) ([]string, []URLReplacement) {
	out := make([]string, len(lines))
	replacements := make([]URLReplacement, 0)

	for i, line := range lines {
		rewritten, reps := r.RewriteLine(line)
		out[i] = rewritten
		replacements = append(replacements, reps...)
	}

	return out, replacements
}

// RewriteLine rewrites a single line.
//
// TITLE and UNIQUE URL lines are copied verbatim; UNIQUE URL lines are
// exempt from URL rewriting even when they contain a matching pattern.
// A BASENAME line whose value is in the table is replaced wholesale
// with the derived basename. Any other line has each matching permalink
// evaluated independently against the table: mapped slugs are rewritten
// by literal substitution of the matched text (identical URL text
// occurring more than once in the line is replaced everywhere by that
// one substitution, with one replacement recorded per occurrence
// matched), and unmapped slugs are left completely untouched.
func (r *Rewriter) RewriteLine(line string) (string, []URLReplacement) {
	c := scanner.Classify(line)

	switch c.Kind {
	case scanner.LineTitle, scanner.LineUniqueURL:
		return line, nil
	case scanner.LineBasename:
		if slug, ok := r.table.NewBasename(c.Value); ok {
			return scanner.BasenamePrefix + slug, nil
		}
		return line, nil
	}

	matches := r.urlPattern.FindAllStringSubmatch(line, -1)
	if matches == nil {
		return line, nil
	}

	modified := line
	replacements := make([]URLReplacement, 0, len(matches))

	for _, m := range matches {
		oldURL, year, month, oldSlug := m[0], m[1], m[2], m[3]

		newSlug, ok := r.table.NewBasename(oldSlug)
		if !ok {
			continue
		}

		newURL := fmt.Sprintf("https://%s/%s/%s/%s", r.newDomain, year, month, newSlug)

		title, _ := r.table.TitleFor(oldSlug)
		replacements = append(replacements, URLReplacement{
			Title:  title,
			OldURL: oldURL,
			NewURL: newURL,
		})

		modified = strings.ReplaceAll(modified, oldURL, newURL)
	}

	return modified, replacements
}
