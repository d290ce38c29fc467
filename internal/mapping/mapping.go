// Package mapping builds the basename lookup tables for a migration run.
package mapping

import "tpmigrate/internal/scanner"

// DeriveFunc derives a slug from a post title.
type DeriveFunc func(title string) string

// Entry records one changed basename mapping for the mapping report.
type Entry struct {
	Title       string
	OldBasename string
	NewBasename string
}

// Table holds the old-to-new basename mapping and the titles that
// produced it. It is built once from the scanned pairs and is read-only
// during rewriting; callers pass it explicitly between the scan and
// rewrite phases.
type Table struct {
	newBasename map[string]string
	titleFor    map[string]string
	entries     []Entry
}

// Build constructs a Table from the scanned pairs using derive.
//
// Duplicate old basenames silently overwrite earlier table entries
// (last write wins); this mirrors the legacy tool and is preserved
// rather than fixed. Pairs whose title derives to an empty slug create
// no entry. Entries records every pair whose basename actually changed,
// in scan order, including pairs later overwritten in the table.
func Build(pairs []scanner.Pair, derive DeriveFunc) *Table {
	t := &Table{
		newBasename: make(map[string]string, len(pairs)),
		titleFor:    make(map[string]string, len(pairs)),
		entries:     make([]Entry, 0, len(pairs)),
	}

	for _, p := range pairs {
		slug := derive(p.Title)
		if slug == "" {
			continue
		}

		t.newBasename[p.OldBasename] = slug
		t.titleFor[p.OldBasename] = p.Title

		if p.OldBasename != slug {
			t.entries = append(t.entries, Entry{
				Title:       p.Title,
				OldBasename: p.OldBasename,
				NewBasename: slug,
			})
		}
	}

	return t
}

// NewBasename returns the derived basename for old, if one exists.
func (t *Table) NewBasename(old string) (string, bool) {
	slug, ok := t.newBasename[old]
	return slug, ok
}

// TitleFor returns the title that produced the mapping for old, if one
// exists. It is used only for reporting.
func (t *Table) TitleFor(old string) (string, bool) {
	title, ok := t.titleFor[old]
	return title, ok
}

// Entries returns the changed mappings in scan order.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Len returns the number of old basenames in the table.
func (t *Table) Len() int {
	return len(t.newBasename)
}
