// Package report writes the audit report files for a migration run.
package report

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"tpmigrate/internal/mapping"
	"tpmigrate/internal/rewriter"
)

// WriteMappings writes the basename mapping report: one
// old_basename,new_basename line per changed mapping, in scan order.
// The file is replaced whole on every run.
func WriteMappings(path string, entries []mapping.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create mapping report: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s,%s\n", e.OldBasename, e.NewBasename); err != nil {
			return fmt.Errorf("failed to write mapping report: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush mapping report: %w", err)
	}
	return nil
}

// WriteReplacements writes the URL replacement report: one
// title,old_url,new_url line per rewritten URL, in order of appearance.
// Literal commas inside the title are escaped with a backslash to keep
// the format simple-delimited.
func WriteReplacements(path string, replacements []rewriter.URLReplacement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create URL report: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, r := range replacements {
		if _, err := fmt.Fprintf(w, "%s,%s,%s\n", escapeTitle(r.Title), r.OldURL, r.NewURL); err != nil {
			return fmt.Errorf("failed to write URL report: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush URL report: %w", err)
	}
	return nil
}

// escapeTitle escapes literal commas so titles stay within one field.
func escapeTitle(title string) string {
	return strings.ReplaceAll(title, ",", `\,`)
}
