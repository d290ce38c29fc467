// Package migrate coordinates the export migration workflow for tpmigrate.
package migrate

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"tpmigrate/internal/config"
	"tpmigrate/internal/mapping"
	"tpmigrate/internal/report"
	"tpmigrate/internal/rewriter"
	"tpmigrate/internal/scanner"
	"tpmigrate/internal/slug"
)

// MigrateErrorType represents the type of migration fault.
type MigrateErrorType string

const (
	InputNotFound MigrateErrorType = "INPUT_NOT_FOUND"
	UnexpectedIO  MigrateErrorType = "UNEXPECTED_IO"
)

// MigrateError represents a fault encountered during a migration run.
type MigrateError struct {
	Type    MigrateErrorType
	Path    string
	Message string
}

func (e *MigrateError) Error() string {
	switch e.Type {
	case InputNotFound:
		return fmt.Sprintf("input file not found: %s", e.Path)
	case UnexpectedIO:
		return fmt.Sprintf("I/O error: %s", e.Message)
	default:
		return fmt.Sprintf("migration error: %s", e.Message)
	}
}

// Summary represents the overall results of a migration run.
// Fault is set when the run produced empty results instead of failing
// the process (missing input, or an I/O fault that aborted the run).
type Summary struct {
	Mappings       []mapping.Entry
	Replacements   []rewriter.URLReplacement
	OriginalDomain string
	NewDomain      string
	Duration       time.Duration
	Fault          *MigrateError
}

// HasFault returns true if the run was aborted by a recognized fault.
func (s *Summary) HasFault() bool {
	return s.Fault != nil
}

// Run executes the migration workflow: it buffers the whole input file,
// scans title/basename pairs, builds the basename table, rewrites every
// line, and writes the output file plus the two report files.
//
// A missing or unreadable input file and any other I/O fault are both
// caught here: the returned Summary carries empty result collections
// and the fault, no output file is written, and no error propagates.
// The mapping table is fully built before any substitution occurs, so a
// URL appearing before its defining BASENAME line still resolves.
func Run(cfg *config.Config) *Summary {
	start := time.Now()

	summary := &Summary{
		Mappings:       make([]mapping.Entry, 0),
		Replacements:   make([]rewriter.URLReplacement, 0),
		OriginalDomain: cfg.OriginalDomain,
		NewDomain:      cfg.NewDomain,
	}

	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			summary.Fault = &MigrateError{Type: InputNotFound, Path: cfg.InputPath}
		} else {
			summary.Fault = &MigrateError{Type: UnexpectedIO, Message: err.Error()}
		}
		summary.Duration = time.Since(start)
		return summary
	}

	// Both conceptual passes run over the buffered lines; splitting on
	// newlines and rejoining reproduces the input byte-for-byte where
	// no substitution applies.
	lines := strings.Split(string(data), "\n")

	pairs := scanner.ScanPairs(lines)
	table := mapping.Build(pairs, slug.Derive)

	rw := rewriter.New(table, cfg.OriginalDomain, cfg.NewDomain)
	outLines, replacements := rw.Rewrite(lines)

	if err := os.WriteFile(cfg.OutputPath, []byte(strings.Join(outLines, "\n")), 0644); err != nil {
		summary.Fault = &MigrateError{Type: UnexpectedIO, Message: err.Error()}
		summary.Duration = time.Since(start)
		return summary
	}

	if err := report.WriteMappings(cfg.MappingReportPath, table.Entries()); err != nil {
		summary.Fault = &MigrateError{Type: UnexpectedIO, Message: err.Error()}
		summary.Duration = time.Since(start)
		return summary
	}
	if err := report.WriteReplacements(cfg.URLReportPath, replacements); err != nil {
		summary.Fault = &MigrateError{Type: UnexpectedIO, Message: err.Error()}
		summary.Duration = time.Since(start)
		return summary
	}

	summary.Mappings = table.Entries()
	summary.Replacements = replacements
	summary.Duration = time.Since(start)
	return summary
}
