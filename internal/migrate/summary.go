// Package migrate provides the summary formatter for migration runs.
package migrate

import (
	"fmt"
	"strings"
)

// maxExamples is how many mapping and replacement examples the console
// summary shows.
const maxExamples = 5

// FormatSummary returns the console summary text for a run. The text is
// presentation-only: counts, domains, and the first few examples of
// mappings and replacements.
func (s *Summary) FormatSummary(inputPath, outputPath string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Processed %s and wrote results to %s\n", inputPath, outputPath)
	fmt.Fprintf(&b, "Created %d basename mappings\n", len(s.Mappings))
	fmt.Fprintf(&b, "Made %d URL replacements\n", len(s.Replacements))
	fmt.Fprintf(&b, "Replaced URLs from %q to %q\n", s.OriginalDomain, s.NewDomain)

	if len(s.Mappings) > 0 {
		b.WriteString("\nBasename mappings:\n")
		for i, m := range s.Mappings {
			if i == maxExamples {
				fmt.Fprintf(&b, "... and %d more mappings\n", len(s.Mappings)-maxExamples)
				break
			}
			fmt.Fprintf(&b, "%3d. %s: %q -> %q\n", i+1, m.Title, m.OldBasename, m.NewBasename)
		}
	}

	if len(s.Replacements) > 0 {
		b.WriteString("\nURL replacements:\n")
		for i, r := range s.Replacements {
			if i == maxExamples {
				fmt.Fprintf(&b, "... and %d more replacements\n", len(s.Replacements)-maxExamples)
				break
			}
			title := r.Title
			if title == "" {
				title = "(no title available)"
			}
			fmt.Fprintf(&b, "%3d. %s\n     %s -> %s\n", i+1, title, r.OldURL, r.NewURL)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
