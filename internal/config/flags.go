package config

// This file implements CLI flag parsing and help text. Options layer in
// precedence order: built-in defaults, then an optional JSON config
// file, then command-line flags, then the two positional paths.

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses command-line arguments into a Config. args is the
// argument list without the program name; usage and parse errors are
// written to errWriter. The input and output paths are positional and
// required.
func ParseFlags(args []string, errWriter io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("tpmigrate", flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() { printUsage(errWriter) }

	configPath := fs.String("config", "", "Load options from a JSON config file")
	originalDomain := fs.String("original-domain", "", "Domain whose permalinks are rewritten")
	newDomain := fs.String("new-domain", "", "Domain the rewritten permalinks point at")
	mappingReport := fs.String("mapping-report", "", "Path for the basename mapping report")
	urlReport := fs.String("url-report", "", "Path for the URL replacement report")
	verbose := fs.Bool("verbose", false, "Verbose output")
	watch := fs.Bool("watch", false, "Re-run the migration when the input file changes")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := Default()
	if *configPath != "" {
		loaded, err := Load(*configPath)
		if err != nil {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
			return nil, err
		}
		cfg = *loaded
	}

	// Flags override whatever the config file set.
	if *originalDomain != "" {
		cfg.OriginalDomain = *originalDomain
	}
	if *newDomain != "" {
		cfg.NewDomain = *newDomain
	}
	if *mappingReport != "" {
		cfg.MappingReportPath = *mappingReport
	}
	if *urlReport != "" {
		cfg.URLReportPath = *urlReport
	}
	cfg.Verbose = *verbose
	cfg.Watch = *watch

	positional := fs.Args()
	switch len(positional) {
	case 2:
		cfg.InputPath = positional[0]
		cfg.OutputPath = positional[1]
	case 0:
		// Both paths may come from the config file.
	default:
		err := &ConfigError{
			Type:    ValidationError,
			Message: fmt.Sprintf("expected <input-file> <output-file>, got %d positional arguments", len(positional)),
		}
		fmt.Fprintf(errWriter, "Error: %v\n", err)
		printUsage(errWriter)
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(errWriter, "Error: %v\n", err)
		printUsage(errWriter)
		return nil, err
	}

	return &cfg, nil
}

// printUsage writes the help text to w.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tpmigrate [OPTIONS] <input-file> <output-file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrites basenames and permalinks in a TypePad blog export.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintf(w, "  --config <path>           Load options from a JSON config file\n")
	fmt.Fprintf(w, "  --original-domain <host>  Domain whose permalinks are rewritten (default: %s)\n", DefaultOriginalDomain)
	fmt.Fprintf(w, "  --new-domain <host>       Domain the rewritten permalinks point at (default: %s)\n", DefaultNewDomain)
	fmt.Fprintf(w, "  --mapping-report <path>   Basename mapping report (default: %s)\n", DefaultMappingReportPath)
	fmt.Fprintf(w, "  --url-report <path>       URL replacement report (default: %s)\n", DefaultURLReportPath)
	fmt.Fprintln(w, "  --verbose                 Verbose output")
	fmt.Fprintln(w, "  --watch                   Re-run the migration when the input file changes")
}
