// Package main provides the CLI entry point for tpmigrate.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"tpmigrate/internal/config"
	"tpmigrate/internal/migrate"
	"tpmigrate/internal/output"
	"tpmigrate/internal/watcher"
)

func main() {
	cfg, err := config.ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(1)
	}

	outCfg := output.DefaultConfig()
	outCfg.Verbose = cfg.Verbose
	out := output.New(outCfg)

	runOnce(cfg, out)

	if cfg.Watch {
		runWatch(cfg, out)
	}
}

// runOnce performs a single migration run and prints its summary.
// Recognized faults (missing input, I/O errors) are reported as
// warnings; the process continues with empty results.
func runOnce(cfg *config.Config, out *output.Output) {
	summary := migrate.Run(cfg)

	if summary.HasFault() {
		out.Error("Warning: %v", summary.Fault)
		return
	}

	out.Info("%s", summary.FormatSummary(cfg.InputPath, cfg.OutputPath))
	out.Verbose("Run took %s", summary.Duration)
}

// runWatch keeps the process alive and re-runs the migration whenever
// the input file changes, until interrupted.
func runWatch(cfg *config.Config, out *output.Output) {
	w := watcher.New(nil, func(path string) error {
		out.Status("Reprocessing %s...", path)
		summary := migrate.Run(cfg)
		if summary.HasFault() {
			out.Error("Warning: %v", summary.Fault)
			return summary.Fault
		}
		out.Info("Created %d basename mappings, made %d URL replacements",
			len(summary.Mappings), len(summary.Replacements))
		return nil
	})

	if err := w.Start(cfg.InputPath); err != nil {
		out.Error("Error: failed to start watcher: %v", err)
		os.Exit(1)
	}

	out.Info("Watching %s for changes (Ctrl-C to stop)", cfg.InputPath)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	summary := w.Stop()
	out.Info("Watch session: %d runs, %d failures in %s",
		summary.Runs, summary.Failures, summary.Duration.Round(time.Second))
}
