// Package watcher monitors the export file and re-runs the migration
// when it changes.
package watcher

import (
	"context"
	"errors"
	"os"
	"time"
)

// ErrFileNotFound is returned when the watched file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrFileUnstable is returned when the file does not stabilize within the timeout.
var ErrFileUnstable = errors.New("file did not stabilize within timeout")

// StabilityChecker waits for a file's size to stabilize before the
// migration reprocesses it, so a run never reads a half-written export.
type StabilityChecker struct {
	threshold time.Duration // Time the file size must remain unchanged
	timeout   time.Duration // Maximum time to wait for stability
	interval  time.Duration // How often to check file size
}

// NewStabilityChecker creates a StabilityChecker with the specified
// threshold. Default timeout is 30 seconds; the check interval is
// threshold/4 with a 50ms floor.
func NewStabilityChecker(threshold time.Duration) *StabilityChecker {
	interval := threshold / 4
	if interval < 50*time.Millisecond {
		interval = 50 * time.Millisecond
	}
	return &StabilityChecker{
		threshold: threshold,
		timeout:   30 * time.Second,
		interval:  interval,
	}
}

// NewStabilityCheckerWithOptions creates a StabilityChecker with custom
// timeout and interval.
func NewStabilityCheckerWithOptions(threshold, timeout, interval time.Duration) *StabilityChecker {
	return &StabilityChecker{
		threshold: threshold,
		timeout:   timeout,
		interval:  interval,
	}
}

// WaitForStable blocks until the file size is stable for the threshold
// duration. It returns an error if the file doesn't exist, cannot be
// accessed, or doesn't stabilize within the timeout.
func (s *StabilityChecker) WaitForStable(path string) error {
	return s.WaitForStableWithContext(context.Background(), path)
}

// WaitForStableWithContext blocks until the file size is stable, with
// context support for cancellation.
func (s *StabilityChecker) WaitForStableWithContext(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	lastSize, err := s.fileSize(path)
	if err != nil {
		return err
	}
	lastChange := time.Now()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return ErrFileUnstable
			}
			return ctx.Err()
		case <-ticker.C:
			size, err := s.fileSize(path)
			if err != nil {
				return err
			}

			if size != lastSize {
				lastSize = size
				lastChange = time.Now()
			} else if time.Since(lastChange) >= s.threshold {
				return nil
			}
		}
	}
}

// fileSize returns the size of the file at path.
func (s *StabilityChecker) fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrFileNotFound
		}
		return 0, err
	}
	return info.Size(), nil
}

// GetThreshold returns the configured stability threshold.
func (s *StabilityChecker) GetThreshold() time.Duration {
	return s.threshold
}
