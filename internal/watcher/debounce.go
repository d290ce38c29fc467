// Package watcher monitors the export file and re-runs the migration
// when it changes.
package watcher

import (
	"sync"
	"time"
)

// Debouncer delays a callback until file activity settles. It watches
// a single target, so rapid successive triggers coalesce into one
// callback after the delay expires.
type Debouncer struct {
	delay    time.Duration
	callback func()
	mu       sync.Mutex
	timer    *time.Timer
}

// NewDebouncer creates a Debouncer that invokes callback once the
// delay has passed with no further triggers.
func NewDebouncer(delay time.Duration, callback func()) *Debouncer {
	return &Debouncer{
		delay:    delay,
		callback: callback,
	}
}

// Trigger schedules the callback after the debounce delay. If a
// callback is already pending, its timer is reset.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		d.timer = nil
		d.mu.Unlock()

		// Invoke the callback outside the lock to avoid deadlocks
		// with Trigger calls made from inside the callback.
		if d.callback != nil {
			d.callback()
		}
	})
}

// Cancel stops any pending callback. A no-op when nothing is pending.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// IsPending returns true if a callback is currently scheduled.
// This is primarily useful for testing.
func (d *Debouncer) IsPending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// GetDelay returns the configured debounce delay.
func (d *Debouncer) GetDelay() time.Duration {
	return d.delay
}
