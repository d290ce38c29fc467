// Package watcher monitors the export file and re-runs the migration
// when it changes.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig contains watcher settings.
type WatchConfig struct {
	DebounceSeconds   int // Delay before reprocessing (default: 2)
	StableThresholdMs int // File size stability threshold in milliseconds (default: 1000)
}

// DefaultWatchConfig returns a WatchConfig with sensible defaults.
func DefaultWatchConfig() *WatchConfig {
	return &WatchConfig{
		DebounceSeconds:   2,
		StableThresholdMs: 1000,
	}
}

// WatchSummary contains stats from the watch session.
type WatchSummary struct {
	Runs     int
	Failures int
	Duration time.Duration
}

// RunHandler re-runs the migration for the watched file. Runs are
// strictly sequential: the watcher never invokes the handler while a
// previous invocation is still in flight.
type RunHandler func(path string) error

// Watcher monitors a single input file for changes.
type Watcher struct {
	config    *WatchConfig
	handler   RunHandler
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	stability *StabilityChecker
	target    string
	done      chan struct{}
	wg        sync.WaitGroup
	startTime time.Time

	runMu    sync.Mutex // serializes handler invocations
	stopped  bool       // guarded by runMu; bars handler runs after Stop
	mu       sync.Mutex
	runs     int
	failures int
}

// New creates a new Watcher with the given configuration.
// If config is nil, default configuration is used.
func New(config *WatchConfig, handler RunHandler) *Watcher {
	if config == nil {
		config = DefaultWatchConfig()
	}
	return &Watcher{
		config:    config,
		handler:   handler,
		stability: NewStabilityChecker(time.Duration(config.StableThresholdMs) * time.Millisecond),
		done:      make(chan struct{}),
	}
}

// Start begins watching the given input file. The parent directory is
// watched rather than the file itself, so editors that replace the file
// via rename are still observed. The watcher runs until Stop is called.
func (w *Watcher) Start(inputPath string) error {
	target, err := filepath.Abs(inputPath)
	if err != nil {
		return err
	}

	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := w.fsWatcher.Add(filepath.Dir(target)); err != nil {
		w.fsWatcher.Close()
		return err
	}

	w.target = target
	w.startTime = time.Now()
	w.done = make(chan struct{})
	w.runMu.Lock()
	w.stopped = false
	w.runMu.Unlock()
	w.debouncer = NewDebouncer(
		time.Duration(w.config.DebounceSeconds)*time.Second,
		w.reprocess,
	)

	w.wg.Add(1)
	go w.processEvents()

	return nil
}

// Stop gracefully shuts down the watcher and returns a session summary.
func (w *Watcher) Stop() *WatchSummary {
	close(w.done)
	w.wg.Wait()

	if w.debouncer != nil {
		w.debouncer.Cancel()
	}
	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}

	// Cancel stops a pending timer, but a timer that already fired may
	// be inside reprocess. Taking runMu joins that run before the
	// summary is read, and the stopped flag turns any timer callback
	// that has not yet entered reprocess into a no-op.
	w.runMu.Lock()
	w.stopped = true
	w.runMu.Unlock()

	w.mu.Lock()
	defer w.mu.Unlock()

	return &WatchSummary{
		Runs:     w.runs,
		Failures: w.failures,
		Duration: time.Since(w.startTime),
	}
}

// processEvents handles file system events from fsnotify.
func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isTargetEvent(event) {
				continue
			}
			w.debouncer.Trigger()
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Keep watching; a transient error does not end the session.
		}
	}
}

// isTargetEvent reports whether the event is a write or create of the
// watched file.
func (w *Watcher) isTargetEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == w.target
}

// reprocess waits for the file to stop growing and then invokes the
// handler. runMu keeps invocations strictly sequential even when a new
// debounce timer fires while a run is still in flight.
func (w *Watcher) reprocess() {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	if w.stopped {
		return
	}

	if err := w.stability.WaitForStable(w.target); err != nil {
		w.mu.Lock()
		w.failures++
		w.mu.Unlock()
		return
	}

	err := w.handler(w.target)

	w.mu.Lock()
	w.runs++
	if err != nil {
		w.failures++
	}
	w.mu.Unlock()
}

// IsRunning returns true if the watcher is currently running.
func (w *Watcher) IsRunning() bool {
	select {
	case <-w.done:
		return false
	default:
		return w.fsWatcher != nil
	}
}
