// Package output handles console output formatting for tpmigrate,
// including verbose mode and TTY detection.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Config holds output configuration.
type Config struct {
	Verbose   bool      // Enable verbose output
	Writer    io.Writer // Output destination (default: os.Stdout)
	ErrWriter io.Writer // Error output destination (default: os.Stderr)
	IsTTY     bool      // Whether output is a terminal
}

// Output handles formatted console output. A transient status line
// (used between watch-mode runs) is cleared before any regular message.
type Output struct {
	config       Config
	mu           sync.Mutex
	statusActive bool
}

// New creates a new Output instance with the given configuration.
func New(config Config) *Output {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	if config.ErrWriter == nil {
		config.ErrWriter = os.Stderr
	}
	return &Output{config: config}
}

// DefaultConfig returns a Config with sensible defaults and TTY detection.
func DefaultConfig() Config {
	return Config{
		Verbose:   false,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		IsTTY:     term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Verbose prints a message only when verbose mode is enabled.
func (o *Output) Verbose(format string, args ...interface{}) {
	if !o.config.Verbose {
		return
	}
	o.clearStatus()
	o.write(o.config.Writer, format, args...)
}

// Info prints an informational message (always shown).
func (o *Output) Info(format string, args ...interface{}) {
	o.clearStatus()
	o.write(o.config.Writer, format, args...)
}

// Error prints an error message to stderr.
func (o *Output) Error(format string, args ...interface{}) {
	o.clearStatus()
	o.write(o.config.ErrWriter, format, args...)
}

// Status prints a transient status line updated in place when attached
// to a terminal, or a plain line otherwise.
func (o *Output) Status(format string, args ...interface{}) {
	if !o.config.IsTTY {
		o.write(o.config.Writer, format, args...)
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprint(o.config.Writer, "\r"+strings.Repeat(" ", 60)+"\r"+msg)
	o.statusActive = true
}

// clearStatus wipes the transient status line if one is showing.
func (o *Output) clearStatus() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.statusActive && o.config.IsTTY {
		fmt.Fprint(o.config.Writer, "\r"+strings.Repeat(" ", 60)+"\r")
		o.statusActive = false
	}
}

// IsVerbose returns whether verbose mode is enabled.
func (o *Output) IsVerbose() bool {
	return o.config.Verbose
}

// IsTTY returns whether the output is a terminal.
func (o *Output) IsTTY() bool {
	return o.config.IsTTY
}

func (o *Output) write(w io.Writer, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprint(w, msg)
}
