package logging

import (
	"fmt"
	"os"
	"sync"
)

// ConsoleLogger implements pgsplit.Logger on stderr. Stdout stays reserved
// for machine-readable output (version lines, diffs), so all diagnostics go
// to stderr regardless of level.
//
// A mutex serializes writes; concurrent pipeline stages may log while a
// subprocess drain goroutine does too, and interleaved half-lines are worse
// than a little contention on a diagnostics path.
type ConsoleLogger struct {
	mu      sync.Mutex
	verbose bool
}

// NewConsoleLogger creates a ConsoleLogger. When verbose is false, Verbose
// calls are discarded without formatting.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return &ConsoleLogger{verbose: verbose}
}

// emit writes one prefixed line under the lock.
func (l *ConsoleLogger) emit(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, prefix+format+"\n", args...)
	} else {
		fmt.Fprint(os.Stderr, prefix+format+"\n")
	}
}

// Verbose logs diagnostic detail, only when verbose mode is on.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.emit("[VERBOSE] ", format, args)
}

// Info logs progress messages. No prefix: these are the tool's normal
// user-facing output.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.emit("", format, args)
}

// Error logs failures.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.emit("[ERROR] ", format, args)
}
