/*
Package ioutil holds the small error-reporting helpers shared by the
cmd package, in the style of gotree's own io helpers: a command either
logs a non-fatal problem and keeps going, or reports a fatal one and
exits with a non-zero status.
*/
package ioutil

import (
	"fmt"
	"log"
	"os"
)

// Logger wraps the standard library's log.Logger with gotree's
// key-value line style (e.g. "input file: t.nw") instead of free-form
// messages, so CLI runs leave a consistent trail on stderr.
type Logger struct {
	*log.Logger
}

// NewLogger builds a Logger writing to stderr with no timestamp
// prefix (the CLI is a one-shot batch tool; wall-clock timing isn't
// informative output).
func NewLogger() *Logger {
	return &Logger{Logger: log.New(os.Stderr, "", 0)}
}

// KV logs a single "key: value" line.
func (l *Logger) KV(key string, value interface{}) {
	l.Printf("%s: %v", key, value)
}

// Start logs the beginning of a command invocation, naming the input
// file it's about to read.
func (l *Logger) Start(file string) {
	l.KV("input file", file)
}

// End logs the completion of a command invocation.
func (l *Logger) End() {
	l.Println("done")
}

// LogError writes err to stderr without terminating the process. Used
// where one bad record shouldn't abort a batch operation.
func LogError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// ExitWithMessage writes err to stderr and terminates the process with
// status 1. Used for malformed input, I/O failures and anything else
// that makes continuing meaningless.
func ExitWithMessage(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
