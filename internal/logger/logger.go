// Package logger provides verbose logging for reliefdir.
// Nothing is printed unless a level is enabled, either with the --verbose
// flag (everything) or with SetLevel. Output goes to stderr so it never
// mixes with command output or the TUI frame.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level is the minimum severity that gets printed.
type Level int

// Levels in increasing severity. LevelOff silences the logger.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelOff
)

var (
	mu     sync.RWMutex
	level           = LevelOff
	output io.Writer = os.Stderr
)

// SetVerbose enables every level, or silences the logger.
func SetVerbose(v bool) {
	if v {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelOff)
}

// IsVerbose returns true if debug output is enabled.
func IsVerbose() bool {
	return Enabled(LevelDebug)
}

// SetLevel sets the minimum level that is printed.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// Enabled reports whether messages at l are printed.
func Enabled(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l < LevelOff && l >= level
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Section prints a section header when debug output is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if level == LevelDebug {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Debug prints a debug message.
func Debug(format string, args ...any) {
	logf(LevelDebug, "DEBUG", format, args...)
}

// Info prints an informational message.
func Info(format string, args ...any) {
	logf(LevelInfo, "INFO", format, args...)
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	logf(LevelWarn, "WARN", format, args...)
}

// Timed logs how long an operation took once the returned func is called.
//
//	defer logger.Timed("load dataset")()
func Timed(name string) func() {
	start := time.Now()
	return func() {
		Debug("%s took %s", name, time.Since(start).Round(time.Microsecond))
	}
}

func logf(l Level, tag, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if l < level || level == LevelOff {
		return
	}
	fmt.Fprintf(output, "["+tag+"] "+format+"\n", args...)
}
