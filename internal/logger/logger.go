// Package logger provides leveled, structured diagnostics on stderr.
//
// Logging is a no-op until Init is called, so library packages can log
// freely without forcing a backend on their callers.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var singleton *log.Logger

// Init installs the stderr logger. Debug enables DEBUG level output.
func Init(debug bool) {
	InitWriter(os.Stderr, debug)
}

// InitWriter installs a logger writing to w.
func InitWriter(w io.Writer, debug bool) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	singleton = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "bacon",
	})
}

// Reset removes the installed logger. Useful for testing.
func Reset() {
	singleton = nil
}

// Debug writes a message at DEBUG level.
func Debug(message string, keyvals ...any) {
	if singleton == nil {
		return
	}
	singleton.Debug(message, keyvals...)
}

// Info writes a message at INFO level.
func Info(message string, keyvals ...any) {
	if singleton == nil {
		return
	}
	singleton.Info(message, keyvals...)
}

// Warn writes a message at WARN level.
func Warn(message string, keyvals ...any) {
	if singleton == nil {
		return
	}
	singleton.Warn(message, keyvals...)
}

// Error writes a message at ERROR level.
func Error(message string, keyvals ...any) {
	if singleton == nil {
		return
	}
	singleton.Error(message, keyvals...)
}
