package logging

import (
	"io"
	"log/slog"
)

// Verbose reports whether debug logging is enabled.
var Verbose bool

var logger = slog.Default()

// Setup configures the structured logger. Debug records are emitted only
// when verbose is true; jsonOutput switches the handler to JSON lines.
func Setup(verbose, jsonOutput bool, w io.Writer) {
	Verbose = verbose

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger = slog.New(handler)
}

// Debug logs a debug message with structured key-value pairs.
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Info logs an info message with structured key-value pairs.
func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

// Warn logs a warning message with structured key-value pairs.
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

// Error logs an error message with structured key-value pairs.
func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}
