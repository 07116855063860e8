// Package logging provides structured logging using the standard library's
// log/slog package, with consistent configuration across the binary.
package logging

import (
	"log/slog"
	"os"
)

// NewLogger creates a structured logger with JSON output. The level is
// controlled via the LOG_LEVEL environment variable ("debug" enables debug
// logging; anything else means info).
func NewLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

// NewTextLogger creates a logger with human-readable text output for local
// development and debugging. Level handling matches NewLogger.
func NewTextLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}
