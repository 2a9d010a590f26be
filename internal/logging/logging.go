// Package logging provides structured logging configuration using slog.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup configures the global slog logger with text output.
// If debug is true, sets level to Debug; otherwise Info.
// Output goes to the provided writer (defaults to os.Stderr if nil).
func Setup(debug bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
