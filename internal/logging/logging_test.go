package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{name: "info level by default", debug: false, wantDebug: false},
		{name: "debug level when enabled", debug: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Setup(tt.debug, &buf)

			slog.Debug("debug line")
			slog.Info("info line")

			out := buf.String()
			if !strings.Contains(out, "info line") {
				t.Errorf("info line missing from output: %q", out)
			}
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug line present = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}

func TestSetupNilWriterDefaultsToStderr(t *testing.T) {
	// Must not panic.
	Setup(false, nil)
	slog.Info("to stderr")
}
