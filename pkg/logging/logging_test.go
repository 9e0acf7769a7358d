package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			if got := zerolog.GlobalLevel(); got != tt.wantLevel {
				t.Errorf("SetupLogger(%d) level = %v, want %v", tt.verbosity, got, tt.wantLevel)
			}
		})
	}
}

func TestSetupLoggerCreatesLogFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)

	SetupLogger(1)

	logPath := filepath.Join(tempDir, "bashglob", "bashglob.log")
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("expected log file at %s: %v", logPath, err)
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("matcher")

	// The component logger must be usable without further setup
	logger.Debug().Str("pattern", "*.go").Msg("test message")
}
