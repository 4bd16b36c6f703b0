package util

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := NewLogger(level, "")
		if err != nil {
			t.Fatalf("level %q: unexpected error: %v", level, err)
		}
		if logger == nil {
			t.Fatalf("level %q: nil logger", level)
		}
	}
}

func TestNewLoggerUnknownLevelDefaultsToInfo(t *testing.T) {
	logger, err := NewLogger("verbose", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info level must be enabled after fallback")
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level must stay disabled after fallback")
	}
}
