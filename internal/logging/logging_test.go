package logging

import (
	"testing"

	"curvelab/internal/config"

	"go.uber.org/zap/zapcore"
)

func TestNewRespectsLevel(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "warn", Format: "json"}, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer logger.Sync()

	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestNewVerboseForcesDebug(t *testing.T) {
	logger, err := New(config.LoggingConfig{Level: "error", Format: "console"}, true)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer logger.Sync()

	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("verbose logger should enable debug")
	}
}

func TestNewRejectsBadSettings(t *testing.T) {
	if _, err := New(config.LoggingConfig{Level: "loud", Format: "console"}, false); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := New(config.LoggingConfig{Level: "info", Format: "xml"}, false); err == nil {
		t.Error("expected error for unknown format")
	}
}
