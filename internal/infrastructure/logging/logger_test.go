package logging

import (
	"testing"

	"github.com/eslsoft/vocdrill/internal/infrastructure/config"
	"github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(&config.Config{Log: config.LogConfig{Level: "debug", Format: "text"}})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %s", logger.GetLevel())
	}
	if _, ok := logger.Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("expected text formatter, got %T", logger.Formatter)
	}

	if _, err := NewLogger(&config.Config{Log: config.LogConfig{Level: "loud"}}); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}
