package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/hashbridge/hedera-mcp/internal/config"
)

func loggerConfig(format config.LogFormat) config.Config {
	cfg := config.Default()
	cfg.LogFormat = format
	cfg.LogLevel = slog.LevelInfo
	return cfg
}

func TestNewServerLogger_JSONFormat(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger := newServerLogger(&out, loggerConfig(config.LogFormatJSON))
	logger.Info("json log test", slog.String("key", "value"))

	line := out.String()
	if !strings.Contains(line, "\"msg\":\"json log test\"") {
		t.Fatalf("expected json message field, got: %s", line)
	}
	if !strings.Contains(line, "\"key\":\"value\"") {
		t.Fatalf("expected json key field, got: %s", line)
	}
}

func TestNewServerLogger_TextFormat(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger := newServerLogger(&out, loggerConfig(config.LogFormatText))
	logger.Info("text log test", slog.String("key", "value"))

	line := out.String()
	if !strings.Contains(line, "text log test") {
		t.Fatalf("expected text message, got: %s", line)
	}
	if !strings.Contains(line, "key=") {
		t.Fatalf("expected text key field, got: %s", line)
	}
}

func TestNewServerLogger_RespectsLevel(t *testing.T) {
	t.Parallel()

	cfg := loggerConfig(config.LogFormatJSON)
	cfg.LogLevel = slog.LevelWarn

	var out bytes.Buffer
	logger := newServerLogger(&out, cfg)
	logger.Info("suppressed")
	logger.Warn("kept")

	line := out.String()
	if strings.Contains(line, "suppressed") {
		t.Fatalf("info must be suppressed at warn level: %s", line)
	}
	if !strings.Contains(line, "kept") {
		t.Fatalf("warn must be emitted: %s", line)
	}
}
