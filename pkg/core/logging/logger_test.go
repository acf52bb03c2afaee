package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/strvec/foundation/core/log"
	"github.com/msto63/strvec/pkg/core/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"fatal", mdwlog.LevelFatal},
		{"bogus", mdwlog.LevelWarn},
		{"", mdwlog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewCorrelationID(t *testing.T) {
	a, b := NewCorrelationID(), NewCorrelationID()
	if a == b {
		t.Error("correlation IDs should differ")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("NewCorrelationID() = %q is not a UUID: %v", a, err)
	}
}

func TestNewLogger(t *testing.T) {
	var buf, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:              "strvec",
		Level:             "info",
		Format:            "json",
		Output:            &buf,
		AdditionalOutputs: []io.Writer{&extra},
		CorrelationID:     "run-1",
	})

	logger.Debug("filtered")
	logger.Info("dup finished", mdwlog.Fields{"elements": 3})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output %q is not a single JSON entry: %v", buf.String(), err)
	}
	if entry["logger"] != "strvec" || entry["correlation_id"] != "run-1" || entry["message"] != "dup finished" {
		t.Errorf("entry = %v", entry)
	}
	if extra.String() != buf.String() {
		t.Error("additional output did not receive the entry")
	}
}

func TestNewLoggerGeneratesCorrelationID(t *testing.T) {
	logger := NewLogger(LoggerConfig{Output: &bytes.Buffer{}})
	if _, err := uuid.Parse(logger.CorrelationID()); err != nil {
		t.Errorf("CorrelationID() = %q is not a UUID", logger.CorrelationID())
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.General.LogLevel = "debug"
	cfg.General.LogFormat = "logfmt"

	var buf bytes.Buffer
	logger := FromConfig(cfg, &buf)
	if logger.GetLevel() != mdwlog.LevelDebug {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}
	logger.Debug("hello")
	if !strings.Contains(buf.String(), `message="hello"`) || !strings.Contains(buf.String(), "logger=strvec") {
		t.Errorf("output = %q", buf.String())
	}
}
