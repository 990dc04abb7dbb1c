package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
		wantErr  bool
	}{
		{"DEBUG", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
		{"WARN", zapcore.WarnLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{"ERROR", zapcore.ErrorLevel, false},
		{"FATAL", zapcore.FatalLevel, false},
		{"TRACE", zapcore.InfoLevel, true},
	}

	for _, test := range tests {
		level, err := ParseLevel(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
		}
		if level != test.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", test.input, level, test.expected)
		}
	}
}

func TestNew(t *testing.T) {
	for _, level := range []string{"DEBUG", "INFO", "ERROR"} {
		logger, err := New(level)
		if err != nil {
			t.Fatalf("New(%q) returned error: %v", level, err)
		}
		expected, _ := ParseLevel(level)
		if !logger.Core().Enabled(expected) {
			t.Errorf("New(%q) logger should enable its own level", level)
		}
		if expected > zapcore.DebugLevel && logger.Core().Enabled(expected-1) {
			t.Errorf("New(%q) logger should not enable the level below", level)
		}
	}

	if _, err := New("NOPE"); err == nil {
		t.Error("Expected error for unknown level")
	}
}
