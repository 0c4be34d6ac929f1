package logging

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

// Mock classified error for testing
type mockClassifiedError struct {
	message   string
	code      string
	context   map[string]string
	timestamp time.Time
}

func (m *mockClassifiedError) Error() string {
	return m.message
}

func (m *mockClassifiedError) GetCode() string {
	return m.code
}

func (m *mockClassifiedError) GetContext() map[string]string {
	return m.context
}

func (m *mockClassifiedError) GetTimestamp() time.Time {
	return m.timestamp
}

func TestNewDefaultLogger(t *testing.T) {
	logger := NewDefaultLogger()
	if logger == nil {
		t.Fatal("NewDefaultLogger() returned nil")
	}

	if _, ok := logger.(*ZapLogger); !ok {
		t.Errorf("NewDefaultLogger() returned %T, expected *ZapLogger", logger)
	}
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	logger := NewLogger("chatty")
	zl, ok := logger.(*ZapLogger)
	if !ok {
		t.Fatalf("NewLogger() returned %T, expected *ZapLogger", logger)
	}
	if zl.base.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected DEBUG to be disabled for unknown level")
	}
	if !zl.base.Core().Enabled(zapcore.InfoLevel) {
		t.Error("expected INFO to be enabled for unknown level")
	}
}

func TestZapLogger_LogLevels(t *testing.T) {
	logger, logs := NewObservedLogger()

	tests := []struct {
		name           string
		logFunc        func(string, ...interface{})
		message        string
		fields         []interface{}
		level          zapcore.Level
		expectedFields map[string]interface{}
	}{
		{
			name:           "Debug",
			logFunc:        logger.Debug,
			message:        "debug message",
			fields:         []interface{}{"key", "value"},
			level:          zapcore.DebugLevel,
			expectedFields: map[string]interface{}{"key": "value"},
		},
		{
			name:           "Info",
			logFunc:        logger.Info,
			message:        "info message",
			fields:         []interface{}{"count", 42},
			level:          zapcore.InfoLevel,
			expectedFields: map[string]interface{}{"count": int64(42)},
		},
		{
			name:           "Warn",
			logFunc:        logger.Warn,
			message:        "warn message",
			fields:         []interface{}{},
			level:          zapcore.WarnLevel,
			expectedFields: map[string]interface{}{},
		},
		{
			name:           "Error",
			logFunc:        logger.Error,
			message:        "error message",
			fields:         []interface{}{"error", "test error"},
			level:          zapcore.ErrorLevel,
			expectedFields: map[string]interface{}{"error": "test error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs.TakeAll()
			tt.logFunc(tt.message, tt.fields...)

			entries := logs.TakeAll()
			if len(entries) != 1 {
				t.Fatalf("Expected 1 log entry, got %d", len(entries))
			}

			entry := entries[0]
			if entry.Level != tt.level {
				t.Errorf("Expected level %v, got %v", tt.level, entry.Level)
			}
			if entry.Message != tt.message {
				t.Errorf("Expected message %q, got %q", tt.message, entry.Message)
			}

			fields := entry.ContextMap()
			for key, expectedValue := range tt.expectedFields {
				actualValue, exists := fields[key]
				if !exists {
					t.Errorf("Expected field %q to exist", key)
					continue
				}
				if actualValue != expectedValue {
					t.Errorf("Expected field %q to be %v (%T), got %v (%T)", key, expectedValue, expectedValue, actualValue, actualValue)
				}
			}
		})
	}
}

func TestToZapFields_MalformedInput(t *testing.T) {
	logger, logs := NewObservedLogger()

	logger.Info("odd fields", "key", "value", "dangling")
	logger.Info("non-string key", 7, "seven")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	odd := entries[0].ContextMap()
	if odd["key"] != "value" {
		t.Errorf("Expected key=value, got %v", odd["key"])
	}
	if odd["field_1"] != "dangling" {
		t.Errorf("Expected field_1=dangling, got %v", odd["field_1"])
	}

	nonString := entries[1].ContextMap()
	if nonString["field_0"] != int64(7) {
		t.Errorf("Expected field_0=7, got %v (%T)", nonString["field_0"], nonString["field_0"])
	}
	if nonString["field_0_value"] != "seven" {
		t.Errorf("Expected field_0_value=seven, got %v", nonString["field_0_value"])
	}
}

func TestLogError(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name        string
		err         error
		context     map[string]interface{}
		wantMessage string
		wantFields  map[string]interface{}
	}{
		{
			name: "classified error",
			err: &mockClassifiedError{
				message:   "monitor lookup failed",
				code:      "PLATFORM",
				context:   map[string]string{"window": "main"},
				timestamp: ts,
			},
			context:     map[string]interface{}{"step": "place-window"},
			wantMessage: "Operation failed: monitor lookup failed",
			wantFields: map[string]interface{}{
				"operation":  "startup",
				"error_code": "PLATFORM",
				"window":     "main",
				"step":       "place-window",
			},
		},
		{
			name:        "plain error",
			err:         errors.New("boom"),
			wantMessage: "Unexpected error: boom",
			wantFields: map[string]interface{}{
				"operation":  "startup",
				"error_type": "*errors.errorString",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := NewObservedLogger()
			LogError(logger, tt.err, "startup", tt.context)

			entries := logs.FilterLevelExact(zapcore.ErrorLevel).All()
			if len(entries) != 1 {
				t.Fatalf("Expected 1 error entry, got %d", len(entries))
			}
			if entries[0].Message != tt.wantMessage {
				t.Errorf("Expected message %q, got %q", tt.wantMessage, entries[0].Message)
			}
			fields := entries[0].ContextMap()
			for k, v := range tt.wantFields {
				if fields[k] != v {
					t.Errorf("Expected field %q=%v, got %v", k, v, fields[k])
				}
			}
		})
	}
}

func TestLogError_NilErrorIsIgnored(t *testing.T) {
	logger, logs := NewObservedLogger()
	LogError(logger, nil, "noop", nil)
	if logs.Len() != 0 {
		t.Errorf("Expected no entries for nil error, got %d", logs.Len())
	}
}

func TestLogOperation(t *testing.T) {
	logger, logs := NewObservedLogger()
	LogOperation(logger, "startup.place-window", 1500*time.Millisecond, map[string]interface{}{"moved": true})

	entries := logs.FilterMessage("Operation completed: startup.place-window").All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["duration_ms"] != int64(1500) {
		t.Errorf("Expected duration_ms=1500, got %v", fields["duration_ms"])
	}
	if fields["moved"] != true {
		t.Errorf("Expected moved=true, got %v", fields["moved"])
	}
}

func TestWailsLoggerAdapter(t *testing.T) {
	logger, logs := NewObservedLogger()
	adapter := NewWailsLoggerAdapter(logger)

	adapter.Print("print")
	adapter.Trace("trace")
	adapter.Debug("debug")
	adapter.Info("info")
	adapter.Warning("warning")
	adapter.Error("error")
	adapter.Fatal("fatal")

	expected := []struct {
		msg   string
		level zapcore.Level
	}{
		{"print", zapcore.InfoLevel},
		{"trace", zapcore.DebugLevel},
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.ErrorLevel},
	}

	entries := logs.All()
	if len(entries) != len(expected) {
		t.Fatalf("Expected %d entries, got %d", len(expected), len(entries))
	}
	for i, want := range expected {
		assertEntry(t, entries[i], want.msg, want.level)
		if entries[i].ContextMap()["source"] != "wails" {
			t.Errorf("entry %q missing source=wails", want.msg)
		}
	}
}

func TestNewWailsLoggerAdapter_NilLogger(t *testing.T) {
	adapter := NewWailsLoggerAdapter(nil)
	if adapter.logger == nil {
		t.Fatal("Expected a default logger when nil is passed")
	}
}

func TestWailsLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want wailslogger.LogLevel
	}{
		{"trace", wailslogger.TRACE},
		{"DEBUG", wailslogger.DEBUG},
		{"info", wailslogger.INFO},
		{"warn", wailslogger.WARNING},
		{"warning", wailslogger.WARNING},
		{"error", wailslogger.ERROR},
		{"", wailslogger.INFO},
	}
	for _, tt := range tests {
		if got := WailsLogLevel(tt.in); got != tt.want {
			t.Errorf("WailsLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func assertEntry(t *testing.T, entry observer.LoggedEntry, msg string, level zapcore.Level) {
	t.Helper()
	if entry.Message != msg {
		t.Errorf("Expected message %q, got %q", msg, entry.Message)
	}
	if entry.Level != level {
		t.Errorf("Expected level %v for %q, got %v", level, msg, entry.Level)
	}
}
