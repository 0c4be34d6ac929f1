package logging

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Logger is the structured logger used across the application.
// Fields are alternating key/value pairs.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

// ZapLogger implements Logger on top of a zap core
type ZapLogger struct {
	base *zap.Logger
}

// NewDefaultLogger creates a JSON logger at INFO level
func NewDefaultLogger() Logger {
	return NewLogger("info")
}

// NewLogger creates a JSON logger writing to stderr at the given level.
// Unknown levels fall back to INFO.
func NewLogger(level string) Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Sampling = nil
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	base, err := cfg.Build()
	if err != nil {
		// Building only fails on broken sinks; stay silent rather than crash startup
		base = zap.NewNop()
	}
	return &ZapLogger{base: base}
}

// NewNopLogger returns a logger that discards everything
func NewNopLogger() Logger {
	return &ZapLogger{base: zap.NewNop()}
}

// NewObservedLogger creates a logger that captures entries for assertions
func NewObservedLogger() (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return &ZapLogger{base: zap.New(core)}, logs
}

// toZapFields converts the variadic fields slice to zap fields
// Expected format: key1, value1, key2, value2, ...
func toZapFields(fields []interface{}) []zap.Field {
	result := make([]zap.Field, 0, len(fields)/2+1)

	for i := 0; i < len(fields); i += 2 {
		if i+1 >= len(fields) {
			// Odd number of fields, add the last one with an index key
			result = append(result, zap.Any(fmt.Sprintf("field_%d", i/2), fields[i]))
			continue
		}

		if key, ok := fields[i].(string); ok {
			result = append(result, zap.Any(key, fields[i+1]))
		} else {
			// If key is not a string, use index as key
			result = append(result,
				zap.Any(fmt.Sprintf("field_%d", i/2), fields[i]),
				zap.Any(fmt.Sprintf("field_%d_value", i/2), fields[i+1]))
		}
	}

	return result
}

func (l *ZapLogger) Debug(msg string, fields ...interface{}) {
	l.base.Debug(msg, toZapFields(fields)...)
}

func (l *ZapLogger) Info(msg string, fields ...interface{}) {
	l.base.Info(msg, toZapFields(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields ...interface{}) {
	l.base.Warn(msg, toZapFields(fields)...)
}

func (l *ZapLogger) Error(msg string, fields ...interface{}) {
	l.base.Error(msg, toZapFields(fields)...)
}

// Sync flushes buffered entries
func (l *ZapLogger) Sync() error {
	return l.base.Sync()
}

// Sync flushes the logger if its backend buffers output
func Sync(logger Logger) {
	if s, ok := logger.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}

// ClassifiedError is implemented by errors carrying a code and context
// (kept as an interface to avoid importing the errors package)
type ClassifiedError interface {
	Error() string
	GetCode() string
	GetContext() map[string]string
	GetTimestamp() time.Time
}

// LogError logs an error, expanding code and context when the error is classified
func LogError(logger Logger, err error, operation string, context map[string]interface{}) {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	if err == nil {
		return
	}

	if classified, ok := err.(ClassifiedError); ok {
		fields := []interface{}{
			"operation", operation,
			"error_code", classified.GetCode(),
			"timestamp", classified.GetTimestamp(),
		}

		for k, v := range classified.GetContext() {
			fields = append(fields, k, v)
		}

		for k, v := range context {
			fields = append(fields, k, v)
		}

		logger.Error(fmt.Sprintf("Operation failed: %s", err.Error()), fields...)
		return
	}

	fields := []interface{}{
		"operation", operation,
		"error_type", fmt.Sprintf("%T", err),
	}

	for k, v := range context {
		fields = append(fields, k, v)
	}

	logger.Error(fmt.Sprintf("Unexpected error: %s", err.Error()), fields...)
}

// LogOperation logs a completed operation with its duration
func LogOperation(logger Logger, operation string, duration time.Duration, context map[string]interface{}) {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	fields := []interface{}{
		"operation", operation,
		"duration_ms", duration.Milliseconds(),
	}

	for k, v := range context {
		fields = append(fields, k, v)
	}

	logger.Debug(fmt.Sprintf("Operation completed: %s", operation), fields...)
}
