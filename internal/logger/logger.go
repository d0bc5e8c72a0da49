package logger

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// level gates every logger built by New; SetLevel adjusts it at startup.
	//nolint:gochecknoglobals // One level is shared by the CLI and its packages.
	level = zap.NewAtomicLevelAt(zap.WarnLevel)
	// global is used when the context carries no logger.
	//nolint:gochecknoglobals // Fallback for contexts without a logger.
	global = New(zapcore.Lock(os.Stderr))
)

// New creates a sugared console logger writing to w.
// The CLI passes stderr: stdout carries only the resolved version.
func New(w zapcore.WriteSyncer, options ...zap.Option) *zap.SugaredLogger {
	//nolint:exhaustruct // Default values are fine for the remaining encoder fields.
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "message",
		LevelKey:         "level",
		NameKey:          "logger",
		TimeKey:          "time",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: ", ",
	})

	return zap.New(zapcore.NewCore(encoder, w, level), options...).Sugar()
}

// ParseLogLevel converts a --log-level value to a zap level.
// Unknown values report false and fall back to warn.
func ParseLogLevel(s string) (zapcore.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "warn":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	default:
		return zapcore.WarnLevel, false
	}
}

// Logger returns the fallback logger.
func Logger() *zap.SugaredLogger {
	return global
}

// SetLevel sets the minimum level for all loggers built by New.
func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

// DebugKV writes a message and key-value pairs at the debug level.
func DebugKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Debugw(message, kvs...)
}

// InfoKV writes a message and key-value pairs at the info level.
func InfoKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Infow(message, kvs...)
}

// WarnKV writes a message and key-value pairs at the warning level.
func WarnKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Warnw(message, kvs...)
}

// ErrorKV writes a message and key-value pairs at the error level.
func ErrorKV(ctx context.Context, message string, kvs ...any) {
	FromContext(ctx).Errorw(message, kvs...)
}
