// Package log provides structured logging for merklepartial. It wraps Go's
// log/slog with per-module child loggers and a verbosity scale for command
// line use.
//
// The conformance harness logs per-fixture outcomes under module "eftest"
// and ssztree logs command summaries under module "cmd". ssztree installs
// its logger with SetDefault, so the harness picks up the configured level
// and format without a logger being passed in.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with module context.
type Logger struct {
	inner *slog.Logger
}

// defaultLogger is the process-wide logger used by the package-level
// convenience functions.
var defaultLogger *Logger

func init() {
	defaultLogger = New(slog.LevelInfo)
}

// New creates a Logger that writes JSON to stderr at the given level.
func New(level slog.Level) *Logger {
	return NewJSON(os.Stderr, level)
}

// NewJSON creates a Logger that writes JSON lines to w.
func NewJSON(w io.Writer, level slog.Level) *Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{inner: slog.New(h)}
}

// NewText creates a Logger that writes key=value lines to w.
func NewText(w io.Writer, level slog.Level) *Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{inner: slog.New(h)}
}

// NewWithHandler creates a Logger backed by the supplied slog.Handler. This
// is useful for testing or for writing to a custom destination.
func NewWithHandler(h slog.Handler) *Logger {
	return &Logger{inner: slog.New(h)}
}

// SetDefault replaces the package-level default logger.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Default returns the current package-level default logger.
func Default() *Logger {
	return defaultLogger
}

// Module returns a child logger with an additional "module" attribute.
// Subsystems (eftest, cmd, ...) obtain their own contextual logger this way.
func (l *Logger) Module(name string) *Logger {
	return &Logger{inner: l.inner.With("module", name)}
}

// With returns a child logger with additional key-value context.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{inner: l.inner.With(args...)}
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, args ...any) { l.inner.Info(msg, args...) }

// Warn logs at LevelWarn.
func (l *Logger) Warn(msg string, args ...any) { l.inner.Warn(msg, args...) }

// Error logs at LevelError.
func (l *Logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

// LevelOff is above every level slog emits, silencing a logger.
const LevelOff = slog.Level(12)

// VerbosityToLevel maps a 0-5 verbosity to a slog level: 0 silences
// output, 1 error, 2 warn, 3 info, 4 and above debug.
func VerbosityToLevel(v int) slog.Level {
	switch {
	case v <= 0:
		return LevelOff
	case v == 1:
		return slog.LevelError
	case v == 2:
		return slog.LevelWarn
	case v == 3:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// ---------------------------------------------------------------------------
// Package-level convenience functions -- delegate to defaultLogger.
// ---------------------------------------------------------------------------

// Debug logs at LevelDebug using the default logger.
func Debug(msg string, args ...any) { defaultLogger.Debug(msg, args...) }

// Info logs at LevelInfo using the default logger.
func Info(msg string, args ...any) { defaultLogger.Info(msg, args...) }

// Warn logs at LevelWarn using the default logger.
func Warn(msg string, args ...any) { defaultLogger.Warn(msg, args...) }

// Error logs at LevelError using the default logger.
func Error(msg string, args ...any) { defaultLogger.Error(msg, args...) }
