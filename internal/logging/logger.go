// Package logging provides structured logging for deckfolio. Logs are
// written as JSON lines to a file under the state directory so they never
// interfere with the terminal UI. When no directory is configured the
// logger writes to stderr, which is only useful when the UI is not running.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger wraps slog.Logger with persistent attributes and an owned
// output file that must be closed when the program exits.
type Logger struct {
	slog  *slog.Logger
	file  *os.File
	attrs []slog.Attr
}

// NewLogger creates a logger writing JSON lines to {dir}/debug.log.
// If dir is empty, output goes to stderr instead.
func NewLogger(dir, level string) (*Logger, error) {
	var w io.Writer = os.Stderr
	var f *os.File

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
		path := filepath.Join(dir, "debug.log")
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})

	return &Logger{
		slog: slog.New(handler),
		file: f,
	}, nil
}

// Discard returns a logger that drops everything. Useful in tests and
// when logging is disabled.
func Discard() *Logger {
	return &Logger{
		slog: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithComponent returns a child logger tagged with a component name,
// e.g. "tui", "catalog", "watcher".
func (l *Logger) WithComponent(name string) *Logger {
	return l.withAttr(slog.String("component", name))
}

// With returns a child logger carrying additional key-value pairs.
func (l *Logger) With(args ...any) *Logger {
	child := *l
	child.slog = l.slog.With(args...)
	return &child
}

func (l *Logger) withAttr(attr slog.Attr) *Logger {
	child := *l
	child.attrs = append(append([]slog.Attr{}, l.attrs...), attr)
	return &child
}

func (l *Logger) log(level slog.Level, msg string, args ...any) {
	if l == nil || l.slog == nil {
		return
	}
	logger := l.slog
	for _, attr := range l.attrs {
		logger = logger.With(attr)
	}
	logger.Log(context.Background(), level, msg, args...)
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args...) }

// Info logs at info level.
func (l *Logger) Info(msg string, args ...any) { l.log(slog.LevelInfo, msg, args...) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, args ...any) { l.log(slog.LevelWarn, msg, args...) }

// Error logs at error level.
func (l *Logger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args...) }

// Close releases the underlying log file if one is open.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
