// Package logx is the process-wide leveled logger.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Level is a logging severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel maps "debug", "info", "warn" and "error" to a Level. Unknown values map to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

var (
	mu      sync.RWMutex
	level   = new(slog.LevelVar)
	jsonFmt bool
	out     io.Writer = os.Stderr
	logger            = build()
)

func build() *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if jsonFmt {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

// SetLevel sets the minimum level that is written
func SetLevel(l Level) {
	level.Set(l.slogLevel())
}

// SetFormat switches between "text" and "json" output
func SetFormat(format string) {
	mu.Lock()
	defer mu.Unlock()
	jsonFmt = strings.EqualFold(format, "json")
	logger = build()
}

// SetOutput redirects log output
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	logger = build()
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// With returns a structured logger carrying the given attributes
func With(args ...any) *slog.Logger {
	return current().With(args...)
}

func Debug(msg string, args ...any) { current().Debug(msg, args...) }
func Info(msg string, args ...any)  { current().Info(msg, args...) }
func Warn(msg string, args ...any)  { current().Warn(msg, args...) }
func Error(msg string, args ...any) { current().Error(msg, args...) }

func Debugf(format string, args ...any) { current().Debug(fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { current().Info(fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { current().Warn(fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { current().Error(fmt.Sprintf(format, args...)) }

// Fatal logs at error level and exits the process
func Fatal(msg string, args ...any) {
	current().Error(msg, args...)
	os.Exit(1)
}

// Fatalf logs at error level and exits the process
func Fatalf(format string, args ...any) {
	current().Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
