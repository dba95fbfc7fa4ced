// Package logging provides the slog-based logger shared by the mskgo client, mskctl and fakemsk.
package logging

import (
	"io"
	"log/slog"
	"sync"
)

var (
	level = new(slog.LevelVar)

	globalMu     sync.RWMutex
	globalLogger = newLogger(nil, "text", level)
)

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *slog.Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *slog.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

func Debug(msg string, args ...any) { GetGlobalLogger().Debug(msg, args...) }
func Info(msg string, args ...any)  { GetGlobalLogger().Info(msg, args...) }
func Warn(msg string, args ...any)  { GetGlobalLogger().Warn(msg, args...) }
func Error(msg string, args ...any) { GetGlobalLogger().Error(msg, args...) }

// With returns the global logger with the given attributes
func With(args ...any) *slog.Logger {
	return GetGlobalLogger().With(args...)
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
