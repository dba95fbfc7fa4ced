package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logging configuration
type Config struct {
	// Level is the minimum log level
	Level slog.Level

	// Format is the output format (text or json)
	Format string

	// Output is the output writer
	Output io.Writer
}

// DefaultConfig returns the default logging configuration
func DefaultConfig() *Config {
	return &Config{
		Level:  slog.LevelInfo,
		Format: "text",
		Output: os.Stderr,
	}
}

// Initialize replaces the global logger. The level stays adjustable with SetLevel.
func Initialize(cfg *Config) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	level.Set(cfg.Level)
	SetGlobalLogger(newLogger(cfg.Output, cfg.Format, level))
}

// SetLevel changes the level of the global logger without touching its output
func SetLevel(l slog.Level) {
	level.Set(l)
}

// ParseLevel parses a string log level. Unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(w io.Writer, format string, leveler slog.Leveler) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: leveler, ReplaceAttr: redact}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// sensitiveKeys are attribute keys whose values never reach the output
var sensitiveKeys = map[string]bool{
	"authorization":        true,
	"password":             true,
	"secret_access_key":    true,
	"session_token":        true,
	"x-amz-security-token": true,
}

const redacted = "[REDACTED]"

func redact(_ []string, a slog.Attr) slog.Attr {
	if sensitiveKeys[strings.ToLower(a.Key)] && a.Value.String() != "" {
		return slog.String(a.Key, redacted)
	}
	return a
}
