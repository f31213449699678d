package configs

import (
	"log/slog"
	"strings"
)

// Logger controls the structured logger. Level is the minimum severity
// emitted ("debug", "info", "warn", "error") and Format selects the
// encoding ("text" or "json"). Unrecognised values fall back to info
// and text respectively.
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// SlogLevel maps the configured level onto a slog.Level.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// JSONFormat reports whether the logger should emit JSON.
func (c Logger) JSONFormat() bool {
	return strings.EqualFold(c.Format, "json")
}
