// Package logging builds the zerolog logger shared by every component
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when the configured level does not parse
const DefaultLevel = zerolog.InfoLevel

// ParseLevel maps a config string to a zerolog level
// Empty or unknown names fall back to DefaultLevel with ok=false
func ParseLevel(s string) (zerolog.Level, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return DefaultLevel, false
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return DefaultLevel, false
	}
	return lvl, true
}

// New returns a timestamped logger writing to w
// console switches to human-readable output without color, suitable for a log file next to a TUI
func New(w io.Writer, level string, console bool) zerolog.Logger {
	if console {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	}
	lvl, ok := ParseLevel(level)
	logger := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	if !ok && level != "" {
		logger.Warn().Str("level", level).Stringer("using", lvl).Msg("unknown log level")
	}
	return logger
}

// Component derives a sub-logger tagged with the component name
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
