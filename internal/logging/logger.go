// ABOUTME: Leveled logger construction for tagsmith.
// ABOUTME: Wraps charmbracelet/log and maps level names with an info fallback.

package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Levels lists the accepted level names.
var Levels = []string{"debug", "info", "warn", "error"}

// ParseLevel maps a level name to a log.Level, case-insensitively.
// Unknown values map to info.
func ParseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ValidLevel reports whether s names a known level. Empty means default.
func ValidLevel(s string) bool {
	if s == "" {
		return true
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return true
	}
	for _, l := range Levels {
		if s == l {
			return true
		}
	}
	return false
}

// NewLogger creates a logger writing to w at the given level.
func NewLogger(level string, w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		Prefix:          "tagsmith",
		ReportTimestamp: true,
	})
}
