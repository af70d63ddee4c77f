// Package logging builds the leveled charmbracelet/log logger used across tl.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"tasklist/internal/config"
)

// DebugEnabled returns true if debug mode is enabled via the TL_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TL_DEBUG") != ""
}

// New creates a logger writing to w at the given level and format.
// Unknown names fall back to warn and text.
func New(w io.Writer, level, format string) *log.Logger {
	lvl := ParseLevel(level)
	if DebugEnabled() {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       ParseFormatter(format),
		ReportTimestamp: lvl == log.DebugLevel,
		Prefix:          "tl",
	})
}

// FromConfig creates a stderr logger from the logging section of cfg.
func FromConfig(cfg *config.Config) *log.Logger {
	return New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
}

// Discard returns a logger that drops everything. Used as the default when
// no logger is injected.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel parses a level name to a charmbracelet/log Level.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// ParseFormatter parses a formatter name to a charmbracelet/log Formatter.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
