package log

import (
	charmlog "github.com/charmbracelet/log"
)

type (
	Level     = charmlog.Level
	Styles    = charmlog.Styles
	Formatter = charmlog.Formatter
)

const (
	DebugLevel = charmlog.DebugLevel
	InfoLevel  = charmlog.InfoLevel
	WarnLevel  = charmlog.WarnLevel
	ErrorLevel = charmlog.ErrorLevel
)

const (
	TextFormatter   = charmlog.TextFormatter
	JSONFormatter   = charmlog.JSONFormatter
	LogfmtFormatter = charmlog.LogfmtFormatter
)

// ParseLevel converts "debug", "info", "warn" or "error" (any case) to a Level.
func ParseLevel(s string) (Level, error) {
	return charmlog.ParseLevel(s)
}

// ParseFormatter converts "text", "json" or "logfmt" to a Formatter.
// Anything else falls back to TextFormatter.
func ParseFormatter(s string) Formatter {
	switch s {
	case "json":
		return JSONFormatter
	case "logfmt":
		return LogfmtFormatter
	default:
		return TextFormatter
	}
}
