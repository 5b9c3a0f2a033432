package core

import (
	"strings"

	"github.com/pkg/errors"
)

// Level represents the severity level of a log call
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// NoneLevel disables all output when used as a minimum level
	NoneLevel
)

var levelNames = [...]string{
	DebugLevel: "debug",
	InfoLevel:  "info",
	WarnLevel:  "warn",
	ErrorLevel: "error",
	NoneLevel:  "none",
}

var levelTags = [...]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	NoneLevel:  "NONE",
}

// String returns the lower-case name of the level
func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// Tag returns the upper-case name of the level
func (l Level) Tag() string {
	if l >= 0 && int(l) < len(levelTags) {
		return levelTags[l]
	}
	return "UNKNOWN"
}

// Enabled reports whether a call at level l passes the minimum level.
// NoneLevel as a minimum rejects everything.
func (l Level) Enabled(minimum Level) bool {
	if minimum == NoneLevel {
		return false
	}
	return l >= minimum
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel converts a case-insensitive level name to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "none", "off":
		return NoneLevel, nil
	default:
		return InfoLevel, errors.Errorf("unknown log level %q", s)
	}
}
