package linelog

import (
	"strings"

	"github.com/hyp3rd/ewrap"
)

// Level represents the severity of a log record. The six variants carry no
// ordering relation; the logger never filters by level.
type Level uint8

const (
	// TraceLevel represents verbose debugging information.
	TraceLevel Level = iota
	// DebugLevel represents debugging information.
	DebugLevel
	// InfoLevel represents general operational information.
	InfoLevel
	// WarnLevel represents warning messages.
	WarnLevel
	// ErrorLevel represents error messages.
	ErrorLevel
	// FatalLevel represents fatal error messages. The logger treats it as a
	// label only and does not terminate the program.
	FatalLevel
)

// String returns the uppercase tag for a log level.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if the given Level is a valid log level, and false
// otherwise.
func (l Level) IsValid() bool {
	return l >= TraceLevel && l <= FatalLevel
}

// ParseLevel parses the given log level string and returns the matching
// Level, or an error if the level is invalid.
func ParseLevel(level string) (Level, error) {
	// Normalize the input to lowercase for case-insensitive comparison
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, ewrap.New("invalid log level: " + level)
	}
}
