// Package constants provides fixed values shared across the linelog
// packages: the record timestamp layout, configuration defaults, and the
// environment prefix used by the config loader.
package constants

const (
	// TimeLayout is the record timestamp layout: time-zone abbreviation,
	// date, and wall time. The nanosecond part is appended separately,
	// unpadded.
	TimeLayout = "MST 2006-01-02 15:04:05"
	// DefaultName is the logger name used when none is configured.
	DefaultName = "main"
	// DefaultOutput is the output selector used when none is configured.
	DefaultOutput = "stdout"
	// EnvPrefix is the environment variable prefix recognized by the config
	// loader.
	EnvPrefix = "LINELOG"
)
