package linelog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/linelog/internal/constants"
	"github.com/hyp3rd/linelog/internal/utils"
)

// ColorMode determines how level-tag colors are handled.
type ColorMode int

const (
	// ColorModeAuto enables color only when the sink is the process standard
	// output.
	ColorModeAuto ColorMode = iota
	// ColorModeAlways forces color output.
	ColorModeAlways
	// ColorModeNever disables color output.
	ColorModeNever
)

// LogFilePermissions are the default file permissions for log files.
const LogFilePermissions = 0o666

// Config holds construction parameters for a Logger.
type Config struct {
	// Name is the display name embedded in every record header.
	Name string
	// Output selects the initial sink: "stdout", "stderr", or a file path.
	Output string
	// Color controls the level-tag color policy.
	Color ColorMode
}

// DefaultConfig returns the default logger configuration: named "main",
// writing to standard output, with automatic color detection.
func DefaultConfig() Config {
	return Config{
		Name:   constants.DefaultName,
		Output: constants.DefaultOutput,
		Color:  ColorModeAuto,
	}
}

// NewFromConfig builds a Logger from the given configuration. The output
// selector is resolved with SetOutput; ColorModeAlways and ColorModeNever
// override the detection New performs.
func NewFromConfig(config Config) (*Logger, error) {
	if config.Name == "" {
		config.Name = constants.DefaultName
	}

	if config.Output == "" {
		config.Output = constants.DefaultOutput
	}

	sink, err := SetOutput(config.Output)
	if err != nil {
		return nil, err
	}

	logger := New(config.Name, sink)

	//nolint:exhaustive // ColorModeAuto keeps the detected flag.
	switch config.Color {
	case ColorModeAlways:
		logger.SetColorEnabled(true)
	case ColorModeNever:
		logger.SetColorEnabled(false)
	}

	return logger, nil
}

// SetOutput resolves an output selector into a Sink. It accepts "stdout",
// "stderr", or a file path; file paths are opened in append mode, created if
// missing. Relative paths are confined to the system temporary directory.
func SetOutput(output string) (Sink, error) {
	// Normalize the input to lowercase for case-insensitive comparison
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		path := filepath.Clean(output)

		if path == "" {
			return nil, ewrap.New("output path cannot be empty")
		}

		if !filepath.IsAbs(path) {
			securePath, err := utils.SecurePath(path)
			if err != nil {
				return nil, ewrap.Wrap(err, "invalid output path")
			}

			path = securePath
		}

		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermissions)
		if err != nil {
			return nil, ewrap.Wrapf(err, "failed to open log file %s", path)
		}

		return file, nil
	}
}

// ParseColorMode parses a color mode selector. The empty string maps to
// ColorModeAuto.
func ParseColorMode(mode string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return ColorModeAuto, nil
	case "always", "force":
		return ColorModeAlways, nil
	case "never", "off":
		return ColorModeNever, nil
	default:
		return ColorModeAuto, ewrap.New("invalid color mode: " + mode)
	}
}
