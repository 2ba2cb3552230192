package linelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		expected string
	}{
		{"trace", TraceLevel, "TRACE"},
		{"debug", DebugLevel, "DEBUG"},
		{"info", InfoLevel, "INFO"},
		{"warn", WarnLevel, "WARN"},
		{"error", ErrorLevel, "ERROR"},
		{"fatal", FatalLevel, "FATAL"},
		{"unknown", Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestLevel_IsValid(t *testing.T) {
	for level := TraceLevel; level <= FatalLevel; level++ {
		assert.True(t, level.IsValid(), level.String())
	}

	assert.False(t, Level(6).IsValid())
	assert.False(t, Level(255).IsValid())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Level
		wantErr  bool
	}{
		{"trace", "trace", TraceLevel, false},
		{"debug", "debug", DebugLevel, false},
		{"info", "info", InfoLevel, false},
		{"warn", "warn", WarnLevel, false},
		{"warning alias", "warning", WarnLevel, false},
		{"error", "error", ErrorLevel, false},
		{"fatal", "fatal", FatalLevel, false},
		{"mixed case", "Error", ErrorLevel, false},
		{"padded", "  debug ", DebugLevel, false},
		{"empty", "", InfoLevel, true},
		{"unknown", "verbose", InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid log level")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}
