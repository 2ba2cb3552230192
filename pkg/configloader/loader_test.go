package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyp3rd/linelog"
)

func TestFromYAML(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		config, err := FromYAML([]byte("name: File Output\noutput: stderr\ncolor: never\n"))
		require.NoError(t, err)

		assert.Equal(t, "File Output", config.Name)
		assert.Equal(t, "stderr", config.Output)
		assert.Equal(t, linelog.ColorModeNever, config.Color)
	})

	t.Run("missing keys fall back to defaults", func(t *testing.T) {
		config, err := FromYAML([]byte("name: partial\n"))
		require.NoError(t, err)

		assert.Equal(t, "partial", config.Name)
		assert.Equal(t, "stdout", config.Output)
		assert.Equal(t, linelog.ColorModeAuto, config.Color)
	})

	t.Run("invalid color mode", func(t *testing.T) {
		_, err := FromYAML([]byte("color: rainbow\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid color mode")
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := FromYAML([]byte(":\t not yaml"))
		require.Error(t, err)
	})
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LINELOG_NAME", "env-logger")
	t.Setenv("LINELOG_OUTPUT", "stderr")
	t.Setenv("LINELOG_COLOR", "always")

	config, err := FromEnv("")
	require.NoError(t, err)

	assert.Equal(t, "env-logger", config.Name)
	assert.Equal(t, "stderr", config.Output)
	assert.Equal(t, linelog.ColorModeAlways, config.Color)
}

func TestFromEnv_CustomPrefix(t *testing.T) {
	t.Setenv("MYAPP_NAME", "custom")

	config, err := FromEnv("MYAPP")
	require.NoError(t, err)

	assert.Equal(t, "custom", config.Name)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linelog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: from-file\ncolor: never\n"), 0o600))

	config, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", config.Name)
	assert.Equal(t, linelog.ColorModeNever, config.Color)
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read configuration file")
}
