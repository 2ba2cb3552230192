package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"empty path", "", "path cannot be empty"},
		{"traversal", "../etc/passwd", "directory traversal"},
		{"hidden traversal", "logs/../../escape", "directory traversal"},
		{"absolute outside temp", "/etc/passwd", "absolute paths are not allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SecurePath(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("relative path confined to temp dir", func(t *testing.T) {
		secured, err := SecurePath("app.log")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(os.TempDir(), "app.log"), secured)
	})

	t.Run("absolute path inside temp dir allowed", func(t *testing.T) {
		path := filepath.Join(os.TempDir(), "inside.log")
		require.True(t, strings.HasPrefix(path, os.TempDir()))

		secured, err := SecurePath(path)
		require.NoError(t, err)
		assert.Equal(t, path, secured)
	})
}
