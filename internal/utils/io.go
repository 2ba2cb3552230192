// Package utils provides internal helpers shared by the linelog packages,
// currently path handling for user-supplied log file locations.
package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hyp3rd/ewrap"
)

// SecurePath confines a relative path to the system temporary directory and
// returns the resulting absolute path. It rejects empty paths, directory
// traversal sequences, absolute paths outside the temporary directory, and
// symlinks that resolve outside it. Use it before opening any file whose
// location comes from configuration.
func SecurePath(path string) (string, error) {
	if path == "" {
		return "", ewrap.New("path cannot be empty")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return "", ewrap.New("invalid path contains directory traversal sequence").
			WithMetadata("path", path)
	}

	tempDir := os.TempDir()

	if filepath.IsAbs(cleanPath) {
		// Absolute paths are only accepted inside the temp directory.
		if strings.HasPrefix(path, tempDir) {
			return path, nil
		}

		return "", ewrap.New("absolute paths are not allowed").WithMetadata("path", path)
	}

	fullPath := filepath.Join(tempDir, cleanPath)

	// Resolve symlinks when the path exists and verify they stay inside the
	// temp directory.
	resolvedPath, err := filepath.EvalSymlinks(fullPath)
	if err == nil {
		if !strings.HasPrefix(resolvedPath, tempDir) {
			return "", ewrap.New("path resolves to location outside of temp directory").
				WithMetadata("path", path)
		}
	}

	return fullPath, nil
}
