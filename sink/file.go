// Package sink provides ready-made output destinations for linelog loggers.
//
// A logger borrows its sinks and never closes them; the types in this
// package therefore expose Close for the host to call once every logger
// using the sink has been released.
package sink

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/linelog/internal/utils"
)

const defaultFileMode = 0o644

// File is an append-only log file sink. It is safe for use by multiple
// loggers concurrently.
type File struct {
	mu   sync.Mutex
	file *os.File
	path string
}

// NewFile opens (or creates) the file at path in append mode. Relative paths
// are confined to the system temporary directory.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, ewrap.New("log file path is required")
	}

	path = filepath.Clean(path)

	if !filepath.IsAbs(path) {
		securePath, err := utils.SecurePath(path)
		if err != nil {
			return nil, ewrap.Wrap(err, "invalid log file path")
		}

		path = securePath
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, defaultFileMode)
	if err != nil {
		return nil, ewrap.Wrapf(err, "opening log file").
			WithMetadata("path", path)
	}

	return &File{
		file: file,
		path: path,
	}, nil
}

// Path returns the resolved path of the underlying file.
func (f *File) Path() string {
	return f.path
}

// Write implements io.Writer, appending data to the file.
func (f *File) Write(data []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return 0, ewrap.New("log file is closed").WithMetadata("path", f.path)
	}

	bytesWritten, err := f.file.Write(data)
	if err != nil {
		return bytesWritten, ewrap.Wrap(err, "failed writing to log file")
	}

	return bytesWritten, nil
}

// Sync flushes buffered data to the underlying file. If the file has already
// been closed, Sync returns nil without error.
func (f *File) Sync() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil // Already closed, no error
	}

	err := f.file.Sync()
	if err != nil {
		return ewrap.Wrapf(err, "syncing log file")
	}

	return nil
}

// Close syncs and closes the underlying file. Closing an already closed sink
// is a no-op. Any logger still holding this sink will silently lose output
// afterwards.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil // Already closed, no error
	}

	err := f.file.Sync()
	if err != nil {
		return ewrap.Wrapf(err, "final sync before close")
	}

	err = f.file.Close()
	if err != nil {
		return ewrap.Wrapf(err, "closing log file")
	}

	f.file = nil // Mark as closed

	return nil
}
