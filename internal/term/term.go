// Package term answers whether an output destination is the process standard
// output. The logger uses this single question to decide, at construction
// time, whether terminal color escapes are safe to emit.
package term

import (
	"io"
	"os"
	"syscall"

	"github.com/mattn/go-isatty"
)

// IsStdout reports whether the writer's underlying destination is the
// process standard output. Files are compared by descriptor, so any handle
// on fd 1 matches, not just os.Stdout itself. Wrappers exposing Underlying()
// are unwrapped; writers that expose only a descriptor fall back to an
// interactive-terminal probe; everything else is not stdout.
func IsStdout(w io.Writer) bool {
	switch typed := w.(type) {
	case *os.File:
		return typed.Fd() == uintptr(syscall.Stdout)
	case interface{ Underlying() io.Writer }:
		return IsStdout(typed.Underlying())
	case interface{ Fd() uintptr }:
		fd := typed.Fd()

		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	default:
		return false
	}
}
