package linelog

import (
	"io"

	"github.com/hyp3rd/ewrap"
)

// Sink is a character output destination borrowed by a Logger. The Logger
// writes complete records followed by a Sync and never closes the sink; the
// host owns the sink's lifecycle and must keep it valid for the Logger's
// lifetime.
//
// *os.File satisfies Sink directly.
type Sink interface {
	io.Writer
	// Sync ensures that all written data has reached the destination.
	Sync() error
}

type writerSink struct {
	writer io.Writer
}

// NewSink wraps a plain io.Writer into a Sink. Sync becomes a no-op unless
// the underlying writer exposes its own Sync method.
func NewSink(w io.Writer) Sink {
	return &writerSink{writer: w}
}

// Underlying exposes the wrapped writer for descriptor inspection.
func (s *writerSink) Underlying() io.Writer {
	return s.writer
}

func (s *writerSink) Write(p []byte) (int, error) {
	n, err := s.writer.Write(p)
	if err != nil {
		return n, ewrap.Wrap(err, "failed to write to sink")
	}

	return n, nil
}

func (s *writerSink) Sync() error {
	if syncer, ok := s.writer.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}

	return nil
}
