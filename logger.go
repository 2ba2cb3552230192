// Package linelog implements a synchronous, line-oriented logger for Go
// applications.
//
// A Logger is constructed with a display name and a single output sink, and
// can fan out to further sinks added at runtime:
//
//	log := linelog.New("Main", os.Stdout)
//	log.Info("Program started.")
//	log.Error("Var i was not > 0! i ==", i)
//
// Every call assembles one record of the form
//
//	[TZ 2006-01-02 15:04:05:NANOS] [Name:LEVEL]\tvalue value value\n
//
// and writes it atomically to every registered sink. Arguments are rendered
// by their own formatting capability (fmt.Stringer, error, numeric and string
// kinds) and joined with single spaces. When the initial sink is the process
// standard output, the level tag is wrapped in ANSI color escapes; appending
// any additional sink disables color for the logger's remaining lifetime,
// since downstream sinks cannot be probed.
//
// The logger performs no level filtering, no buffering beyond a single
// record, and no sink lifecycle management: sinks are borrowed from the host
// and must outlive the logger. Write failures on a sink are ignored and never
// surface to the caller.
package linelog

import (
	"bytes"
	"strconv"
	"sync"
	"time"

	"github.com/hyp3rd/linelog/internal/constants"
	"github.com/hyp3rd/linelog/internal/term"
)

// Logger is a named, concurrency-safe line logger. All methods may be called
// from any goroutine; records from a single Logger never interleave.
//
// The zero value is not usable; construct instances with New or
// NewFromConfig.
type Logger struct {
	name string

	mu           sync.Mutex
	buf          bytes.Buffer
	sinks        []Sink
	colorEnabled bool
}

// New creates a Logger writing to the given sink. Color output is enabled
// when the sink shares its underlying descriptor with the process standard
// output.
//
// The sink is borrowed: the Logger never closes it, and the caller must keep
// it open for the Logger's lifetime.
func New(name string, sink Sink) *Logger {
	return &Logger{
		name:         name,
		sinks:        []Sink{sink},
		colorEnabled: term.IsStdout(sink),
	}
}

// Name returns the display name the Logger was constructed with.
func (l *Logger) Name() string {
	return l.name
}

// AddSink appends a sink to the fan-out set. Appending always disables color
// output, even when the new sink is itself a terminal: once more than one
// destination is involved, escape sequences cannot be assumed safe for all of
// them. The transition is permanent for this Logger.
func (l *Logger) AddSink(sink Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sinks = append(l.sinks, sink)
	l.colorEnabled = false
}

// SetColorEnabled overrides the color flag chosen at construction time.
// A subsequent AddSink clears the flag again.
func (l *Logger) SetColorEnabled(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.colorEnabled = enabled
}

// ColorEnabled reports whether level tags are currently color wrapped.
func (l *Logger) ColorEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.colorEnabled
}

// Info logs the given values at info level.
func (l *Logger) Info(values ...any) {
	l.emit(InfoLevel, values)
}

// Warn logs the given values at warn level.
func (l *Logger) Warn(values ...any) {
	l.emit(WarnLevel, values)
}

// Error logs the given values at error level.
func (l *Logger) Error(values ...any) {
	l.emit(ErrorLevel, values)
}

// Fatal logs the given values at fatal level. The level is a label only; the
// Logger does not terminate the program.
func (l *Logger) Fatal(values ...any) {
	l.emit(FatalLevel, values)
}

// Debug logs the given values at debug level.
func (l *Logger) Debug(values ...any) {
	l.emit(DebugLevel, values)
}

// Trace logs the given values at trace level.
func (l *Logger) Trace(values ...any) {
	l.emit(TraceLevel, values)
}

// emit assembles one record in the scratch buffer and writes it to every
// sink. The whole operation runs under the Logger's lock so that records
// never interleave and the sink set is never observed half-updated. The line
// terminator is assembled into the buffer so each sink receives the complete
// record in a single write; loggers sharing an internally serialized sink
// then interleave at record boundaries only.
//
// Sink failures are deliberately dropped: a broken sink loses output, the
// remaining sinks are unaffected, and the caller always regains control.
func (l *Logger) emit(level Level, values []any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.writeHeader(time.Now(), level)
	appendValues(&l.buf, values)
	l.buf.WriteByte('\n')

	payload := l.buf.Bytes()
	for _, sink := range l.sinks {
		//nolint:errcheck // Sink failures lose output on that sink only.
		sink.Write(payload)
		//nolint:errcheck
		sink.Sync()
	}

	l.buf.Reset()
}

// writeHeader appends "[TZ date time:nanos] [name:LEVEL]\t" to the scratch
// buffer. The sub-second part is the nanosecond offset into the current
// second, printed without padding.
func (l *Logger) writeHeader(now time.Time, level Level) {
	l.buf.WriteByte('[')
	l.buf.WriteString(now.Format(constants.TimeLayout))
	l.buf.WriteByte(':')
	l.buf.WriteString(strconv.Itoa(now.Nanosecond()))
	l.buf.WriteString("] [")
	l.buf.WriteString(l.name)
	l.buf.WriteByte(':')
	appendLevelTag(&l.buf, level, l.colorEnabled)
	l.buf.WriteString("]\t")
}
