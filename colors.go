package linelog

import "bytes"

//nolint:revive // Pointless to comment the colors.
const (
	// ANSI color codes for terminal output.

	// Foreground colors.

	Black   = "\x1b[30m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
	White   = "\x1b[37m"

	// Background colors.

	BgBlack   = "\x1b[40m"
	BgRed     = "\x1b[41m"
	BgGreen   = "\x1b[42m"
	BgYellow  = "\x1b[43m"
	BgBlue    = "\x1b[44m"
	BgMagenta = "\x1b[45m"
	BgCyan    = "\x1b[46m"
	BgWhite   = "\x1b[47m"

	// Reset resets the terminal's color settings.
	Reset = "\x1b[0m"
)

// appendLevelTag writes the uppercase tag for the given level, wrapped in its
// color escapes when colored is true. Trace renders in the terminal's default
// color and therefore carries no escapes at all.
func appendLevelTag(buf *bytes.Buffer, level Level, colored bool) {
	tag := level.String()

	if !colored {
		buf.WriteString(tag)

		return
	}

	switch level {
	case InfoLevel:
		buf.WriteString(Blue)
	case WarnLevel:
		buf.WriteString(Yellow)
	case ErrorLevel:
		buf.WriteString(Red)
	case FatalLevel:
		buf.WriteString(Black)
		buf.WriteString(BgRed)
	case DebugLevel:
		buf.WriteString(Green)
	case TraceLevel:
		buf.WriteString(tag)

		return
	}

	buf.WriteString(tag)
	buf.WriteString(Reset)
}
