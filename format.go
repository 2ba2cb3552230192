package linelog

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// appendValues renders the values into the buffer in order, separated by
// single spaces. Nothing is written before the first value or after the last;
// an empty list writes nothing.
func appendValues(buf *bytes.Buffer, values []any) {
	for i, value := range values {
		if i > 0 {
			buf.WriteByte(' ')
		}

		appendValue(buf, value)
	}
}

// appendValue renders a single value the way the value itself would print:
// no quoting, no type prefix, no truncation. Common kinds take direct strconv
// paths to avoid reflection; everything else falls back to fmt.
//
// int32 values render as characters, following Go's rune convention for
// single-character literals.
//
//nolint:cyclop // One case per supported kind keeps the dispatch flat.
func appendValue(buf *bytes.Buffer, value any) {
	switch val := value.(type) {
	case nil:
		buf.WriteString("<nil>")
	case string:
		buf.WriteString(val)
	case []byte:
		buf.Write(val)
	case rune:
		buf.WriteRune(val)
	case int:
		buf.WriteString(strconv.Itoa(val))
	case int8:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
	case int16:
		buf.WriteString(strconv.FormatInt(int64(val), 10))
	case int64:
		buf.WriteString(strconv.FormatInt(val, 10))
	case uint:
		buf.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint8:
		buf.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint16:
		buf.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint32:
		buf.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint64:
		buf.WriteString(strconv.FormatUint(val, 10))
	case float32:
		buf.WriteString(strconv.FormatFloat(float64(val), 'g', -1, 32))
	case float64:
		buf.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
	case bool:
		buf.WriteString(strconv.FormatBool(val))
	case time.Time:
		buf.WriteString(val.Format(time.RFC3339))
	case fmt.Stringer:
		buf.WriteString(val.String())
	case error:
		buf.WriteString(val.Error())
	default:
		fmt.Fprintf(buf, "%v", val)
	}
}
