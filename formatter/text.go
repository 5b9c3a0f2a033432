package formatter

import (
	"bytes"
	"fmt"

	"github.com/philipp01105/domainlog/core"
)

// TextEncoder renders a Message as a single human-readable line:
//
//	[2024-05-01T11:30:15.123Z] [INFO] [db]: connected key=value extra
//
// The style hooks receive the bracketed segment and may decorate it,
// e.g. with terminal colour codes. Nil hooks leave text unchanged.
type TextEncoder struct {
	StyleTimestamp func(s string) string
	StyleLevel     func(level core.Level, s string) string
}

// Encode writes the rendered line, including the trailing newline, to buf
func (e *TextEncoder) Encode(buf *bytes.Buffer, msg core.Message, aux []any) {
	ts := "[" + msg.Timestamp + "]"
	if e.StyleTimestamp != nil {
		ts = e.StyleTimestamp(ts)
	}
	buf.WriteString(ts)
	buf.WriteByte(' ')

	tag := "[" + msg.Level.Tag() + "]"
	if e.StyleLevel != nil {
		tag = e.StyleLevel(msg.Level, tag)
	}
	buf.WriteString(tag)

	buf.WriteString(" [")
	buf.WriteString(msg.Domain)
	buf.WriteString("]: ")
	buf.WriteString(msg.Message)

	for _, k := range sortedKeys(msg.Fields) {
		buf.WriteByte(' ')
		buf.WriteString(k)
		buf.WriteByte('=')
		fmt.Fprint(buf, msg.Fields[k])
	}

	for _, a := range aux {
		buf.WriteByte(' ')
		if f, ok := a.(core.Field); ok {
			buf.WriteString(f.Key)
			buf.WriteByte('=')
			buf.WriteString(f.StringValue())
			continue
		}
		fmt.Fprint(buf, a)
	}

	buf.WriteByte('\n')
}

// Text renders msg with a plain TextEncoder and returns the line
func Text(msg core.Message, aux ...any) string {
	buf := GetBuffer()
	defer PutBuffer(buf)
	(&TextEncoder{}).Encode(buf, msg, aux)
	return buf.String()
}
