package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/domainlog/core"
)

// Formatter turns an accepted log call into a structured Message.
// It receives exactly the level, domain and message; auxiliary values
// bypass the formatter and go straight to the sink.
type Formatter func(level core.Level, domain, message string) core.Message

// Default returns the built-in formatter. It stamps each message with
// clock.Now() at format time and adds no extra fields.
func Default(clock core.Clock) Formatter {
	if clock == nil {
		clock = core.SystemClock
	}
	return func(level core.Level, domain, message string) core.Message {
		return core.Message{
			Level:     level,
			Domain:    domain,
			Message:   message,
			Timestamp: core.FormatTimestamp(clock.Now()),
		}
	}
}

// WithStaticFields wraps base and embeds fields into every Message it
// builds. Later fields overwrite earlier ones with the same key.
func WithStaticFields(base Formatter, fields ...core.Field) Formatter {
	if len(fields) == 0 {
		return base
	}
	return func(level core.Level, domain, message string) core.Message {
		msg := base(level, domain, message)
		merged := make(map[string]any, len(msg.Fields)+len(fields))
		for k, v := range msg.Fields {
			merged[k] = v
		}
		for _, f := range fields {
			merged[f.Key] = f.Value()
		}
		msg.Fields = merged
		return msg
	}
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer returns an empty buffer from the shared pool
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to the shared pool
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
