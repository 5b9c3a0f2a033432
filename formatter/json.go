package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/philipp01105/domainlog/core"
)

// JSONEncoder renders a Message as one JSON object per line. Named
// core.Field auxiliary values become object keys; every other auxiliary
// value is collected, in order, into an "args" array. Extra keys that
// collide with a record key are renamed by FieldKey.
type JSONEncoder struct{}

// FieldPrefix is prepended to extra keys that collide with a record key
const FieldPrefix = "fields."

var reservedKeys = map[string]struct{}{
	"level":     {},
	"domain":    {},
	"message":   {},
	"timestamp": {},
	"args":      {},
}

// FieldKey returns key, or key prefixed with FieldPrefix when it would
// overwrite one of the record keys level, domain, message, timestamp
// or args
func FieldKey(key string) string {
	if _, ok := reservedKeys[key]; ok {
		return FieldPrefix + key
	}
	return key
}

// Encode writes the JSON object, including the trailing newline, to buf
func (JSONEncoder) Encode(buf *bytes.Buffer, msg core.Message, aux []any) {
	buf.WriteString(`{"level":"`)
	buf.WriteString(msg.Level.String())
	buf.WriteString(`","domain":"`)
	appendJSONString(buf, msg.Domain)
	buf.WriteString(`","message":"`)
	appendJSONString(buf, msg.Message)
	buf.WriteString(`","timestamp":"`)
	appendJSONString(buf, msg.Timestamp)
	buf.WriteByte('"')

	for _, k := range sortedKeys(msg.Fields) {
		buf.WriteString(`,"`)
		appendJSONString(buf, FieldKey(k))
		buf.WriteString(`":`)
		appendJSONAny(buf, msg.Fields[k])
	}

	var positional []any
	for _, a := range aux {
		f, ok := a.(core.Field)
		if !ok {
			positional = append(positional, a)
			continue
		}
		buf.WriteString(`,"`)
		appendJSONString(buf, FieldKey(f.Key))
		buf.WriteString(`":`)
		appendJSONFieldValue(buf, f)
	}

	if len(positional) > 0 {
		buf.WriteString(`,"args":[`)
		for i, a := range positional {
			if i > 0 {
				buf.WriteByte(',')
			}
			appendJSONAny(buf, a)
		}
		buf.WriteByte(']')
	}

	buf.WriteString("}\n")
}

func sortedKeys(m map[string]any) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// appendJSONFieldValue writes a JSON-encoded field value to the buffer
func appendJSONFieldValue(buf *bytes.Buffer, field core.Field) {
	switch field.Type {
	case core.StringType, core.ErrorType:
		buf.WriteByte('"')
		appendJSONString(buf, field.Str)
		buf.WriteByte('"')
	case core.IntType, core.Int64Type:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), field.Int64, 10))
	case core.Float64Type:
		appendJSONFloat(buf, field.Float64)
	case core.BoolType:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), field.Int64 == 1))
	case core.TimeType:
		buf.WriteByte('"')
		buf.WriteString(core.FormatTimestamp(time.Unix(0, field.Int64)))
		buf.WriteByte('"')
	case core.DurationType:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), field.Int64, 10))
	default:
		appendJSONAny(buf, field.Any)
	}
}

// appendJSONFloat writes f as a JSON number. NaN and the infinities have
// no JSON number form and are written as the strings "NaN", "+Inf" and
// "-Inf".
func appendJSONFloat(buf *bytes.Buffer, f float64) {
	switch {
	case math.IsNaN(f):
		buf.WriteString(`"NaN"`)
	case math.IsInf(f, 1):
		buf.WriteString(`"+Inf"`)
	case math.IsInf(f, -1):
		buf.WriteString(`"-Inf"`)
	default:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), f, 'f', -1, 64))
	}
}

// appendJSONAny encodes an arbitrary value. Errors are written as their
// message; values encoding/json rejects fall back to their %v text.
func appendJSONAny(buf *bytes.Buffer, v any) {
	switch x := v.(type) {
	case string:
		buf.WriteByte('"')
		appendJSONString(buf, x)
		buf.WriteByte('"')
		return
	case core.Field:
		appendJSONFieldValue(buf, x)
		return
	case error:
		buf.WriteByte('"')
		appendJSONString(buf, x.Error())
		buf.WriteByte('"')
		return
	case float64:
		appendJSONFloat(buf, x)
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		buf.WriteByte('"')
		appendJSONString(buf, fmt.Sprintf("%v", v))
		buf.WriteByte('"')
		return
	}
	buf.Write(data)
}
