package sink

import (
	"maps"
	"slices"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/domainlog/core"
	"github.com/philipp01105/domainlog/formatter"
)

// NewZap returns a Sink that forwards messages to l. The domain and
// timestamp travel as "domain" and "timestamp" fields, extra message
// fields and core.Field auxiliary values become native zap fields
// (renamed by formatter.FieldKey when they collide with a record key), and
// positional auxiliary values are attached as arg0, arg1, ...
//
// l applies its own level on top of the Logger's filter. Messages at
// NoneLevel are never forwarded.
func NewZap(l *zap.Logger) Sink {
	if l == nil {
		l = zap.NewNop()
	}
	return func(msg core.Message, aux ...any) error {
		lvl, ok := zapLevel(msg.Level)
		if !ok {
			return nil
		}
		ce := l.Check(lvl, msg.Message)
		if ce == nil {
			return nil
		}

		fields := make([]zap.Field, 0, 2+len(msg.Fields)+len(aux))
		fields = append(fields,
			zap.String("domain", msg.Domain),
			zap.String("timestamp", msg.Timestamp),
		)
		for _, k := range slices.Sorted(maps.Keys(msg.Fields)) {
			fields = append(fields, zap.Any(formatter.FieldKey(k), msg.Fields[k]))
		}
		n := 0
		for _, a := range aux {
			if f, ok := a.(core.Field); ok {
				f.Key = formatter.FieldKey(f.Key)
				fields = append(fields, zapField(f))
				continue
			}
			fields = append(fields, zap.Any("arg"+strconv.Itoa(n), a))
			n++
		}

		ce.Write(fields...)
		return nil
	}
}

func zapLevel(l core.Level) (zapcore.Level, bool) {
	switch l {
	case core.DebugLevel:
		return zapcore.DebugLevel, true
	case core.InfoLevel:
		return zapcore.InfoLevel, true
	case core.WarnLevel:
		return zapcore.WarnLevel, true
	case core.ErrorLevel:
		return zapcore.ErrorLevel, true
	default:
		return zapcore.InvalidLevel, false
	}
}

func zapField(f core.Field) zap.Field {
	switch f.Type {
	case core.StringType, core.ErrorType:
		return zap.String(f.Key, f.Str)
	case core.IntType, core.Int64Type:
		return zap.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return zap.Float64(f.Key, f.Float64)
	case core.BoolType:
		return zap.Bool(f.Key, f.Int64 == 1)
	case core.TimeType:
		return zap.Time(f.Key, time.Unix(0, f.Int64))
	case core.DurationType:
		return zap.Duration(f.Key, time.Duration(f.Int64))
	default:
		return zap.Any(f.Key, f.Any)
	}
}
