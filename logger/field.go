package logger

import (
	"time"

	"github.com/philipp01105/domainlog/core"
)

// Named auxiliary values. They travel to the sink like any other
// auxiliary value; the built-in sinks render them as key/value pairs
// instead of positionally:
//
//	log.Warn("db", "slow query", logger.Duration("took", d), logger.Err(err))

func String(key, val string) core.Field {
	return core.Field{Key: key, Type: core.StringType, Str: val}
}

func Int(key string, val int) core.Field {
	return core.Field{Key: key, Type: core.IntType, Int64: int64(val)}
}

func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Type: core.Int64Type, Int64: val}
}

func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Type: core.Float64Type, Float64: val}
}

func Bool(key string, val bool) core.Field {
	f := core.Field{Key: key, Type: core.BoolType}
	if val {
		f.Int64 = 1
	}
	return f
}

// Time stores t with nanosecond precision; sinks render it in UTC
func Time(key string, t time.Time) core.Field {
	return core.Field{Key: key, Type: core.TimeType, Int64: t.UnixNano()}
}

func Duration(key string, d time.Duration) core.Field {
	return core.Field{Key: key, Type: core.DurationType, Int64: int64(d)}
}

// Err records err under the "error" key
func Err(err error) core.Field {
	return core.ErrorField("error", err)
}

// NamedErr records err under key, for calls that carry several errors
func NamedErr(key string, err error) core.Field {
	return core.ErrorField(key, err)
}

// Any falls back to fmt-style rendering in text sinks and
// encoding/json in the JSON sink
func Any(key string, val any) core.Field {
	return core.Field{Key: key, Type: core.AnyType, Any: val}
}
