package logger

import (
	"context"
	"log/slog"

	"github.com/philipp01105/domainlog/core"
)

// DomainKey is the slog attribute key that selects the domain of a
// record routed through SlogHandler
const DomainKey = "domain"

// slogHandler adapts a Logger to slog.Handler
type slogHandler struct {
	logger *Logger
	attrs  []core.Field
	prefix string // dotted group path used to prefix attribute keys
	group  string // innermost group name
	domain string
}

// SlogHandler returns a slog.Handler that feeds records into l, so code
// written against log/slog goes through the same level and domain
// filter. The domain is taken from a top-level "domain" attribute,
// otherwise from the innermost group name, otherwise it is empty.
// Remaining attributes are passed to the sink as core.Field values.
func (l *Logger) SlogHandler() slog.Handler {
	return &slogHandler{logger: l}
}

// Enabled reports whether the logger's minimum level admits level.
// The domain is checked later in Handle.
func (s *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level).Enabled(s.logger.level)
}

// Handle converts the record and logs it
func (s *slogHandler) Handle(_ context.Context, record slog.Record) error {
	domain := s.domain
	if domain == "" {
		domain = s.group
	}

	aux := make([]any, 0, len(s.attrs)+record.NumAttrs())
	for _, f := range s.attrs {
		aux = append(aux, f)
	}
	record.Attrs(func(a slog.Attr) bool {
		if a.Equal(slog.Attr{}) {
			return true
		}
		if d, ok := s.domainAttr(a); ok {
			domain = d
			return true
		}
		aux = append(aux, slogAttrToField(s.prefix, a))
		return true
	})

	return s.logger.Log(slogLevelToCore(record.Level), domain, record.Message, aux...)
}

// WithAttrs returns a new handler with additional attributes
func (s *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := s.clone()
	for _, a := range attrs {
		if a.Equal(slog.Attr{}) {
			continue
		}
		if d, ok := s.domainAttr(a); ok {
			next.domain = d
			continue
		}
		next.attrs = append(next.attrs, slogAttrToField(s.prefix, a))
	}
	return next
}

// WithGroup returns a new handler with the given group name
func (s *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	next := s.clone()
	next.group = name
	if s.prefix != "" {
		next.prefix = s.prefix + "." + name
	} else {
		next.prefix = name
	}
	return next
}

func (s *slogHandler) clone() *slogHandler {
	attrs := make([]core.Field, len(s.attrs))
	copy(attrs, s.attrs)
	return &slogHandler{
		logger: s.logger,
		attrs:  attrs,
		prefix: s.prefix,
		group:  s.group,
		domain: s.domain,
	}
}

func (s *slogHandler) domainAttr(a slog.Attr) (string, bool) {
	if s.prefix != "" || a.Key != DomainKey {
		return "", false
	}
	v := a.Value.Resolve()
	if v.Kind() != slog.KindString {
		return "", false
	}
	return v.String(), true
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// slogAttrToField converts a slog.Attr to a core.Field, prepending the group prefix if present.
func slogAttrToField(prefix string, a slog.Attr) core.Field {
	key := a.Key
	if prefix != "" {
		key = prefix + "." + a.Key
	}

	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindString:
		return String(key, a.Value.String())
	case slog.KindInt64:
		return Int64(key, a.Value.Int64())
	case slog.KindUint64:
		return Any(key, a.Value.Uint64())
	case slog.KindFloat64:
		return Float64(key, a.Value.Float64())
	case slog.KindBool:
		return Bool(key, a.Value.Bool())
	case slog.KindTime:
		return Time(key, a.Value.Time())
	case slog.KindDuration:
		return Duration(key, a.Value.Duration())
	case slog.KindGroup:
		m := make(map[string]any, len(a.Value.Group()))
		for _, ga := range a.Value.Group() {
			m[ga.Key] = slogAttrToField("", ga).Value()
		}
		return Any(key, m)
	default:
		if err, ok := a.Value.Any().(error); ok {
			return NamedErr(key, err)
		}
		return Any(key, a.Value.Any())
	}
}
