package logger

import (
	"slices"

	"github.com/philipp01105/domainlog/core"
	"github.com/philipp01105/domainlog/formatter"
	"github.com/philipp01105/domainlog/sink"
)

// Logger filters calls by level and domain, formats the accepted ones
// and hands them to its sink. It is immutable after construction.
type Logger struct {
	level     core.Level
	domains   map[string]struct{}
	sink      sink.Sink
	formatter formatter.Formatter
}

// Option configures a Logger at construction time
type Option func(*options)

type options struct {
	level       core.Level
	domains     []string
	sink        sink.Sink
	formatter   formatter.Formatter
	clock       core.Clock
	coarseClock bool
}

// WithLevel sets the minimum level. NoneLevel suppresses everything.
func WithLevel(level core.Level) Option {
	return func(o *options) { o.level = level }
}

// WithDomains restricts output to the given domains. An empty set
// allows every domain.
func WithDomains(domains ...string) Option {
	return func(o *options) { o.domains = append(o.domains, domains...) }
}

// WithSink replaces the default console sink
func WithSink(s sink.Sink) Option {
	return func(o *options) {
		if s != nil {
			o.sink = s
		}
	}
}

// WithFormatter replaces the default formatter
func WithFormatter(f formatter.Formatter) Option {
	return func(o *options) {
		if f != nil {
			o.formatter = f
		}
	}
}

// WithClock sets the clock used by the default formatter
func WithClock(c core.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithCoarseClock makes the default formatter use the cached coarse clock
func WithCoarseClock() Option {
	return func(o *options) { o.coarseClock = true }
}

// New creates a Logger. Without options it logs InfoLevel and above for
// every domain to the console sink.
func New(opts ...Option) *Logger {
	o := options{
		level: core.InfoLevel,
		clock: core.SystemClock,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.sink == nil {
		o.sink = sink.NewConsole(sink.ConsoleConfig{})
	}
	if o.formatter == nil {
		clock := o.clock
		if o.coarseClock {
			clock = core.CoarseClock()
		}
		o.formatter = formatter.Default(clock)
	}

	l := &Logger{
		level:     o.level,
		sink:      o.sink,
		formatter: o.formatter,
	}
	if len(o.domains) > 0 {
		l.domains = make(map[string]struct{}, len(o.domains))
		for _, d := range o.domains {
			l.domains[d] = struct{}{}
		}
	}
	return l
}

// Level returns the minimum level
func (l *Logger) Level() core.Level {
	return l.level
}

// Domains returns the allowed domains in sorted order, or nil when all
// domains are allowed
func (l *Logger) Domains() []string {
	if len(l.domains) == 0 {
		return nil
	}
	out := make([]string, 0, len(l.domains))
	for d := range l.domains {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

// Enabled reports whether a call at level for domain would be emitted
func (l *Logger) Enabled(level core.Level, domain string) bool {
	if !level.Enabled(l.level) {
		return false
	}
	if len(l.domains) == 0 {
		return true
	}
	_, ok := l.domains[domain]
	return ok
}

// Log emits message if level and domain pass the filter. The formatter
// sees only level, domain and message; aux is passed to the sink as is.
// Filtered calls return nil without touching the formatter or the sink.
// Sink errors are returned unchanged.
func (l *Logger) Log(level core.Level, domain, message string, aux ...any) error {
	if !l.Enabled(level, domain) {
		return nil
	}
	return l.sink(l.formatter(level, domain, message), aux...)
}

// Debug logs a debug message
func (l *Logger) Debug(domain, message string, aux ...any) error {
	return l.Log(core.DebugLevel, domain, message, aux...)
}

// Info logs an info message
func (l *Logger) Info(domain, message string, aux ...any) error {
	return l.Log(core.InfoLevel, domain, message, aux...)
}

// Warn logs a warning message
func (l *Logger) Warn(domain, message string, aux ...any) error {
	return l.Log(core.WarnLevel, domain, message, aux...)
}

// Error logs an error message
func (l *Logger) Error(domain, message string, aux ...any) error {
	return l.Log(core.ErrorLevel, domain, message, aux...)
}
