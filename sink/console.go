package sink

import (
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/philipp01105/domainlog/core"
	"github.com/philipp01105/domainlog/formatter"
)

// ColorMode controls terminal styling of the console sink
type ColorMode int

const (
	// ColorAuto styles output only when the writer is a terminal and
	// NO_COLOR is unset
	ColorAuto ColorMode = iota
	// ColorAlways always emits ANSI styling
	ColorAlways
	// ColorNever writes plain text
	ColorNever
)

// ConsoleConfig holds configuration for the console sink
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Color selects terminal styling (default: ColorAuto)
	Color ColorMode
}

// console renders one text line per message. Writes are serialized so
// lines from concurrent callers never interleave.
type console struct {
	mu      sync.Mutex
	w       io.Writer
	encoder formatter.TextEncoder
}

// NewConsole returns the default sink: a bold timestamp, a level tag
// coloured by severity (INFO blue, WARN yellow, ERROR red, DEBUG green,
// anything else white), then the domain, the message and any auxiliary
// values on the same line.
func NewConsole(cfg ConsoleConfig) Sink {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	c := &console{w: cfg.Writer}
	if useColor(cfg) {
		bold := newStyle(color.Bold)
		c.encoder = formatter.TextEncoder{
			StyleTimestamp: func(s string) string { return bold.Sprint(s) },
			StyleLevel:     levelStyler(),
		}
	}
	return c.write
}

func (c *console) write(msg core.Message, aux ...any) error {
	buf := formatter.GetBuffer()
	c.encoder.Encode(buf, msg, aux)

	c.mu.Lock()
	_, err := c.w.Write(buf.Bytes())
	c.mu.Unlock()

	formatter.PutBuffer(buf)
	if err != nil {
		return errors.Wrap(err, "console sink: write")
	}
	return nil
}

func useColor(cfg ConsoleConfig) bool {
	switch cfg.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTerminal(cfg.Writer)
}

// isTerminal returns true if w is a file attached to a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newStyle builds a colour that ignores the package-wide color.NoColor
// switch; the sink decides for itself whether to style.
func newStyle(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func levelStyler() func(core.Level, string) string {
	styles := map[core.Level]*color.Color{
		core.DebugLevel: newStyle(color.Bold, color.FgGreen),
		core.InfoLevel:  newStyle(color.Bold, color.FgBlue),
		core.WarnLevel:  newStyle(color.Bold, color.FgYellow),
		core.ErrorLevel: newStyle(color.Bold, color.FgRed),
	}
	fallback := newStyle(color.Bold, color.FgWhite)
	return func(level core.Level, s string) string {
		if c, ok := styles[level]; ok {
			return c.Sprint(s)
		}
		return fallback.Sprint(s)
	}
}
