package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/domainlog/core"
	"github.com/philipp01105/domainlog/formatter"
)

func ExampleDefault() {
	clock := core.ClockFunc(func() time.Time {
		return time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	})
	f := formatter.Default(clock)

	msg := f(core.InfoLevel, "auth", "hello world")
	fmt.Print(formatter.Text(msg))
	// Output:
	// [2026-01-15T12:00:00.000Z] [INFO] [auth]: hello world
}

func ExampleJSONEncoder() {
	clock := core.ClockFunc(func() time.Time {
		return time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	})
	msg := formatter.Default(clock)(core.WarnLevel, "http", "request handled")

	buf := formatter.GetBuffer()
	defer formatter.PutBuffer(buf)
	formatter.JSONEncoder{}.Encode(buf, msg, []any{
		core.Field{Key: "status", Type: core.Int64Type, Int64: 200},
	})
	fmt.Print(buf.String())
	// Output:
	// {"level":"warn","domain":"http","message":"request handled","timestamp":"2026-01-15T12:00:00.000Z","status":200}
}
