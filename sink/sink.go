package sink

import (
	"github.com/philipp01105/domainlog/core"
)

// Sink delivers a formatted message and the call's auxiliary values to
// an output. It is invoked synchronously, once per accepted call, and
// its error is returned to the caller of Logger.Log unchanged.
type Sink func(msg core.Message, aux ...any) error

// Discard is a Sink that drops everything
func Discard(core.Message, ...any) error { return nil }
