package sink

import (
	"io"
	"sync"

	"github.com/pkg/errors"

	"github.com/philipp01105/domainlog/core"
	"github.com/philipp01105/domainlog/formatter"
)

// NewJSON returns a Sink that writes newline-delimited JSON to w.
// A nil writer is treated as io.Discard.
func NewJSON(w io.Writer) Sink {
	if w == nil {
		w = io.Discard
	}
	var mu sync.Mutex
	return func(msg core.Message, aux ...any) error {
		buf := formatter.GetBuffer()
		formatter.JSONEncoder{}.Encode(buf, msg, aux)

		mu.Lock()
		_, err := w.Write(buf.Bytes())
		mu.Unlock()

		formatter.PutBuffer(buf)
		if err != nil {
			return errors.Wrap(err, "json sink: write")
		}
		return nil
	}
}
