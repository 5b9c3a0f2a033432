package sink

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/domainlog/core"
)

// Multi returns a Sink that sends every message to each of sinks in
// order. A failing sink does not stop delivery to the rest; all errors
// are combined into the returned error.
func Multi(sinks ...Sink) Sink {
	targets := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			targets = append(targets, s)
		}
	}
	return func(msg core.Message, aux ...any) error {
		var err error
		for _, s := range targets {
			err = multierr.Append(err, s(msg, aux...))
		}
		return err
	}
}
