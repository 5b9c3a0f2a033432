// Package sink provides the Sink capability and its built-in
// implementations for delivering formatted messages.
//
// A Sink is a plain function. It receives the Message built by the
// formatter plus the call's auxiliary values, exactly as the caller
// passed them, and returns an error that the logger hands back to the
// caller untouched. Sinks run synchronously on the caller's goroutine;
// there is no queueing or batching.
//
// Built-in sinks:
//
//   - NewConsole renders a colourised text line to any io.Writer
//     (default: stdout). It is the logger's default sink.
//   - NewJSON writes newline-delimited JSON objects.
//   - Multi fans out a single message to several sinks.
//   - NewZap forwards messages to a *zap.Logger.
//
// The built-in writer sinks serialize their writes with a mutex so
// concurrent callers never interleave partial lines.
package sink
