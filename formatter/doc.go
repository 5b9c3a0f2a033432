// Package formatter builds and serializes log messages.
//
// A Formatter is a plain function that turns an accepted call (level,
// domain, message) into a core.Message. Default stamps the message
// with an ISO-8601 UTC timestamp taken from the injected clock at the
// moment the formatter runs, not when the call was made. Callers may
// replace it with any function of the same shape, including ones that
// add extra record fields (see WithStaticFields).
//
// TextEncoder and JSONEncoder serialize a Message together with the
// call's auxiliary values into a bytes.Buffer. Sinks obtain buffers
// from a shared sync.Pool via GetBuffer and PutBuffer. Buffers larger
// than 64 KiB are not returned to the pool to prevent a single large
// log line from permanently inflating memory usage.
package formatter
