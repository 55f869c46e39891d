// Package sink defines the output capability every log call writes through.
//
// A Sink is the composition of io.ByteWriter and io.StringWriter: the
// smallest surface the format interpreter needs to emit literal characters
// and converted text. The caller supplies and owns the underlying device;
// the facade never opens, closes or buffers it.
//
// bytes.Buffer satisfies Sink directly, which is what the tests use for
// capture. For destinations that only implement io.Writer (files, network
// connections), FromWriter wraps them. Discard is a no-op Sink for
// benchmarks and disabled output.
//
// Sinks whose transport has a configurable speed (serial ports) implement
// RateSink; the rate is applied once, during logger initialization, and
// never touched on the write path.
package sink
