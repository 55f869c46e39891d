package sink

import "io"

// Sink is the byte output capability consumed by the logging facade.
// Implementations are not required to be safe for concurrent use; callers
// that log from multiple goroutines get whatever atomicity the underlying
// device offers.
type Sink interface {
	io.ByteWriter
	io.StringWriter
}

// RateSink is a Sink whose transport speed can be configured, e.g. a
// serial port with a baud rate. SetRate is invoked at most once, during
// logger initialization.
type RateSink interface {
	Sink

	// SetRate configures the transport speed in symbols per second.
	SetRate(baud int64) error
}

// Discard is a Sink on which all writes succeed without doing anything.
var Discard Sink = discard{}

type discard struct{}

func (discard) WriteByte(byte) error { return nil }

func (discard) WriteString(s string) (int, error) { return len(s), nil }
