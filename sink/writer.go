package sink

import "io"

// WriterSink adapts an io.Writer into a Sink. Writes pass straight
// through, unbuffered; a write failure is reported to the caller but the
// facade above absorbs it.
type WriterSink struct {
	w   io.Writer
	sw  io.StringWriter // non-nil when w implements it
	one [1]byte
}

// FromWriter wraps w into a Sink. If w already satisfies Sink it is
// returned as-is.
func FromWriter(w io.Writer) Sink {
	if s, ok := w.(Sink); ok {
		return s
	}
	ws := &WriterSink{w: w}
	ws.sw, _ = w.(io.StringWriter)
	return ws
}

// WriteByte writes a single byte to the underlying writer.
func (s *WriterSink) WriteByte(c byte) error {
	s.one[0] = c
	_, err := s.w.Write(s.one[:])
	return err
}

// WriteString writes str to the underlying writer, using its own
// WriteString when available to avoid the []byte conversion.
func (s *WriterSink) WriteString(str string) (int, error) {
	if s.sw != nil {
		return s.sw.WriteString(str)
	}
	return s.w.Write([]byte(str))
}
