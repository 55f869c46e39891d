package format

import (
	"io"

	"github.com/jmateri/mculog/core"
	"github.com/jmateri/mculog/sink"
)

// RomText is format text residing in a memory class that cannot be
// addressed as a Go string: flash pages behind a pager, memory-mapped
// program storage, an external EEPROM. The interpreter copies runs of
// characters out through ReadAt before scanning them, so implementations
// only need random byte access.
type RomText interface {
	io.ReaderAt

	// Len returns the length of the text in bytes.
	Len() int
}

// MemText adapts an ordinary string to RomText, for platforms without a
// segmented memory model.
type MemText string

// Len returns the length of the text in bytes.
func (m MemText) Len() int { return len(m) }

// ReadAt copies text starting at off into p.
func (m MemText) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(m)) {
		return 0, io.EOF
	}
	n := copy(p, m[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// romChunk is the size of the scratch buffer FprintRom copies format
// text through. Small enough to live on the stack of embedded-profile
// goroutines, large enough that most format strings need one read.
const romChunk = 32

// FprintRom renders a ROM-resident format string against args into out.
// The output is byte-for-byte identical to Fprint over the same text;
// only the source memory class differs.
func FprintRom(out sink.Sink, f RomText, args ...core.Arg) {
	var buf [romChunk]byte
	length := f.Len()
	next := 0
	pending := false // a '%' ended the previous chunk

	for off := 0; off < length; {
		want := length - off
		if want > romChunk {
			want = romChunk
		}
		n, _ := f.ReadAt(buf[:want], int64(off))
		if n == 0 {
			// No progress; the source is lying about its length or
			// failing. Best-effort output stops here.
			break
		}
		chunk := buf[:n]

		i := 0
		if pending {
			emitVerb(out, chunk[0], args, &next)
			pending = false
			i = 1
		}
		for ; i < n; i++ {
			c := chunk[i]
			if c != '%' {
				_ = out.WriteByte(c)
				continue
			}
			if i+1 < n {
				i++
				emitVerb(out, chunk[i], args, &next)
				continue
			}
			// Specifier split across the chunk boundary.
			pending = true
		}
		off += n
	}

	if pending {
		_ = out.WriteByte('%')
	}
}
