package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jmateri/mculog/core"
)

func renderRom(format string, args ...core.Arg) string {
	var buf bytes.Buffer
	FprintRom(&buf, MemText(format), args...)
	return buf.String()
}

func TestMemText(t *testing.T) {
	m := MemText("hello")
	if m.Len() != 5 {
		t.Errorf("Len() = %d, want 5", m.Len())
	}

	p := make([]byte, 3)
	n, err := m.ReadAt(p, 1)
	if err != nil {
		t.Fatalf("ReadAt() error = %v", err)
	}
	if n != 3 || string(p) != "ell" {
		t.Errorf("ReadAt() = %d %q, want 3 %q", n, p, "ell")
	}

	// Short read at the tail reports io.EOF with the partial count.
	n, _ = m.ReadAt(p, 3)
	if n != 2 || string(p[:n]) != "lo" {
		t.Errorf("ReadAt() tail = %d %q, want 2 %q", n, p[:n], "lo")
	}
}

func TestFprintRom_MatchesFprint(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []core.Arg
	}{
		{"plain", "no specifiers at all", nil},
		{"mixed", "value=%d units (%s)", []core.Arg{core.Int(42), core.Str("mm")}},
		{"unknown", "odd %q thing", nil},
		{"trailing percent", "100%", nil},
		{"every specifier", "%s %c %d %l %x %X %b %B %t %T", []core.Arg{
			core.Str("s"), core.Ch('c'), core.Int(1), core.Long(2),
			core.Int(255), core.Int(255), core.Int(5), core.Int(5),
			core.Bool(true), core.Bool(false),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := render(tt.format, tt.args...)
			got := renderRom(tt.format, tt.args...)
			if got != want {
				t.Errorf("FprintRom() = %q, Fprint() = %q; outputs must match", got, want)
			}
		})
	}
}

func TestFprintRom_SpecifierAcrossChunkBoundary(t *testing.T) {
	// Place the '%' exactly on the last byte of the copy chunk so the
	// specifier character lands in the next read.
	format := strings.Repeat("a", romChunk-1) + "%d tail"
	want := strings.Repeat("a", romChunk-1) + "7 tail"

	if got := renderRom(format, core.Int(7)); got != want {
		t.Errorf("FprintRom() = %q, want %q", got, want)
	}
}

func TestFprintRom_PercentAtEndOfText(t *testing.T) {
	format := strings.Repeat("x", romChunk) + "%"
	if got := renderRom(format); got != format {
		t.Errorf("FprintRom() = %q, want %q", got, format)
	}
}

func TestFprintRom_LongFormat(t *testing.T) {
	// Several chunks with specifiers scattered through them.
	format := strings.Repeat("pad ", 20) + "%s=%d " + strings.Repeat("pad ", 20) + "%t"
	want := render(format, core.Str("k"), core.Int(9), core.Bool(true))
	got := renderRom(format, core.Str("k"), core.Int(9), core.Bool(true))
	if got != want {
		t.Errorf("FprintRom() = %q, want %q", got, want)
	}
}

// truncatedRom claims more length than it can serve.
type truncatedRom struct {
	MemText
	claim int
}

func (r truncatedRom) Len() int { return r.claim }

func TestFprintRom_TruncatedSource(t *testing.T) {
	var buf bytes.Buffer
	FprintRom(&buf, truncatedRom{MemText: "short", claim: 100})
	if got := buf.String(); got != "short" {
		t.Errorf("FprintRom() = %q, want %q", got, "short")
	}
}
