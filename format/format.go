package format

import (
	"strconv"

	"github.com/jmateri/mculog/core"
	"github.com/jmateri/mculog/sink"
)

// Fprint renders the format string against args into out. Sink write
// errors are absorbed: logging is best-effort and must never disturb the
// caller's control flow.
func Fprint(out sink.Sink, format string, args ...core.Arg) {
	next := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			_ = out.WriteByte(c)
			continue
		}
		if i+1 == len(format) {
			// Trailing '%' with no specifier, written verbatim.
			_ = out.WriteByte('%')
			break
		}
		i++
		emitVerb(out, format[i], args, &next)
	}
}

// emitVerb converts the next argument per verb, or passes the two
// characters through untouched when the verb is unknown or the argument
// list is exhausted. Unknown verbs never consume an argument.
func emitVerb(out sink.Sink, verb byte, args []core.Arg, next *int) {
	if *next < len(args) && convert(out, verb, args[*next]) {
		*next++
		return
	}
	_ = out.WriteByte('%')
	_ = out.WriteByte(verb)
}

// convert writes the textual form of a per verb. Returns false without
// writing anything when verb is not in the specifier table.
func convert(out sink.Sink, verb byte, a core.Arg) bool {
	switch verb {
	case 's':
		_, _ = out.WriteString(a.Str)
	case 'c':
		_, _ = out.WriteString(string(rune(a.Int64)))
	case 'd', 'l':
		_, _ = out.WriteString(strconv.FormatInt(a.Int64, 10))
	case 'x':
		_, _ = out.WriteString(strconv.FormatUint(bits(a), 16))
	case 'X':
		_, _ = out.WriteString("0x")
		_, _ = out.WriteString(strconv.FormatUint(bits(a), 16))
	case 'b':
		_, _ = out.WriteString(strconv.FormatUint(bits(a), 2))
	case 'B':
		_, _ = out.WriteString("0b")
		_, _ = out.WriteString(strconv.FormatUint(bits(a), 2))
	case 't':
		if a.Int64 != 0 {
			_ = out.WriteByte('t')
		} else {
			_ = out.WriteByte('f')
		}
	case 'T':
		if a.Int64 != 0 {
			_, _ = out.WriteString("true")
		} else {
			_, _ = out.WriteString("false")
		}
	default:
		return false
	}
	return true
}

// bits returns the two's-complement bit pattern of a at the argument's
// own width: 64 bits for Long, 32 otherwise. Base conversions of
// negative values render this pattern, matching the behavior of printing
// a negative number in hex or binary on the original targets.
func bits(a core.Arg) uint64 {
	if a.Type == core.LongType {
		return uint64(a.Int64)
	}
	return uint64(uint32(a.Int64))
}
