package core

// ArgType discriminates the value held by an Arg
type ArgType uint8

const (
	StrType ArgType = iota
	CharType
	IntType
	LongType
	BoolType
)

// Arg is one conversion argument of a log call. It is a tagged union over
// the types the format interpreter recognizes; the numeric kinds share the
// Int64 slot so boxing an int, char or bool never allocates.
type Arg struct {
	Type  ArgType
	Int64 int64
	Str   string
}

// Str boxes a text argument, consumed by %s
func Str(v string) Arg {
	return Arg{Type: StrType, Str: v}
}

// Ch boxes a single character, consumed by %c
func Ch(v rune) Arg {
	return Arg{Type: CharType, Int64: int64(v)}
}

// Int boxes an integer, consumed by %d, %x, %X, %b and %B
func Int(v int) Arg {
	return Arg{Type: IntType, Int64: int64(v)}
}

// Long boxes a long integer, consumed by %l and the base conversions
// at 64-bit width
func Long(v int64) Arg {
	return Arg{Type: LongType, Int64: v}
}

// Bool boxes a boolean, consumed by %t and %T
func Bool(v bool) Arg {
	a := Arg{Type: BoolType}
	if v {
		a.Int64 = 1
	}
	return a
}
