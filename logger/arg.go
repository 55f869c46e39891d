package logger

import "github.com/jmateri/mculog/core"

// Arg re-exports the core argument union; the constructors below box
// call-site values so users rarely need to import core directly.
type Arg = core.Arg

// Str boxes a text argument, consumed by %s
func Str(v string) Arg { return core.Str(v) }

// Ch boxes a single character, consumed by %c
func Ch(v rune) Arg { return core.Ch(v) }

// Int boxes an integer, consumed by %d and the base conversions
func Int(v int) Arg { return core.Int(v) }

// Long boxes a long integer, consumed by %l
func Long(v int64) Arg { return core.Long(v) }

// Bool boxes a boolean, consumed by %t and %T
func Bool(v bool) Arg { return core.Bool(v) }
