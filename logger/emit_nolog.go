//go:build nolog

package logger

import (
	"github.com/jmateri/mculog/core"
	"github.com/jmateri/mculog/format"
)

// With the nolog build tag every emission body is empty. Call sites
// still type-check, the argument boxing is dead code the compiler can
// drop, and the linker prunes the format interpreter from the image.

func (l *Logger) emit(core.Severity, string, []core.Arg) {}

func (l *Logger) emitRom(core.Severity, format.RomText, []core.Arg) {}
