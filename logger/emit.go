//go:build !nolog

package logger

import (
	"github.com/jmateri/mculog/core"
	"github.com/jmateri/mculog/format"
)

// emit runs one gated log call: prefix hook, level tag, formatted body,
// suffix hook, all written synchronously to the sink. Sink errors are
// absorbed; nothing here may disturb the caller's control flow.
func (l *Logger) emit(level core.Severity, msg string, args []core.Arg) {
	if !l.enabled(level) {
		return
	}
	l.openRecord(level)
	format.Fprint(l.out, msg, args...)
	l.closeRecord()
}

// emitRom is emit for a ROM-resident format string.
func (l *Logger) emitRom(level core.Severity, msg format.RomText, args []core.Arg) {
	if !l.enabled(level) {
		return
	}
	l.openRecord(level)
	format.FprintRom(l.out, msg, args...)
	l.closeRecord()
}

func (l *Logger) openRecord(level core.Severity) {
	if l.prefix != nil {
		l.prefix.Emit(l.out)
	}
	if l.showLevel {
		if tag, ok := core.Tag(level); ok {
			_ = l.out.WriteByte(tag)
			_, _ = l.out.WriteString(": ")
		}
	}
}

func (l *Logger) closeRecord() {
	if l.suffix != nil {
		l.suffix.Emit(l.out)
	}
}
