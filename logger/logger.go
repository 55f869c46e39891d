package logger

import (
	"github.com/jmateri/mculog/core"
	"github.com/jmateri/mculog/format"
	"github.com/jmateri/mculog/sink"
)

// CR is the conventional record terminator for serial consoles, handy as
// a suffix: log.SetSuffix(hooks.Literal(logger.CR)).
const CR = "\n"

// Logger holds the level gate and emission state: the active threshold,
// the level tag flag, the sink and the two optional hooks. The zero
// value is usable and disabled; New is the explicit way to spell that.
type Logger struct {
	threshold core.Severity
	showLevel bool
	out       sink.Sink
	prefix    Hook
	suffix    Hook
}

// New returns a disabled Logger: threshold Silent, no sink, level tag
// display on. It produces no output until an Init variant is called.
func New() *Logger {
	return &Logger{threshold: core.Silent, showLevel: true}
}

// Init makes the logger operational. Calls at severities <= threshold
// will be written to out; showLevel controls the one-character level tag
// in front of each record. Init may be called again at any time to
// reconfigure, and is idempotent for identical arguments.
func (l *Logger) Init(threshold core.Severity, out sink.Sink, showLevel bool) {
	l.threshold = threshold
	l.out = out
	l.showLevel = showLevel
}

// InitWithRate is Init for sinks with a configurable transport speed: it
// applies baud to the sink before enabling output. The level tag stays
// on, as with a plain serial console. A rate the sink rejects leaves the
// logger unconfigured.
func (l *Logger) InitWithRate(threshold core.Severity, out sink.RateSink, baud int64) error {
	if err := out.SetRate(baud); err != nil {
		return err
	}
	l.Init(threshold, out, true)
	return nil
}

// SetPrefix installs h to run immediately before every emitted record.
// At most one prefix is active; passing nil removes the current one.
func (l *Logger) SetPrefix(h Hook) {
	l.prefix = h
}

// SetSuffix installs h to run immediately after every emitted record.
// At most one suffix is active; passing nil removes the current one.
func (l *Logger) SetSuffix(h Hook) {
	l.suffix = h
}

// enabled reports whether a call at level passes the gate. This is the
// hot path for filtered-out calls: a few comparisons, no allocation.
func (l *Logger) enabled(level core.Severity) bool {
	return l.out != nil && l.threshold != core.Silent &&
		level >= core.Fatal && level <= l.threshold
}

// Log emits a record at an explicit severity.
func (l *Logger) Log(level core.Severity, format string, args ...core.Arg) {
	l.emit(level, format, args)
}

// Fatal logs a fatal error message, tagged "F: ".
func (l *Logger) Fatal(format string, args ...core.Arg) {
	l.emit(core.Fatal, format, args)
}

// Error logs an error message, tagged "E: ".
func (l *Logger) Error(format string, args ...core.Arg) {
	l.emit(core.Error, format, args)
}

// Warning logs a warning message, tagged "W: ".
func (l *Logger) Warning(format string, args ...core.Arg) {
	l.emit(core.Warning, format, args)
}

// Debug logs a debug message, tagged "D: ".
func (l *Logger) Debug(format string, args ...core.Arg) {
	l.emit(core.Debug, format, args)
}

// Trace logs a trace message, tagged "T: ".
func (l *Logger) Trace(format string, args ...core.Arg) {
	l.emit(core.Trace, format, args)
}

// Verbose logs a verbose message, tagged "V: ".
func (l *Logger) Verbose(format string, args ...core.Arg) {
	l.emit(core.Verbose, format, args)
}

// LogRom emits a record at an explicit severity from a ROM-resident
// format string.
func (l *Logger) LogRom(level core.Severity, f format.RomText, args ...core.Arg) {
	l.emitRom(level, f, args)
}

// FatalRom is Fatal for a ROM-resident format string.
func (l *Logger) FatalRom(f format.RomText, args ...core.Arg) {
	l.emitRom(core.Fatal, f, args)
}

// ErrorRom is Error for a ROM-resident format string.
func (l *Logger) ErrorRom(f format.RomText, args ...core.Arg) {
	l.emitRom(core.Error, f, args)
}

// WarningRom is Warning for a ROM-resident format string.
func (l *Logger) WarningRom(f format.RomText, args ...core.Arg) {
	l.emitRom(core.Warning, f, args)
}

// DebugRom is Debug for a ROM-resident format string.
func (l *Logger) DebugRom(f format.RomText, args ...core.Arg) {
	l.emitRom(core.Debug, f, args)
}

// TraceRom is Trace for a ROM-resident format string.
func (l *Logger) TraceRom(f format.RomText, args ...core.Arg) {
	l.emitRom(core.Trace, f, args)
}

// VerboseRom is Verbose for a ROM-resident format string.
func (l *Logger) VerboseRom(f format.RomText, args ...core.Arg) {
	l.emitRom(core.Verbose, f, args)
}
