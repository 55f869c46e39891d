package logger

import (
	"github.com/jmateri/mculog/core"
	"github.com/jmateri/mculog/format"
	"github.com/jmateri/mculog/sink"
)

// std is the process-wide default instance. It is constructed disabled
// and stays silent until Init is called, so logging before configuration
// is a harmless no-op rather than a crash. As with any Logger, the
// configuration calls below must not race with logging calls.
var std = New()

// Default returns the package-level logger.
func Default() *Logger {
	return std
}

// SetDefault replaces the package-level logger. A nil argument is
// ignored so the package functions always have an instance to hit.
func SetDefault(l *Logger) {
	if l != nil {
		std = l
	}
}

// Init makes the package-level logger operational; see Logger.Init.
func Init(threshold core.Severity, out sink.Sink, showLevel bool) {
	std.Init(threshold, out, showLevel)
}

// InitWithRate initializes the package-level logger against a
// rate-configurable sink; see Logger.InitWithRate.
func InitWithRate(threshold core.Severity, out sink.RateSink, baud int64) error {
	return std.InitWithRate(threshold, out, baud)
}

// SetPrefix installs a prefix hook on the package-level logger.
func SetPrefix(h Hook) {
	std.SetPrefix(h)
}

// SetSuffix installs a suffix hook on the package-level logger.
func SetSuffix(h Hook) {
	std.SetSuffix(h)
}

// Package-level logging functions delegating to the default instance

// Log emits a record at an explicit severity using the default logger.
func Log(level core.Severity, format string, args ...core.Arg) {
	std.Log(level, format, args...)
}

// Fatal logs a fatal error message using the default logger.
func Fatal(format string, args ...core.Arg) {
	std.Fatal(format, args...)
}

// Error logs an error message using the default logger.
func Error(format string, args ...core.Arg) {
	std.Error(format, args...)
}

// Warning logs a warning message using the default logger.
func Warning(format string, args ...core.Arg) {
	std.Warning(format, args...)
}

// Debug logs a debug message using the default logger.
func Debug(format string, args ...core.Arg) {
	std.Debug(format, args...)
}

// Trace logs a trace message using the default logger.
func Trace(format string, args ...core.Arg) {
	std.Trace(format, args...)
}

// Verbose logs a verbose message using the default logger.
func Verbose(format string, args ...core.Arg) {
	std.Verbose(format, args...)
}

// LogRom emits a record from ROM-resident format text using the default
// logger.
func LogRom(level core.Severity, f format.RomText, args ...core.Arg) {
	std.LogRom(level, f, args...)
}

// FatalRom logs a fatal error message from ROM-resident format text.
func FatalRom(f format.RomText, args ...core.Arg) {
	std.FatalRom(f, args...)
}

// ErrorRom logs an error message from ROM-resident format text.
func ErrorRom(f format.RomText, args ...core.Arg) {
	std.ErrorRom(f, args...)
}

// WarningRom logs a warning message from ROM-resident format text.
func WarningRom(f format.RomText, args ...core.Arg) {
	std.WarningRom(f, args...)
}

// DebugRom logs a debug message from ROM-resident format text.
func DebugRom(f format.RomText, args ...core.Arg) {
	std.DebugRom(f, args...)
}

// TraceRom logs a trace message from ROM-resident format text.
func TraceRom(f format.RomText, args ...core.Arg) {
	std.TraceRom(f, args...)
}

// VerboseRom logs a verbose message from ROM-resident format text.
func VerboseRom(f format.RomText, args ...core.Arg) {
	std.VerboseRom(f, args...)
}
