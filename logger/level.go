package logger

import (
	"strings"

	"github.com/jmateri/mculog/core"
)

// Severity re-exports the core type and constants for convenience
type Severity = core.Severity

const (
	SilentLevel  = core.Silent
	FatalLevel   = core.Fatal
	ErrorLevel   = core.Error
	WarningLevel = core.Warning
	DebugLevel   = core.Debug
	TraceLevel   = core.Trace
	VerboseLevel = core.Verbose
)

// ParseLevel converts a severity name to a Severity. Unknown names map
// to Silent, the safe default for values sourced from the environment.
func ParseLevel(s string) Severity {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SILENT", "OFF", "NONE":
		return SilentLevel
	case "FATAL":
		return FatalLevel
	case "ERROR", "ERR":
		return ErrorLevel
	case "WARNING", "WARN":
		return WarningLevel
	case "DEBUG":
		return DebugLevel
	case "TRACE":
		return TraceLevel
	case "VERBOSE", "ALL":
		return VerboseLevel
	default:
		return SilentLevel
	}
}
