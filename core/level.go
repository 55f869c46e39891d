package core

// Severity represents the importance of a log call. Lower numeric value
// means higher priority; Silent admits no output at all.
type Severity int8

const (
	// Silent suppresses every severity, including Fatal
	Silent Severity = iota
	// Fatal for unrecoverable errors
	Fatal
	// Error for all errors
	Error
	// Warning for errors and warnings
	Warning
	// Debug for errors, warnings and debug output
	Debug
	// Trace for errors, warnings, debug and traces
	Trace
	// Verbose admits everything
	Verbose
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case Silent:
		return "SILENT"
	case Fatal:
		return "FATAL"
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Debug:
		return "DEBUG"
	case Trace:
		return "TRACE"
	case Verbose:
		return "VERBOSE"
	default:
		return "UNKNOWN"
	}
}

// tags holds the one-character level markers, indexed by Severity-1.
const tags = "FEWDTV"

// Tag returns the single-character marker written in front of a message
// when level display is enabled: 'F', 'E', 'W', 'D', 'T' or 'V'. The
// second return is false for Silent and out-of-range severities, which
// have no marker.
func Tag(s Severity) (byte, bool) {
	if s < Fatal || s > Verbose {
		return 0, false
	}
	return tags[s-1], true
}
