package logger

import "github.com/jmateri/mculog/sink"

// Sink re-exports the sink capability so hook implementations do not
// need a second import.
type Sink = sink.Sink

// Hook is a caller-supplied decoration invoked exactly once around every
// emitted record: a prefix hook before the level tag and body, a suffix
// hook after. Hooks never run for filtered-out calls. Typical uses are
// timestamps, counters and record terminators.
type Hook interface {
	Emit(out sink.Sink)
}

// HookFunc adapts an ordinary function to the Hook interface.
type HookFunc func(out sink.Sink)

// Emit calls f(out).
func (f HookFunc) Emit(out sink.Sink) { f(out) }
