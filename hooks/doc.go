// Package hooks provides ready-made prefix and suffix hooks for the
// logger: a millisecond timestamp, a fixed-text terminator and a
// Prometheus counter. They are conveniences over logger.HookFunc; any
// function taking the sink works as a hook.
package hooks
