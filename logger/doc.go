// Package logger is the public API of mculog. Most users only need to
// import this package.
//
// A Logger gates every call against a severity threshold and, when the
// call passes, sequences the emission: prefix hook, one-character level
// tag, the formatted body, suffix hook. Everything is written
// synchronously and directly to the configured sink; there is no queue,
// no buffer and no return value — logging is best-effort telemetry and a
// failing sink is never observable to the caller.
//
// A fresh Logger is disabled (threshold Silent, no sink) and stays
// silent until one of the Init variants supplies a threshold and a sink:
//
//	log := logger.New()
//	log.Init(logger.WarningLevel, sink.FromWriter(port), true)
//	log.Error("disk %d full", logger.Int(3)) // "E: disk 3 full"
//
// The package also carries a process-wide default instance, reachable
// through the package-level functions, for the single-logger setups
// embedded targets usually want:
//
//	logger.Init(logger.DebugLevel, sink.FromWriter(os.Stderr), true)
//	logger.Debug("boot took %l ms", logger.Long(elapsed))
//
// Filtered-out calls cost a few integer comparisons and never touch the
// sink or the hooks. The Logger itself does no locking: configuration
// calls (Init, SetPrefix, SetSuffix, SetDefault) must not race with
// logging calls, and concurrent logging interleaves exactly as the
// underlying sink interleaves writes.
//
// Building with the nolog tag compiles every emission body down to an
// empty function, so a release image can drop the format interpreter
// entirely without touching call sites.
package logger
