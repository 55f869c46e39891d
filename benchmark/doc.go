// Package benchmark holds comparative benchmarks of the mculog facade
// against zap and log/slog. All frameworks write to a discarded sink so
// the numbers measure formatting and dispatch, not I/O.
//
// The comparison is indicative only: the other frameworks produce
// structured records with timestamps while mculog emits bare formatted
// text, which is the point of the facade.
package benchmark
