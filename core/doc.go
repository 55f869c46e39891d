// Package core defines the shared types used across the mculog facade.
//
// It provides the Severity type for threshold filtering and the Arg type,
// a tagged union representing one conversion argument of a log call.
//
// Severity ordering is inverted relative to most Go loggers: lower numeric
// values are more critical, and Silent (0) admits nothing. A call at
// severity S is emitted iff S <= threshold and the threshold is not Silent.
//
// Arg encodes values into two fixed slots (Int64, Str) so that the common
// argument types — int, long, char, bool — never escape to the heap on a
// filtered-out call. Call sites box values through the constructors Str,
// Ch, Int, Long and Bool rather than building Arg literals.
package core
