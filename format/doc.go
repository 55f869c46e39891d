// Package format implements the printf-style interpreter that renders a
// format string against an ordered argument list into a sink.
//
// The specifier set is fixed and deliberately small:
//
//	%s  text
//	%c  single character
//	%d  integer, signed decimal
//	%l  long integer, signed decimal
//	%x  integer, lowercase hex          %X  same with 0x prefix
//	%b  integer, binary digits          %B  same with 0b prefix
//	%t  boolean as "t"/"f"              %T  boolean as "true"/"false"
//
// Arguments are consumed strictly in the order their specifiers appear;
// there is no indexing or reordering. An unrecognized specifier passes
// through as the two literal characters '%' and the specifier, consuming
// no argument. The interpreter performs no type checking against the
// argument list: one matching argument per specifier is a caller
// obligation, as in the printf family.
//
// Output goes to the sink character by character as the format is
// scanned — no intermediate buffer, no allocation on the write path
// beyond the strconv conversions.
//
// FprintRom is the entry point for format text that lives outside
// ordinary addressable memory (see RomText); its output is identical to
// Fprint over the same characters.
package format
