// Package tinyfmt formats values with C printf-style format strings.
//
// The central entry points are [Write], [Format] and [Print], which accept a
// format string and variadic arguments of any type. Unlike the standard
// library's fmt package, the grammar follows C printf: flags, width,
// precision and length modifiers are accepted, and every mismatch between
// the format string and the arguments is reported as an error instead of
// being rendered inline.
//
//	s, err := tinyfmt.Format("%-8s|%6.2f|%#x", "total", 3.14159, 255)
//	// "total   |  3.14|0xff"
//
// # Grammar
//
// A conversion specifier has the form
//
//	%[flags][width][.precision][length]conv
//
// where
//
//   - flags: '#' alternate form, '0' zero padding, '-' left alignment,
//     ' ' space for a positive sign, '+' forced sign
//   - width: decimal digits, or '*' to take it from the next argument
//     (a negative value means left alignment)
//   - precision: '.' followed by digits, '*', or nothing (zero)
//   - length: any run of l h L j z t, accepted and ignored
//   - conv: d i u o x X p e E f F g G c s
//
// "%%" writes a literal '%'. The conversions %a, %A and %n are rejected.
// Any other conversion character renders the argument in its natural form.
//
// Arguments are taken left to right; a '*' width or precision consumes its
// argument before the value it applies to:
//
//	tinyfmt.Format("%*.*f", 8, 2, 3.14159) // "    3.14"
//
// # Arguments
//
// Integers, floats, bools, strings and byte slices are rendered directly.
// Values implementing error or [fmt.Stringer] use those methods for textual
// conversions. Implement [Renderer] to take full control of a value's
// output, and [Integer] to make a type usable as a '*' width or precision.
//
// # Sinks
//
// A [Sink] is a writer carrying formatting [State]. Passing a *Sink to
// [Write] keeps its state across calls; the state in effect before the call
// is restored when the call returns, whether or not it failed.
//
// # Errors
//
// Every failure is an [*Error] wrapping one of two sentinels:
//
//   - [ErrFormatString]: malformed or unsupported specifier, or too few or
//     too many arguments for the format string
//   - [ErrArgumentConversion]: a '*' argument could not be used as an
//     integer
//
// Output written before the failure stays in the destination. Format into a
// buffer first when all-or-nothing output is needed.
package tinyfmt
