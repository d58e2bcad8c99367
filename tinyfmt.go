package tinyfmt

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors for programmatic error handling.
var (
	ErrFormatString       = errors.New("invalid format string")
	ErrArgumentConversion = errors.New("argument not usable as integer")
)

// Error describes a failed formatting call. Unwrap returns
// [ErrFormatString] or [ErrArgumentConversion].
type Error struct {
	Err    error
	Reason string
	// Offset is the byte offset in the format string where the problem
	// was found.
	Offset int
	// Arg is the index of the offending argument, or -1.
	Arg int
}

func (e *Error) Error() string {
	if e.Arg >= 0 {
		return fmt.Sprintf("%v: %s (offset %d, argument %d)", e.Err, e.Reason, e.Offset, e.Arg)
	}
	return fmt.Sprintf("%v: %s (offset %d)", e.Err, e.Reason, e.Offset)
}

func (e *Error) Unwrap() error { return e.Err }

func formatError(reason string, offset int) *Error {
	return &Error{Err: ErrFormatString, Reason: reason, Offset: offset, Arg: -1}
}

// Write formats args according to format and writes the result to w.
//
// When w is a [*Sink] its state is used as the starting point and restored
// before Write returns. Output written before an error is not rolled back.
func Write(w io.Writer, format string, args ...any) error {
	s, ok := w.(*Sink)
	if !ok {
		s = NewSink(w)
	}
	return execute(s, format, newArgList(args))
}

// Format formats args according to format and returns the result.
func Format(format string, args ...any) (string, error) {
	b := newBuffer()
	defer b.free()
	if err := Write(b, format, args...); err != nil {
		return "", err
	}
	return string(*b), nil
}

// Append formats args according to format, appends the result to dst and
// returns the extended slice. On error the slice holds the partial output.
func Append(dst []byte, format string, args ...any) ([]byte, error) {
	b := buffer(dst)
	err := Write(&b, format, args...)
	return b, err
}

// Print formats args according to format and writes the result to
// standard output.
func Print(format string, args ...any) error {
	return Write(os.Stdout, format, args...)
}

// Println is like [Print] followed by a newline. The newline is only
// written when formatting succeeds.
func Println(format string, args ...any) error {
	if err := Write(os.Stdout, format, args...); err != nil {
		return err
	}
	_, err := io.WriteString(os.Stdout, "\n")
	return err
}

// Validate formats args according to format and discards the output.
func Validate(format string, args ...any) error {
	return Write(io.Discard, format, args...)
}
