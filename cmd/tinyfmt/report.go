package main

import (
	"errors"
	"io"
	"strings"

	"github.com/bjaus/tinyfmt"
	"github.com/mattn/go-runewidth"
)

// reportedError marks an error whose description was already written.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// report writes err to w. Formatting errors are followed by the format
// string with a caret under the byte where the problem was found.
func report(w io.Writer, format string, err error) error {
	if werr := tinyfmt.Write(w, "tinyfmt: %s\n", err); werr != nil {
		return err
	}
	var fe *tinyfmt.Error
	if errors.As(err, &fe) {
		_ = tinyfmt.Write(w, "  %s\n  %s\n", format, caretLine(format, fe.Offset))
	}
	return &reportedError{err: err}
}

// caretLine points at offset in format, counting display columns so the
// caret lines up under wide characters.
func caretLine(format string, offset int) string {
	off := min(max(offset, 0), len(format))
	return strings.Repeat(" ", runewidth.StringWidth(format[:off])) + "^"
}
