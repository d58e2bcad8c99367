package tinyfmt

import (
	"fmt"
	"io"
	"iter"
)

// WriteIter formats each record from seq with the same format string and
// writes it to w followed by a newline, as records arrive. All records share
// one sink, so a [*Sink] passed as w keeps its state between records.
// Iteration stops at the first error, which names the failing record.
func WriteIter(w io.Writer, format string, seq iter.Seq[[]any]) error {
	s, ok := w.(*Sink)
	if !ok {
		s = NewSink(w)
	}
	n := 0
	var streamErr error
	seq(func(record []any) bool {
		if err := execute(s, format, newArgList(record)); err != nil {
			streamErr = fmt.Errorf("record %d: %w", n, err)
			return false
		}
		if err := s.WriteByte('\n'); err != nil {
			streamErr = err
			return false
		}
		n++
		return true
	})
	return streamErr
}

// WriteChan formats records from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, format string, ch <-chan []any) error {
	return WriteIter(w, format, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
