package tinyfmt

import "io"

// Align controls where fill characters go when a value is narrower than the
// field width.
type Align uint8

const (
	AlignRight    Align = iota // fill before the value
	AlignLeft                  // fill after the value
	AlignInternal              // fill between sign/base prefix and digits
)

// FloatMode selects the notation for floating-point values.
type FloatMode uint8

const (
	FloatGeneral    FloatMode = iota // %g: shortest of fixed and scientific
	FloatFixed                       // %f
	FloatScientific                  // %e
)

// Flag is a set of output switches carried by [State].
type Flag uint8

const (
	FlagShowBase  Flag = 1 << iota // 0x / 0X / 0 prefix for non-zero integers
	FlagShowPoint                  // always print a decimal point
	FlagShowPos                    // '+' in front of non-negative signed numbers
	FlagUppercase                  // upper-case hex digits, exponent, INF and NAN
	FlagBoolAlpha                  // true/false instead of 1/0
)

// State is the formatting state of a [Sink]. Every directive replaces it
// before its argument is rendered, and each top-level call restores the
// state the sink had on entry.
type State struct {
	Width     int
	Precision int
	Fill      byte
	Align     Align
	Base      int
	Float     FloatMode
	Flags     Flag
}

// DefaultState returns the baseline state: no width, precision 6, space
// fill, right alignment, decimal integers and general floats.
func DefaultState() State {
	return State{Precision: 6, Fill: ' ', Base: 10}
}

// Has reports whether every flag in f is set.
func (st State) Has(f Flag) bool { return st.Flags&f == f }

// Sink is an output destination with mutable formatting state.
//
// The width applies to the next formatted value only and is reset to zero
// once that value is written. A Sink is not safe for concurrent use.
type Sink struct {
	w  io.Writer
	st State
	n  int
}

// NewSink returns a Sink writing to w with [DefaultState].
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w, st: DefaultState()}
}

// State returns the current formatting state.
func (s *Sink) State() State { return s.st }

// SetState replaces the formatting state.
func (s *Sink) SetState(st State) { s.st = st }

// Written returns the number of bytes written through s so far.
func (s *Sink) Written() int { return s.n }

// Write writes p unformatted.
func (s *Sink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.n += n
	return n, err
}

// WriteString writes str unformatted.
func (s *Sink) WriteString(str string) (int, error) {
	if str == "" {
		return 0, nil
	}
	n, err := io.WriteString(s.w, str)
	s.n += n
	return n, err
}

// WriteByte writes c unformatted.
func (s *Sink) WriteByte(c byte) error {
	_, err := s.Write([]byte{c})
	return err
}

// pad writes body padded to the current width with fill and resets the
// width. For internal alignment the first split bytes (sign and base
// prefix) stay in front of the fill.
func (s *Sink) pad(body []byte, split int, fill byte) error {
	n := s.st.Width - len(body)
	s.st.Width = 0
	if n <= 0 {
		_, err := s.Write(body)
		return err
	}
	b := newBuffer()
	defer b.free()
	switch s.st.Align {
	case AlignLeft:
		*b = append(*b, body...)
		b.fill(fill, n)
	case AlignInternal:
		*b = append(*b, body[:split]...)
		b.fill(fill, n)
		*b = append(*b, body[split:]...)
	default:
		b.fill(fill, n)
		*b = append(*b, body...)
	}
	_, err := s.Write(*b)
	return err
}

func (s *Sink) padString(str string) error {
	if len(str) >= s.st.Width {
		s.st.Width = 0
		_, err := s.WriteString(str)
		return err
	}
	return s.pad([]byte(str), 0, s.st.Fill)
}
