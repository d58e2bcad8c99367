package tinyfmt

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"
)

// renderValue writes v in its natural form under the sink's state.
func renderValue(s *Sink, v any, kind Kind) error {
	switch x := v.(type) {
	case nil:
		return s.padString("<nil>")
	case string:
		return s.padString(x)
	case []byte:
		return s.pad(x, 0, s.st.Fill)
	case bool:
		return s.writeBool(x)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return s.padString("<nil>")
	}
	if !isNumeric(rv.Kind()) || kind == KindString || kind == KindOther {
		switch x := v.(type) {
		case error:
			return s.padString(x.Error())
		case fmt.Stringer:
			return s.padString(x.String())
		}
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return s.writeSigned(rv.Int(), rv.Type().Bits(), kind == KindUnsigned)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return s.writeInteger(rv.Uint(), false, false)
	case reflect.Float32:
		return s.writeFloat(rv.Float(), 32)
	case reflect.Float64:
		return s.writeFloat(rv.Float(), 64)
	case reflect.String:
		return s.padString(rv.String())
	case reflect.Bool:
		return s.writeBool(rv.Bool())
	}
	return s.padString(fmt.Sprint(v))
}

func isNumeric(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

// writeSigned writes a signed integer of the given bit size. Outside base 10,
// and for unsigned conversions, negative values print as their two's
// complement.
func (s *Sink) writeSigned(v int64, bits int, unsigned bool) error {
	switch {
	case v < 0 && (unsigned || s.st.Base != 10):
		return s.writeInteger(uint64(v)&mask(bits), false, false)
	case v < 0:
		return s.writeInteger(uint64(-v), true, true)
	default:
		return s.writeInteger(uint64(v), false, !unsigned)
	}
}

func mask(bits int) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}
	return 1<<uint(bits) - 1
}

func (s *Sink) writeInteger(u uint64, neg, signed bool) error {
	st := s.st
	base := st.Base
	if base != 8 && base != 16 {
		base = 10
	}
	upper := st.Has(FlagUppercase)

	b := newBuffer()
	defer b.free()
	switch {
	case neg:
		*b = append(*b, '-')
	case signed && base == 10 && st.Has(FlagShowPos):
		*b = append(*b, '+')
	}
	if st.Has(FlagShowBase) && u != 0 {
		switch {
		case base == 16 && upper:
			*b = append(*b, "0X"...)
		case base == 16:
			*b = append(*b, "0x"...)
		case base == 8:
			*b = append(*b, '0')
		}
	}
	split := len(*b)
	*b = strconv.AppendUint(*b, u, base)
	if upper {
		upperASCII((*b)[split:])
	}
	return s.pad(*b, split, st.Fill)
}

func (s *Sink) writeBool(v bool) error {
	if s.st.Has(FlagBoolAlpha) {
		return s.padString(strconv.FormatBool(v))
	}
	var u uint64
	if v {
		u = 1
	}
	return s.writeInteger(u, false, true)
}

func (s *Sink) writeRune(r rune) error {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	return s.pad(tmp[:n], 0, s.st.Fill)
}

func (s *Sink) writePointer(p uintptr) error {
	b := newBuffer()
	defer b.free()
	*b = append(*b, "0x"...)
	*b = strconv.AppendUint(*b, uint64(p), 16)
	return s.pad(*b, 2, s.st.Fill)
}

func (s *Sink) writeFloat(f float64, bits int) error {
	st := s.st
	b := newBuffer()
	defer b.free()

	nan := math.IsNaN(f)
	switch {
	case math.Signbit(f) && !nan:
		*b = append(*b, '-')
	case st.Has(FlagShowPos):
		*b = append(*b, '+')
	}
	split := len(*b)
	fill := st.Fill
	switch {
	case nan:
		*b = append(*b, "nan"...)
	case math.IsInf(f, 0):
		*b = append(*b, "inf"...)
	default:
		*b = appendFloat(*b, math.Abs(f), st, bits)
	}
	if nan || math.IsInf(f, 0) {
		// Zero padding never applies to non-finite values.
		fill, split = ' ', 0
		if s.st.Align == AlignInternal {
			s.st.Align = AlignRight
			defer func() { s.st.Align = st.Align }()
		}
	}
	if st.Has(FlagUppercase) {
		upperASCII((*b)[split:])
	}
	return s.pad(*b, split, fill)
}

// appendFloat appends the digits of a non-negative finite f.
func appendFloat(dst []byte, f float64, st State, bits int) []byte {
	prec := st.Precision
	if prec < 0 {
		prec = 6
	}
	start := len(dst)
	switch st.Float {
	case FloatFixed:
		dst = strconv.AppendFloat(dst, f, 'f', prec, bits)
	case FloatScientific:
		dst = strconv.AppendFloat(dst, f, 'e', prec, bits)
	default:
		if prec == 0 {
			prec = 1
		}
		dst = strconv.AppendFloat(dst, f, 'g', prec, bits)
	}
	if st.Has(FlagShowPoint) {
		dst = keepPoint(dst, start, st.Float == FloatGeneral, prec)
	}
	return dst
}

// keepPoint makes sure the number in dst[start:] has a decimal point. In
// general notation it also restores trailing zeros up to prec significant
// digits.
func keepPoint(dst []byte, start int, general bool, prec int) []byte {
	var tail []byte
	if i := bytes.IndexAny(dst[start:], "eE"); i >= 0 {
		tail = append(tail, dst[start+i:]...)
		dst = dst[:start+i]
	}
	mant := dst[start:]
	hasPoint := bytes.IndexByte(mant, '.') >= 0
	if !hasPoint {
		dst = append(dst, '.')
	}
	if general {
		digits := prec
		seen := false
		for _, c := range mant {
			if c == '.' {
				continue
			}
			if c != '0' {
				seen = true
			}
			if seen {
				digits--
			}
		}
		if !seen {
			// a bare zero still counts as one digit
			digits--
		}
		for ; digits > 0; digits-- {
			dst = append(dst, '0')
		}
	}
	return append(dst, tail...)
}

func upperASCII(p []byte) {
	for i, c := range p {
		if 'a' <= c && c <= 'z' {
			p[i] = c - 'a' + 'A'
		}
	}
}
