package tinyfmt

import "strings"

// Kind is the target representation selected by a conversion character.
type Kind uint8

const (
	KindOther      Kind = iota // unrecognized conversion: natural form
	KindSigned                 // d i
	KindUnsigned               // u
	KindOctal                  // o
	KindHexLower               // x
	KindHexUpper               // X
	KindPointer                // p
	KindFixed                  // f F
	KindScientific             // e E
	KindGeneral                // g G
	KindChar                   // c
	KindString                 // s
)

var kindNames = [...]string{
	KindOther:      "other",
	KindSigned:     "signed",
	KindUnsigned:   "unsigned",
	KindOctal:      "octal",
	KindHexLower:   "hex",
	KindHexUpper:   "HEX",
	KindPointer:    "pointer",
	KindFixed:      "fixed",
	KindScientific: "scientific",
	KindGeneral:    "general",
	KindChar:       "char",
	KindString:     "string",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func (k Kind) isInteger() bool {
	return k >= KindSigned && k <= KindHexUpper
}

// Directive holds the fully resolved instructions of one conversion
// specifier. Width and precision never refer back to the format string or
// the argument list.
type Directive struct {
	Verb byte
	Kind Kind

	Sharp bool // '#'
	Zero  bool // '0'
	Minus bool // '-'
	Space bool // ' '
	Plus  bool // '+'

	Width        int
	WidthSet     bool
	Precision    int
	PrecisionSet bool

	// Truncate is the maximum number of bytes of a %s argument, or -1.
	Truncate int
}

// State returns the sink state that renders the directive's argument.
func (d Directive) State() State {
	st := DefaultState()
	st.Width = d.Width
	if d.PrecisionSet {
		st.Precision = d.Precision
	}
	if d.Sharp {
		st.Flags |= FlagShowBase | FlagShowPoint
	}
	if d.Plus {
		st.Flags |= FlagShowPos
	}
	switch {
	case d.Minus:
		st.Align = AlignLeft
	case d.Zero:
		st.Fill = '0'
		st.Align = AlignInternal
	}
	switch d.Kind {
	case KindOctal:
		st.Base = 8
	case KindHexUpper:
		st.Flags |= FlagUppercase
		st.Base = 16
	case KindHexLower, KindPointer:
		st.Base = 16
	case KindFixed:
		st.Float = FloatFixed
	case KindScientific:
		st.Float = FloatScientific
	case KindString:
		st.Flags |= FlagBoolAlpha
	}
	switch d.Verb {
	case 'E', 'F', 'G':
		st.Flags |= FlagUppercase
	}
	return st
}

// maxNum bounds widths and precisions, whether literal or taken from '*'.
const maxNum = 1_000_000

const lengthModifiers = "lhLjzt"

// parseDirective parses the specifier starting at format[pos], which must
// be '%'. Arguments for '*' width and precision are taken from cur. It
// returns the directive and the offset just past the conversion character.
// A negative precision, literal ".-N" or from '*', counts as omitted.
func parseDirective(format string, pos int, cur *argCursor) (Directive, int, error) {
	if pos >= len(format) || format[pos] != '%' {
		return Directive{}, pos, formatError("missing specifier", pos)
	}
	d := Directive{Precision: 6, Truncate: -1}
	extra := 0
	c := pos + 1

flags:
	for ; c < len(format); c++ {
		switch format[c] {
		case '#':
			d.Sharp = true
		case '0':
			if !d.Minus {
				d.Zero = true
			}
		case '-':
			d.Minus = true
			d.Zero = false
		case ' ':
			if !d.Plus {
				d.Space = true
			}
		case '+':
			d.Plus = true
			d.Space = false
			extra = 1
		default:
			break flags
		}
	}

	switch {
	case c < len(format) && isDigit(format[c]):
		w, next, ok := parseNum(format, c)
		if !ok {
			return d, c, formatError("width too large", c)
		}
		d.Width, d.WidthSet = w, true
		c = next
	case c < len(format) && format[c] == '*':
		w, err := takeInt(cur, c, "not enough arguments for width")
		if err != nil {
			return d, c, err
		}
		if w > maxNum || w < -maxNum {
			return d, c, formatError("width too large", c)
		}
		if w < 0 {
			d.Minus = true
			d.Zero = false
			w = -w
		}
		d.Width, d.WidthSet = w, true
		c++
	}

	if c < len(format) && format[c] == '.' {
		c++
		switch {
		case c < len(format) && format[c] == '*':
			p, err := takeInt(cur, c, "not enough arguments for precision")
			if err != nil {
				return d, c, err
			}
			if p > maxNum {
				return d, c, formatError("precision too large", c)
			}
			c++
			if p >= 0 {
				d.Precision, d.PrecisionSet = p, true
			}
		case c < len(format) && isDigit(format[c]):
			p, next, ok := parseNum(format, c)
			if !ok {
				return d, c, formatError("precision too large", c)
			}
			d.Precision, d.PrecisionSet = p, true
			c = next
		case c < len(format) && format[c] == '-':
			_, c, _ = parseNum(format, c+1)
		default:
			d.Precision, d.PrecisionSet = 0, true
		}
	}

	for c < len(format) && strings.IndexByte(lengthModifiers, format[c]) >= 0 {
		c++
	}
	if c >= len(format) {
		return d, c, formatError("unterminated specifier", pos)
	}

	d.Verb = format[c]
	switch d.Verb {
	case 'd', 'i':
		d.Kind = KindSigned
	case 'u':
		d.Kind = KindUnsigned
	case 'o':
		d.Kind = KindOctal
	case 'x':
		d.Kind = KindHexLower
	case 'X':
		d.Kind = KindHexUpper
	case 'p':
		d.Kind = KindPointer
	case 'e', 'E':
		d.Kind = KindScientific
	case 'f', 'F':
		d.Kind = KindFixed
	case 'g', 'G':
		d.Kind = KindGeneral
	case 'c':
		d.Kind = KindChar
	case 's':
		d.Kind = KindString
		if d.PrecisionSet {
			d.Truncate = d.Precision
		}
	case 'a', 'A', 'n':
		return d, c, formatError("unsupported conversion", pos)
	default:
		d.Kind = KindOther
	}

	// An integer precision is a minimum digit count.
	if d.Kind.isInteger() && d.PrecisionSet && !d.WidthSet {
		d.Width = d.Precision + extra
		d.Zero = true
		d.Minus = false
	}
	return d, c + 1, nil
}

func takeInt(cur *argCursor, offset int, missing string) (int, error) {
	a, i, ok := cur.take()
	if !ok {
		return 0, formatError(missing, offset)
	}
	n, err := a.asInt()
	if err != nil {
		return 0, &Error{Err: ErrArgumentConversion, Reason: err.Error(), Offset: offset, Arg: i}
	}
	return n, nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// parseNum reads the decimal digits at format[c:]. ok is false when the
// value exceeds maxNum; the digits are consumed either way.
func parseNum(format string, c int) (n, next int, ok bool) {
	ok = true
	for ; c < len(format) && isDigit(format[c]); c++ {
		if n > maxNum {
			ok = false
			continue
		}
		n = n*10 + int(format[c]-'0')
	}
	if n > maxNum {
		ok = false
	}
	return n, c, ok
}
