package tinyfmt

import "strings"

// scanLiteral copies format[pos:] to s up to the next unescaped '%' and
// returns its offset, or len(format) when there is none. "%%" is written as
// a single '%'.
func scanLiteral(s *Sink, format string, pos int) (int, error) {
	start := pos
	for {
		i := strings.IndexByte(format[pos:], '%')
		if i < 0 {
			_, err := s.WriteString(format[start:])
			return len(format), err
		}
		pos += i
		if pos+1 < len(format) && format[pos+1] == '%' {
			if _, err := s.WriteString(format[start : pos+1]); err != nil {
				return pos, err
			}
			pos += 2
			start = pos
			continue
		}
		_, err := s.WriteString(format[start:pos])
		return pos, err
	}
}
