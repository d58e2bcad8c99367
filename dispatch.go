package tinyfmt

// execute renders format with args into s. The sink state on entry is
// restored on every return path; bytes already written stay written.
func execute(s *Sink, format string, args argList) error {
	saved := s.State()
	defer s.SetState(saved)

	cur := &argCursor{args: args}
	pos := 0
	for cur.more() {
		var err error
		if pos, err = scanLiteral(s, format, pos); err != nil {
			return err
		}
		d, end, err := parseDirective(format, pos, cur)
		if err != nil {
			return err
		}
		a, _, ok := cur.take()
		if !ok {
			return formatError("not enough arguments", pos)
		}
		s.SetState(d.State())
		if d.Space {
			err = renderSpaced(s, a, d)
		} else {
			err = a.render(s, d)
		}
		if err != nil {
			return err
		}
		pos = end
	}

	pos, err := scanLiteral(s, format, pos)
	if err != nil {
		return err
	}
	if pos < len(format) {
		return formatError("too many conversion specifiers", pos)
	}
	return nil
}

// renderSpaced implements the ' ' flag: the argument is rendered with a
// forced sign and that '+' becomes a space. Under right alignment the sign
// follows the leading fill, so the rewrite looks past it rather than at
// byte 0; "% 5d" of 5 is "    5".
func renderSpaced(s *Sink, a arg, d Directive) error {
	b := newBuffer()
	defer b.free()
	st := s.State()
	st.Flags |= FlagShowPos
	tmp := NewSink(b)
	tmp.SetState(st)
	if err := a.render(tmp, d); err != nil {
		return err
	}

	out := *b
	i := 0
	if st.Align == AlignRight {
		for i < len(out) && out[i] == st.Fill {
			i++
		}
	}
	if i < len(out) && out[i] == '+' {
		out[i] = ' '
	}
	s.st.Width = 0
	_, err := s.Write(out)
	return err
}
