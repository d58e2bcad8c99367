package tinyfmt

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// Renderer is implemented by values that write their own representation.
// When Render is called the sink's [State] already reflects d.
type Renderer interface {
	Render(s *Sink, d Directive) error
}

// Integer is implemented by values that can supply a '*' width or
// precision.
type Integer interface {
	Int() (int, error)
}

var errNotInteger = errors.New("not an integer")

// arg is one caller value with its type erased. It borrows the value for
// the duration of a single call.
type arg struct {
	v any
}

func (a arg) render(s *Sink, d Directive) error {
	if r, ok := a.v.(Renderer); ok {
		return r.Render(s, d)
	}
	if d.Kind == KindChar {
		if r, ok := toRune(a.v); ok {
			return s.writeRune(r)
		}
	}
	if d.Kind == KindPointer {
		if p, ok := toPointer(a.v); ok {
			return s.writePointer(p)
		}
	}
	if d.Truncate >= 0 {
		return a.renderTruncated(s, d.Truncate)
	}
	return renderValue(s, a.v, d.Kind)
}

// renderTruncated writes at most n bytes of the value's default form,
// padded under the sink's width.
func (a arg) renderTruncated(s *Sink, n int) error {
	b := newBuffer()
	defer b.free()
	tmp := NewSink(b)
	st := DefaultState()
	st.Flags |= FlagBoolAlpha
	tmp.SetState(st)
	if err := renderValue(tmp, a.v, KindString); err != nil {
		return err
	}
	body := *b
	if len(body) > n {
		body = body[:n]
	}
	return s.pad(body, 0, s.st.Fill)
}

func (a arg) asInt() (int, error) {
	if i, ok := a.v.(Integer); ok {
		return i.Int()
	}
	rv := reflect.ValueOf(a.v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n > math.MaxInt || n < math.MinInt {
			return 0, fmt.Errorf("%w: %d overflows int", errNotInteger, n)
		}
		return int(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, fmt.Errorf("%w: %d overflows int", errNotInteger, u)
		}
		return int(u), nil
	case reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt || f < math.MinInt {
			return 0, fmt.Errorf("%w: %v", errNotInteger, f)
		}
		return int(f), nil
	}
	return 0, fmt.Errorf("%w: %T", errNotInteger, a.v)
}

func toRune(v any) (rune, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rune(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rune(rv.Uint()), true
	}
	return 0, false
}

func toPointer(v any) (uintptr, bool) {
	if v == nil {
		return 0, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return rv.Pointer(), true
	}
	return 0, false
}

// argList is the fixed sequence of arguments of one call.
type argList []arg

func newArgList(vs []any) argList {
	args := make(argList, len(vs))
	for i, v := range vs {
		args[i] = arg{v: v}
	}
	return args
}

// argCursor is the shared read position into an argList. Widths,
// precisions and values all advance the same cursor.
type argCursor struct {
	args argList
	next int
}

func (c *argCursor) more() bool { return c.next < len(c.args) }

// take returns the next argument and its index.
func (c *argCursor) take() (arg, int, bool) {
	if !c.more() {
		return arg{}, c.next, false
	}
	i := c.next
	c.next++
	return c.args[i], i, true
}
