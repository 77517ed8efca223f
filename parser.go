// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package combi

import (
	"fmt"
	"reflect"
)

// A Parser consumes input from a Cursor and returns a Value.
//
// On failure, Parse returns an error satisfying IsMismatch. A Parser that
// fails must leave the cursor in the state it was when Parse was called.
//
// Parsers are immutable once built and can be used concurrently on distinct
// cursors.
//
type Parser[E comparable] interface {
	Parse(c *Cursor[E]) (Value, error)
}

// Func adapts a function to the Parser interface. The function is responsible
// for leaving the cursor untouched when it fails, usually by wrapping its work
// in a Begin/Commit/Rollback block.
//
type Func[E comparable] func(c *Cursor[E]) (Value, error)

// Parse calls f(c).
//
func (f Func[E]) Parse(c *Cursor[E]) (Value, error) {
	return f(c)
}

// Run parses in with p. It returns the parsed value along with the remaining
// input. p is converted with Coerce.
//
func Run[E comparable](p interface{}, in []E, opts ...Option) (Value, []E, error) {
	c := NewCursor(in, opts...)
	v, err := Coerce[E](p).Parse(c)
	return v, c.Remaining(), err
}

// RunString is like Run for text input.
//
func RunString(p interface{}, s string, opts ...Option) (Value, string, error) {
	v, rest, err := Run[byte](p, []byte(s), opts...)
	return v, string(rest), err
}

// Coerce converts v to a Parser:
//
//	- a Parser[E] or Expr[E] is returned as-is
//	- a *Match is converted to a literal matching its value
//	- a []E is converted to a literal
//	- for text input (E is byte or rune), a string is a literal
//	- for text input, a rune is a literal matching its UTF-8 encoding
//	- a single E is a literal matching that element
//	- any other slice or array is a Sequence of its coerced elements
//
// Any other value matches a single input element equal to it. Coerce never
// fails: a literal of the wrong type simply never matches.
//
func Coerce[E comparable](v interface{}) Parser[E] {
	switch v := v.(type) {
	case Expr[E]:
		return v.p
	case Parser[E]:
		return v
	case *Match:
		return Coerce[E](unwrap(v))
	case []E:
		return Literal(v)
	case E:
		return Literal([]E{v})
	case string:
		if p := textLiteral[E](v); p != nil {
			return p
		}
	case rune:
		// a single character for text input
		if p := textLiteral[E](string(v)); p != nil {
			return p
		}
	case nil:
		return Literal[E](nil)
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		ps := make([]Parser[E], rv.Len())
		for i := range ps {
			ps[i] = Coerce[E](rv.Index(i).Interface())
		}
		return &sequence[E]{ps}
	}
	return &element[E]{v}
}

func textLiteral[E comparable](s string) Parser[E] {
	var z E
	switch interface{}(z).(type) {
	case byte:
		return Literal(interface{}([]byte(s)).([]E))
	case rune:
		return Literal(interface{}([]rune(s)).([]E))
	}
	return nil
}

func coerceAll[E comparable](vs []interface{}) []Parser[E] {
	ps := make([]Parser[E], len(vs))
	for i, v := range vs {
		ps[i] = Coerce[E](v)
	}
	return ps
}

// describe returns a description of p suitable for error messages.
//
func describe(p interface{}) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", p)
}
