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
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

type literal[E comparable] struct {
	v []E
}

// Literal returns a parser that matches v exactly and returns the matched
// input. If the remaining input is a strict prefix of v, it fails with an end
// of input error.
//
func Literal[E comparable](v []E) Parser[E] {
	return &literal[E]{v}
}

// String returns a Parser matching the literal s.
//
func String(s string) Parser[byte] {
	return Literal([]byte(s))
}

func (l *literal[E]) Parse(c *Cursor[E]) (Value, error) {
	r := c.Remaining()
	n := len(l.v)
	if len(r) < n {
		n = len(r)
	}
	for i := 0; i < n; i++ {
		if r[i] != l.v[i] {
			return nil, c.fail(l.String(), false)
		}
	}
	if n < len(l.v) {
		return nil, c.fail(l.String(), true)
	}
	return c.Consume(n)
}

func (l *literal[E]) String() string {
	if b, ok := interface{}(l.v).([]byte); ok {
		return strconv.Quote(string(b))
	}
	if len(l.v) == 1 {
		return fmt.Sprintf("%v", l.v[0])
	}
	return fmt.Sprintf("%v", l.v)
}

// element matches a single input element equal to v. This is the fallback for
// values that Coerce cannot otherwise convert.
//
type element[E comparable] struct {
	v interface{}
}

func (e *element[E]) Parse(c *Cursor[E]) (Value, error) {
	if c.Empty() {
		return nil, c.fail(e.String(), true)
	}
	if interface{}(c.in[c.pos]) != e.v {
		return nil, c.fail(e.String(), false)
	}
	return c.Consume(1)
}

func (e *element[E]) String() string {
	return fmt.Sprintf("%v", e.v)
}

type pattern struct {
	re   *regexp.Regexp
	desc string
}

// Pattern returns a parser matching the regular expression expr at the start
// of the remaining input. Flags can be set with the usual (?flags) syntax.
//
// The optional desc argument sets the description used in error messages.
//
func Pattern(expr string, desc ...string) (Parser[byte], error) {
	re, err := regexp.Compile(`\A(?:` + expr + `)`)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern %q", expr)
	}
	d := "regular expression " + strconv.Quote(expr)
	if len(desc) > 0 {
		d = desc[0]
	}
	return &pattern{re, d}, nil
}

// MustPattern is like Pattern but panics if expr cannot be compiled.
//
func MustPattern(expr string, desc ...string) Parser[byte] {
	p, err := Pattern(expr, desc...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *pattern) Parse(c *Cursor[byte]) (Value, error) {
	loc := p.re.FindIndex(c.Remaining())
	if loc == nil {
		return nil, c.Fail(p.desc)
	}
	return c.Consume(loc[1])
}

func (p *pattern) String() string {
	return p.desc
}
