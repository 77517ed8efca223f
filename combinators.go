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
	"strings"
)

// attempt runs p atomically: on failure, c is restored to its state before the
// call.
//
func attempt[E comparable](c *Cursor[E], p Parser[E]) (Value, error) {
	c.Begin()
	v, err := p.Parse(c)
	if err != nil {
		c.Rollback()
		return nil, err
	}
	c.Commit()
	return v, nil
}

type many[E comparable] struct {
	p   Parser[E]
	min int
}

// Many returns a parser that applies p repeatedly until it fails or the input
// is exhausted, and returns the joined results. It never fails. Repetition
// also stops after a match that consumed no input.
//
func Many[E comparable](p interface{}) Parser[E] {
	return AtLeast[E](0, p)
}

// AtLeast is like Many but fails if p matches fewer than n times.
//
func AtLeast[E comparable](n int, p interface{}) Parser[E] {
	return &many[E]{Coerce[E](p), n}
}

func (m *many[E]) Parse(c *Cursor[E]) (Value, error) {
	var vs []Value
	c.Begin()
	for !c.Empty() {
		start := c.Pos()
		v, err := attempt(c, m.p)
		if err != nil {
			if IsMismatch(err) {
				break
			}
			c.Rollback()
			return nil, err
		}
		vs = append(vs, v)
		if c.Pos() == start {
			break
		}
	}
	if len(vs) < m.min {
		eof := c.Empty()
		c.Rollback()
		return nil, c.fail(m.String(), eof)
	}
	v, err := joinAll(vs)
	if err != nil {
		c.Rollback()
		return nil, err
	}
	c.Commit()
	return v, nil
}

func (m *many[E]) String() string {
	if m.min > 0 {
		return fmt.Sprintf("at least %d of %s", m.min, describe(m.p))
	}
	return "many " + describe(m.p)
}

type repeat[E comparable] struct {
	p Parser[E]
	n int
}

// Repeat returns a parser that applies p exactly n times and returns the
// joined results. Repeat(Repeat(p, n), m) is equivalent to Repeat(p, n*m).
//
func Repeat[E comparable](p interface{}, n int) Parser[E] {
	q := Coerce[E](p)
	if r, ok := q.(*repeat[E]); ok {
		return &repeat[E]{r.p, r.n * n}
	}
	return &repeat[E]{q, n}
}

func (r *repeat[E]) Parse(c *Cursor[E]) (Value, error) {
	if r.n <= 0 {
		return nil, nil
	}
	vs := make([]Value, 0, r.n)
	c.Begin()
	for i := 0; i < r.n; i++ {
		v, err := r.p.Parse(c)
		if err != nil {
			c.Rollback()
			return nil, err
		}
		vs = append(vs, v)
	}
	v, err := joinAll(vs)
	if err != nil {
		c.Rollback()
		return nil, err
	}
	c.Commit()
	return v, nil
}

func (r *repeat[E]) String() string {
	return fmt.Sprintf("%d times %s", r.n, describe(r.p))
}

type optional[E comparable] struct {
	p Parser[E]
}

// Optional returns a parser that applies p and returns nil without consuming
// any input if p fails.
//
func Optional[E comparable](p interface{}) Parser[E] {
	return &optional[E]{Coerce[E](p)}
}

func (o *optional[E]) Parse(c *Cursor[E]) (Value, error) {
	v, err := attempt(c, o.p)
	if err != nil && IsMismatch(err) {
		return nil, nil
	}
	return v, err
}

func (o *optional[E]) String() string {
	return "optional " + describe(o.p)
}

type not[E comparable] struct {
	p Parser[E]
}

// Not returns a parser that fails if p matches. Otherwise it consumes and
// returns a single unit of input (see Cursor.Step).
//
func Not[E comparable](p interface{}) Parser[E] {
	return &not[E]{Coerce[E](p)}
}

func (n *not[E]) Parse(c *Cursor[E]) (Value, error) {
	c.Begin()
	_, err := n.p.Parse(c)
	c.Rollback()
	if err == nil {
		return nil, c.Errorf("matched unwanted input: %s", describe(n.p))
	}
	if !IsMismatch(err) {
		return nil, err
	}
	return c.Step()
}

func (n *not[E]) String() string {
	return "not " + describe(n.p)
}

type peek[E comparable] struct {
	p Parser[E]
}

// Peek returns a parser that checks that p matches without consuming any
// input. It returns nil on success or p's failure.
//
func Peek[E comparable](p interface{}) Parser[E] {
	return &peek[E]{Coerce[E](p)}
}

func (p *peek[E]) Parse(c *Cursor[E]) (Value, error) {
	c.Begin()
	_, err := p.p.Parse(c)
	c.Rollback()
	return nil, err
}

func (p *peek[E]) String() string {
	return describe(p.p)
}

type oneOf[E comparable] struct {
	ps []Parser[E]
}

// OneOf returns a parser that tries each of ps in order and returns the result
// of the first one that succeeds. Each alternative starts from the same
// position.
//
func OneOf[E comparable](ps ...interface{}) Parser[E] {
	return &oneOf[E]{coerceAll[E](ps)}
}

func (o *oneOf[E]) Parse(c *Cursor[E]) (Value, error) {
	var last error
	for _, p := range o.ps {
		v, err := attempt(c, p)
		if err == nil {
			return v, nil
		}
		if !IsMismatch(err) {
			return nil, err
		}
		last = err
	}
	if last == nil {
		return nil, c.Errorf("none of the alternatives matched: no alternatives")
	}
	return nil, c.Errorf("none of the alternatives matched: %v", last)
}

func (o *oneOf[E]) String() string {
	s := make([]string, len(o.ps))
	for i, p := range o.ps {
		s[i] = describe(p)
	}
	return "one of " + strings.Join(s, ", ")
}

type sepBy[E comparable] struct {
	p, sep Parser[E]
}

// SepBy returns a parser that collects zero or more matches of p separated by
// sep. It returns a []Value holding the results of p and never fails on a
// mismatch.
//
func SepBy[E comparable](p, sep interface{}) Parser[E] {
	return &sepBy[E]{Coerce[E](p), Coerce[E](sep)}
}

func (s *sepBy[E]) Parse(c *Cursor[E]) (Value, error) {
	vs := []Value{}
	for !c.Empty() {
		start := c.Pos()
		c.Begin()
		if len(vs) > 0 {
			if _, err := s.sep.Parse(c); err != nil {
				c.Rollback()
				if IsMismatch(err) {
					break
				}
				return nil, err
			}
		}
		v, err := s.p.Parse(c)
		if err != nil {
			c.Rollback()
			if IsMismatch(err) {
				break
			}
			return nil, err
		}
		c.Commit()
		vs = append(vs, v)
		if c.Pos() == start {
			break
		}
	}
	return vs, nil
}

func (s *sepBy[E]) String() string {
	return fmt.Sprintf("%s separated by %s", describe(s.p), describe(s.sep))
}

type sequence[E comparable] struct {
	ps []Parser[E]
}

// Sequence returns a parser that applies each of ps in order and returns the
// joined results. If any of them fails, no input is consumed.
//
func Sequence[E comparable](ps ...interface{}) Parser[E] {
	return &sequence[E]{coerceAll[E](ps)}
}

func (s *sequence[E]) Parse(c *Cursor[E]) (Value, error) {
	vs := make([]Value, 0, len(s.ps))
	c.Begin()
	for _, p := range s.ps {
		v, err := p.Parse(c)
		if err != nil {
			c.Rollback()
			return nil, err
		}
		vs = append(vs, v)
	}
	v, err := joinAll(vs)
	if err != nil {
		c.Rollback()
		return nil, err
	}
	c.Commit()
	return v, nil
}

func (s *sequence[E]) String() string {
	d := make([]string, len(s.ps))
	for i, p := range s.ps {
		d[i] = describe(p)
	}
	return strings.Join(d, " ")
}

type until[E comparable] struct {
	p     Parser[E]
	atEnd bool
}

// Until returns a parser that consumes input one unit at a time until p
// matches. The input matched by p is not consumed. It returns the consumed
// input.
//
// If the input is exhausted before p matches, Until fails with an end of input
// error. Use UntilEnd to accept input exhaustion instead.
//
func Until[E comparable](p interface{}) Parser[E] {
	return &until[E]{Coerce[E](p), false}
}

// UntilEnd is like Until but returns the consumed input if the input is
// exhausted before p matches.
//
func UntilEnd[E comparable](p interface{}) Parser[E] {
	return &until[E]{Coerce[E](p), true}
}

func (u *until[E]) Parse(c *Cursor[E]) (Value, error) {
	c.Begin()
	start := c.Pos()
	for {
		c.Begin()
		_, err := u.p.Parse(c)
		c.Rollback()
		switch {
		case err == nil:
			c.Commit()
			return c.slice(start, c.pos), nil
		case !IsMismatch(err) || IsEndOfInput(err) && !u.atEnd:
			c.Rollback()
			return nil, err
		}
		if c.Empty() {
			if u.atEnd {
				c.Commit()
				return c.slice(start, c.pos), nil
			}
			err := c.fail(describe(u.p), true)
			c.Rollback()
			return nil, err
		}
		// cannot fail on non-empty input
		c.Step()
	}
}

func (u *until[E]) String() string {
	return "anything until " + describe(u.p)
}

type ignored[E comparable] struct {
	p Parser[E]
}

// Ignored returns a parser that applies p and discards its result.
//
func Ignored[E comparable](p interface{}) Parser[E] {
	return &ignored[E]{Coerce[E](p)}
}

func (i *ignored[E]) Parse(c *Cursor[E]) (Value, error) {
	if _, err := i.p.Parse(c); err != nil {
		return nil, err
	}
	return nil, nil
}

func (i *ignored[E]) String() string {
	return describe(i.p)
}

// SurroundedBy returns a parser matching outer, p, then outer again.
//
func SurroundedBy[E comparable](p, outer interface{}) Parser[E] {
	o := Coerce[E](outer)
	return Sequence[E](o, p, o)
}

// Between returns a parser matching open, p and close, returning only the
// result of p.
//
func Between[E comparable](open, p, close interface{}) Parser[E] {
	return Sequence[E](Ignored[E](open), p, Ignored[E](close))
}

// Trimmed returns a parser matching p with optional leading and trailing
// whitespace. The whitespace is not part of the result.
//
func Trimmed(p interface{}) Parser[byte] {
	ws := Ignored[byte](Optional[byte](Whitespace))
	return Sequence[byte](ws, p, ws)
}

type label[E comparable] struct {
	p    Parser[E]
	name string
}

// Label returns a parser that behaves like p but reports failures as
// "expected name".
//
func Label[E comparable](name string, p interface{}) Parser[E] {
	return &label[E]{Coerce[E](p), name}
}

func (l *label[E]) Parse(c *Cursor[E]) (Value, error) {
	v, err := l.p.Parse(c)
	if err != nil && IsMismatch(err) {
		return nil, c.fail(l.name, IsEndOfInput(err))
	}
	return v, err
}

func (l *label[E]) String() string {
	return l.name
}

type trace[E comparable] struct {
	p    Parser[E]
	name string
}

// Trace returns a parser that behaves like p and logs calls to p along with
// their outcome. Logging is enabled with the WithLogger cursor option.
//
func Trace[E comparable](name string, p interface{}) Parser[E] {
	return &trace[E]{Coerce[E](p), name}
}

func (t *trace[E]) Parse(c *Cursor[E]) (Value, error) {
	if c.log == nil {
		return t.p.Parse(c)
	}
	c.entry().WithField("parser", t.name).Trace("enter")
	v, err := t.p.Parse(c)
	e := c.entry().WithField("parser", t.name)
	if err != nil {
		e.WithError(err).Trace("fail")
	} else {
		e.WithField("value", v).Trace("match")
	}
	return v, err
}

func (t *trace[E]) String() string {
	return t.name
}
