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
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// foundMax is the maximum number of input bytes quoted in error messages.
const foundMax = 16

// A Cursor holds the input of a parse along with a stack of checkpoints. It is
// the only mutable state involved in a parse: parsers advance it as they
// consume input and use checkpoints to backtrack.
//
// A Cursor must not be used concurrently.
//
type Cursor[E comparable] struct {
	in    []E
	pos   int   // in[:pos] is consumed, in[pos:] remaining
	stack []int // checkpoints
	name  string
	log   logrus.Ext1FieldLogger
}

// NewCursor returns a new Cursor over in.
//
func NewCursor[E comparable](in []E, opts ...Option) *Cursor[E] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Cursor[E]{in: in, name: o.name, log: o.log}
}

// NewTextCursor returns a new Cursor over the bytes of s.
//
func NewTextCursor(s string, opts ...Option) *Cursor[byte] {
	return NewCursor([]byte(s), opts...)
}

// Begin pushes a checkpoint. Every call to Begin must be matched by exactly one
// call to either Commit or Rollback.
//
func (c *Cursor[E]) Begin() {
	c.stack = append(c.stack, c.pos)
	c.trace("begin")
}

// Commit discards the last checkpoint and keeps the current state.
// It panics if there is no open checkpoint.
//
func (c *Cursor[E]) Commit() {
	c.pop()
	c.trace("commit")
}

// Rollback discards the last checkpoint and restores the state saved by the
// matching call to Begin. It panics if there is no open checkpoint.
//
func (c *Cursor[E]) Rollback() {
	c.pos = c.pop()
	c.trace("rollback")
}

func (c *Cursor[E]) pop() int {
	l := len(c.stack) - 1
	if l < 0 {
		panic(errors.WithStack(ErrNoCheckpoint))
	}
	p := c.stack[l]
	c.stack = c.stack[:l]
	return p
}

// Depth returns the number of open checkpoints.
//
func (c *Cursor[E]) Depth() int {
	return len(c.stack)
}

// Consume consumes and returns the next n elements. It fails with an end of
// input error if fewer than n elements remain. It panics if n is negative.
//
func (c *Cursor[E]) Consume(n int) (Value, error) {
	if n < 0 {
		panic(errors.Errorf("negative element count %d", n))
	}
	if n > len(c.in)-c.pos {
		return nil, c.fail(fmt.Sprintf("%d more elements", n), true)
	}
	c.pos += n
	return c.slice(c.pos-n, c.pos), nil
}

// Step consumes a single unit of input: one element, or a whole UTF-8 encoded
// rune for text input.
//
func (c *Cursor[E]) Step() (Value, error) {
	if c.Empty() {
		return nil, c.fail("any character", true)
	}
	n := 1
	if b, ok := interface{}(c.in[c.pos:]).([]byte); ok {
		_, n = utf8.DecodeRune(b)
	}
	return c.Consume(n)
}

// Match applies p to c and returns the result along with the input consumed
// by p. Non-parser values are converted with Coerce.
//
func (c *Cursor[E]) Match(p interface{}) (*Match, error) {
	start := c.pos
	v, err := Coerce[E](p).Parse(c)
	if err != nil {
		return nil, err
	}
	return &Match{Value: v, Raw: c.slice(start, c.pos)}, nil
}

// Empty returns true if there is no input left.
//
func (c *Cursor[E]) Empty() bool {
	return c.pos >= len(c.in)
}

// Len returns the number of remaining elements.
//
func (c *Cursor[E]) Len() int {
	return len(c.in) - c.pos
}

// Pos returns the offset of the first remaining element.
//
func (c *Cursor[E]) Pos() int {
	return c.pos
}

// Remaining returns the remaining input.
//
func (c *Cursor[E]) Remaining() []E {
	return c.in[c.pos:]
}

// Consumed returns the input consumed so far.
//
func (c *Cursor[E]) Consumed() []E {
	return c.in[:c.pos:c.pos]
}

// Fail returns a parse failure at the current position stating that expected
// was expected. The failure is an end of input failure if c is empty.
//
func (c *Cursor[E]) Fail(expected string) *Error {
	return c.fail(expected, c.Empty())
}

// Errorf returns a parse failure at the current position with a custom message.
//
func (c *Cursor[E]) Errorf(format string, args ...interface{}) *Error {
	return &Error{Pos: c.pos, Msg: fmt.Sprintf(format, args...), EOF: c.Empty()}
}

func (c *Cursor[E]) fail(expected string, eof bool) *Error {
	return &Error{Pos: c.pos, Expected: expected, Found: c.found(), EOF: eof}
}

// found returns a short description of the remaining input for use in error
// messages.
//
func (c *Cursor[E]) found() string {
	if c.Empty() {
		return "end of input"
	}
	if b, ok := interface{}(c.in[c.pos:]).([]byte); ok {
		if len(b) <= foundMax {
			return strconv.Quote(string(b))
		}
		n := foundMax
		for n > 0 && !utf8.RuneStart(b[n]) {
			n--
		}
		return strconv.Quote(string(b[:n])) + "..."
	}
	return fmt.Sprintf("%v", c.in[c.pos])
}

// slice returns in[lo:hi] as a Value.
//
func (c *Cursor[E]) slice(lo, hi int) Value {
	s := c.in[lo:hi:hi]
	if b, ok := interface{}(s).([]byte); ok {
		return string(b)
	}
	return s
}

func (c *Cursor[E]) trace(msg string) {
	if c.log == nil {
		return
	}
	c.entry().Trace(msg)
}

func (c *Cursor[E]) entry() *logrus.Entry {
	f := logrus.Fields{"pos": c.pos, "depth": len(c.stack)}
	if c.name != "" {
		f["input"] = c.name
	}
	return c.log.WithFields(f)
}

func (c *Cursor[E]) String() string {
	return fmt.Sprintf("Cursor{pos: %d, remaining: %d, checkpoints: %d}", c.pos, c.Len(), len(c.stack))
}
