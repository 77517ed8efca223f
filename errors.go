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

	"github.com/pkg/errors"
)

// Common errors.
//
// Every parse failure returned by a Parser satisfies errors.Is(err,
// ErrMismatch). Failures caused by input exhaustion additionally satisfy
// errors.Is(err, ErrEndOfInput).
//
var (
	ErrMismatch     = errors.New("mismatch")
	ErrEndOfInput   = errors.New("end of input")
	ErrNoCheckpoint = errors.New("no open checkpoint")
)

// Error is a parse failure.
//
type Error struct {
	Pos      int    // offset in the input where the failure was detected
	Expected string // description of what was expected
	Found    string // excerpt of the input found at Pos
	Msg      string // if set, overrides the default message
	EOF      bool   // true if the failure was caused by input exhaustion
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.EOF:
		return fmt.Sprintf("expected %s but encountered end of input", e.Expected)
	default:
		return fmt.Sprintf("expected %s but received %s", e.Expected, e.Found)
	}
}

// Is reports whether e matches target. An *Error always matches ErrMismatch
// and matches ErrEndOfInput only if e.EOF is set.
//
func (e *Error) Is(target error) bool {
	return target == ErrMismatch || (e.EOF && target == ErrEndOfInput)
}

// IsMismatch returns true if err is a parse failure. Combinators only recover
// from this class of errors.
//
func IsMismatch(err error) bool {
	return errors.Is(err, ErrMismatch)
}

// IsEndOfInput returns true if err is a parse failure caused by input
// exhaustion.
//
func IsEndOfInput(err error) bool {
	return errors.Is(err, ErrEndOfInput)
}

// A JoinError is returned when joining two non-empty values of incompatible
// kinds. This is a grammar bug, not a parse failure: combinators never recover
// from it.
//
type JoinError struct {
	Left, Right Value
}

func (e *JoinError) Error() string {
	return fmt.Sprintf("cannot join %T with %T", e.Left, e.Right)
}
