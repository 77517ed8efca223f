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
	"unicode"
	"unicode/utf8"
)

// Standard text parsers.
//
var (
	Char       = MustPattern(`.`, "character")
	Digit      = MustPattern(`[0-9]`, "digit")
	Letter     = MustPattern(`[A-Za-z]`, "letter")
	Whitespace = MustPattern(`\s+`, "whitespace")
	EOF        = MustPattern(`\z`, "end of input")

	// WordBoundary matches, without consuming any input, at a transition
	// between a word character ([0-9A-Za-z_]) and a non-word character or
	// either end of the input.
	WordBoundary Parser[byte] = Func[byte](wordBoundary)
)

func isWord(r rune) bool {
	return r < utf8.RuneSelf && (r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
}

func wordBoundary(c *Cursor[byte]) (Value, error) {
	var before, after bool
	if r, _ := utf8.DecodeLastRune(c.Consumed()); r != utf8.RuneError {
		before = isWord(r)
	}
	if r, _ := utf8.DecodeRune(c.Remaining()); r != utf8.RuneError {
		after = isWord(r)
	}
	if before == after {
		return nil, c.Fail("word boundary")
	}
	return nil, nil
}

// Any returns a parser that matches any single element.
//
func Any[E comparable]() Parser[E] {
	return Func[E](func(c *Cursor[E]) (Value, error) {
		if c.Empty() {
			return nil, c.Fail("any element")
		}
		return c.Consume(1)
	})
}
