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

// Package text provides parsers for common lexical elements of programming
// languages: quoted strings, quoted characters, numbers and identifiers.
//
// Values returned by these parsers are decoded: QuotedString returns the
// unquoted string, QuotedChar a rune, Number a *big.Int or *big.Float.
//
// Unlike hand-written lexer states, the parsers returned by this package hold
// no buffers and can be shared between goroutines.
//
package text

import (
	"fmt"
	"unicode/utf8"

	"github.com/db47h/combi"
)

const (
	errEnd     = -2
	errRawByte = -1
	errNone    = iota
	errEOL
	errInvalidEscape
	errInvalidRune
	errInvalidHex
	errInvalidOctal
	errSize
	errEmpty
)

var msg = [...]string{
	errNone:          "",
	errEOL:           "unterminated %s",
	errInvalidEscape: "unknown escape sequence",
	errInvalidRune:   "escape sequence is invalid Unicode code point",
	errInvalidHex:    "non-hex character in escape sequence: %#U",
	errInvalidOctal:  "non-octal character in escape sequence: %#U",
	errSize:          "invalid character literal (more than 1 character)",
	errEmpty:         "empty character literal or unescaped %c in character literal",
}

// reader reads runes from a cursor and keeps track of the position of the
// last rune read for error reporting.
//
type reader struct {
	c   *combi.Cursor[byte]
	pos int
}

// next reads a single rune. It returns false at the end of a line or at the
// end of input.
//
func (rd *reader) next() (rune, bool) {
	rd.pos = rd.c.Pos()
	m, err := rd.c.Match(combi.Char)
	if err != nil {
		return utf8.RuneError, false
	}
	r, _ := utf8.DecodeRuneInString(m.Raw.(string))
	return r, true
}

func (rd *reader) errorf(pos int, code int, args ...interface{}) *combi.Error {
	return &combi.Error{
		Pos: pos,
		Msg: fmt.Sprintf(msg[code], args...),
		EOF: code == errEOL && rd.c.Empty(),
	}
}

// QuotedString returns a parser for Go double-quoted string literals. It
// supports the same escape sequences as Go. The result is the unquoted string.
//
func QuotedString() combi.Parser[byte] {
	return quotedString('"')
}

func quotedString(quote rune) combi.Parser[byte] {
	open := combi.String(string(quote))
	return combi.Func[byte](func(c *combi.Cursor[byte]) (combi.Value, error) {
		pos := c.Pos()
		c.Begin()
		if _, err := open.Parse(c); err != nil {
			c.Rollback()
			return nil, c.Fail("string")
		}
		v, err := readString(&reader{c: c}, quote, pos)
		if err != nil {
			c.Rollback()
			return nil, err
		}
		c.Commit()
		return v, nil
	})
}

func readString(rd *reader, quote rune, pos int) (string, error) {
	var (
		s  = make([]byte, 0, 64)
		rb [utf8.UTFMax]byte
	)
	for {
		r, code := readChar(rd, quote)
		switch code {
		case errNone:
			s = append(s, rb[:utf8.EncodeRune(rb[:], r)]...)
		case errRawByte:
			s = append(s, byte(r))
		case errEnd:
			return string(s), nil
		case errEOL:
			return "", rd.errorf(pos, errEOL, "string")
		case errInvalidEscape, errInvalidRune:
			return "", rd.errorf(rd.pos, code)
		case errInvalidHex, errInvalidOctal:
			return "", rd.errorf(rd.pos, code, r)
		}
	}
}

// QuotedChar returns a parser for Go character literals. The result is a rune.
//
func QuotedChar() combi.Parser[byte] {
	const quote = '\''
	open := combi.String(string(quote))
	return combi.Func[byte](func(c *combi.Cursor[byte]) (combi.Value, error) {
		pos := c.Pos()
		c.Begin()
		if _, err := open.Parse(c); err != nil {
			c.Rollback()
			return nil, c.Fail("character literal")
		}
		rd := &reader{c: c}
		r, err := readQuotedChar(rd, quote, pos)
		if err != nil {
			c.Rollback()
			return nil, err
		}
		c.Commit()
		return r, nil
	})
}

func readQuotedChar(rd *reader, quote rune, pos int) (rune, error) {
	r, code := readChar(rd, quote)
	switch code {
	case errNone, errRawByte:
		if n, ok := rd.next(); ok && n == quote {
			return r, nil
		}
		return 0, rd.errorf(rd.pos, errSize)
	case errEnd:
		return 0, rd.errorf(rd.pos, errEmpty, quote)
	case errEOL:
		return 0, rd.errorf(pos, errEOL, "character literal")
	case errInvalidEscape, errInvalidRune:
		return 0, rd.errorf(rd.pos, code)
	default:
		return 0, rd.errorf(rd.pos, code, r)
	}
}

func readChar(rd *reader, quote rune) (r rune, code int) {
	r, ok := rd.next()
	if !ok {
		return r, errEOL
	}
	switch r {
	case quote:
		return r, errEnd
	case '\\':
		if r, ok = rd.next(); !ok {
			return r, errEOL
		}
		switch r {
		case 'a':
			return '\a', errNone
		case 'b':
			return '\b', errNone
		case 'f':
			return '\f', errNone
		case 'n':
			return '\n', errNone
		case 'r':
			return '\r', errNone
		case 't':
			return '\t', errNone
		case 'v':
			return '\v', errNone
		case '\\':
			return '\\', errNone
		case quote:
			return r, errNone
		case 'U':
			r, code := readDigits(rd, 8, 16, 0)
			if code == errNone && !utf8.ValidRune(r) {
				return utf8.RuneError, errInvalidRune
			}
			return r, code
		case 'u':
			r, code := readDigits(rd, 4, 16, 0)
			if code == errNone && !utf8.ValidRune(r) {
				return utf8.RuneError, errInvalidRune
			}
			return r, code
		case 'x':
			r, code = readDigits(rd, 2, 16, 0)
		case '0', '1', '2', '3', '4', '5', '6', '7':
			r, code = readDigits(rd, 2, 8, r-'0')
		case '8', '9':
			return r, errInvalidOctal
		default:
			return r, errInvalidEscape
		}
		if code == errNone {
			code = errRawByte
		}
		return r, code
	}
	return r, errNone
}

// readDigits reads n digits in base b and returns v followed by the value of
// the digits. On error, the returned rune is the offending character.
//
func readDigits(rd *reader, n int, b rune, v rune) (rune, int) {
	for i := 0; i < n; i++ {
		var rl rune
		r, ok := rd.next()
		if !ok {
			return v, errEOL
		}
		switch {
		case r >= 'a':
			rl = r - 'a' + 10
		case r >= 'A':
			rl = r - 'A' + 10
		default:
			rl = r - '0'
		}
		if rl < 0 || rl >= b {
			if b == 8 {
				return r, errInvalidOctal
			}
			return r, errInvalidHex
		}
		v = v*b + rl
	}
	return v, errNone
}
