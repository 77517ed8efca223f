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

package text

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/db47h/combi"
	"github.com/pkg/errors"
)

// Number returns a parser for number literals.
//
// For integers, the number base is determined by the number prefix. A prefix of
// “0x” or “0X” selects base 16; a “0b” or “0B”  prefix selects base 2 and the
// “0” prefix selects base 8 (unless the number is a floating point literal,
// which are always in base 10). Otherwise the selected base is 10. Integers are
// returned as *big.Int.
//
// Floating point literals are returned as *big.Float. decimalSep sets the
// decimal separator.
//
// Signs are not part of number literals.
//
func Number(decimalSep rune) combi.Parser[byte] {
	sep := regexp.QuoteMeta(string(decimalSep))
	// a base 8 literal must not be followed by a decimal digit
	endOctal := combi.Or[byte](combi.EOF, combi.Peek[byte](combi.Not[byte](combi.Digit)))

	float := combi.Pipe[byte](
		combi.MustPattern(`(?:[0-9]+`+sep+`[0-9]*|`+sep+`[0-9]+)(?:[eE][+-]?[0-9]+)?|[0-9]+[eE][+-]?[0-9]+`, "floating-point literal"),
		toFloat(decimalSep))
	integer := combi.Pipe[byte](
		combi.Or[byte](
			combi.MustPattern(`0[xX][0-9a-fA-F]+`, "base 16 literal"),
			combi.MustPattern(`0[bB][01]+`, "base 2 literal"),
			combi.Then[byte](combi.MustPattern(`0[0-7]*`, "base 8 literal"), endOctal),
			combi.MustPattern(`[1-9][0-9]*`, "base 10 literal"),
		),
		toInt)

	return combi.Label[byte]("number", combi.Or[byte](float, integer))
}

func toInt(v combi.Value) (combi.Value, error) {
	s := v.(string)
	i, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, errors.Errorf("malformed integer literal %q", s)
	}
	return i, nil
}

func toFloat(decimalSep rune) combi.Transform {
	return func(v combi.Value) (combi.Value, error) {
		s := v.(string)
		if decimalSep != '.' {
			s = strings.Replace(s, string(decimalSep), ".", 1)
		}
		z, ok := new(big.Float).SetString(s)
		if !ok {
			return nil, errors.Errorf("malformed floating-point literal %q", s)
		}
		return z, nil
	}
}

// Identifier returns a parser for identifiers: a letter or underscore followed
// by any number of letters, digits or underscores.
//
func Identifier() combi.Parser[byte] {
	return combi.MustPattern(`[\p{L}_][\p{L}\p{Nd}_]*`, "identifier")
}
