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

/*
Package combi provides a combinatorial parsing engine: recursive-descent
parsers are built by composing small parsers with combinators rather than
generated from a grammar file.

Parsers and cursors

A Parser consumes input from a Cursor and returns a Value:

	type Parser[E comparable] interface {
		Parse(c *Cursor[E]) (Value, error)
	}

The element type E is byte for text input, or any comparable type for
pre-tokenized input. Parsers over text return strings, parsers over other
element types return sub-slices of the input. A nil Value means that a parser
matched but contributed nothing to the result.

A Cursor holds the input and a stack of checkpoints. Combinators call Begin
before trying a sub-parser, then either Commit to keep the consumed input or
Rollback to restore the cursor. A Parser that fails never leaves partially
consumed input behind.

Parsers are immutable once built. A grammar is typically built once, as
package level variables, then used concurrently with a new Cursor per parse:

	v, rest, err := combi.RunString(grammar, input)

Coercion

Combinators accept parsers as interface{} values and convert them with Coerce.
Strings become literals for text input, single elements become one-element
literals for token input and slices become sequences. This is what makes the
following two lines equivalent:

	combi.Sequence[byte](combi.String("a"), combi.String("b"))
	combi.Sequence[byte]("a", "b")

Values

Results are combined with Join: nil is the identity, strings and slices of the
same type are concatenated. Combinators like Sequence and Many join the results
of their sub-parsers, SepBy returns a []Value list, and Pipe maps a result to an
arbitrary value:

	number := combi.Pipe[byte](combi.AtLeast[byte](1, combi.Digit), func(s string) combi.Value {
		n, _ := strconv.Atoi(s)
		return n
	})

Expressions

Expr gives a method chaining syntax to build grammars:

	list := combi.Between[byte]("[", combi.T(number).SepBy(combi.Trimmed(",")), "]")

Error handling

Parse failures are *Error values. Every failure satisfies IsMismatch; failures
caused by the input being exhausted also satisfy IsEndOfInput. Combinators that
try alternatives (Optional, OneOf, Many, SepBy, Not, Peek) only recover from
parse failures: any other error, like a *JoinError caused by joining
incompatible values, is returned as-is.

Use File to convert error offsets to line and column numbers.

Logging

The WithLogger option enables trace logging of cursor checkpoints and of
parsers wrapped with Trace using logrus.

*/
package combi
