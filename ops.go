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

// Then returns a Sequence of a followed by more. Operands that are sequences
// are spliced into the result, so Then(Then(a, b), c) and Then(a, Then(b, c))
// both build the flat sequence a b c. Operands are never modified.
//
func Then[E comparable](a interface{}, more ...interface{}) Parser[E] {
	var ps []Parser[E]
	for _, v := range append([]interface{}{a}, more...) {
		p := Coerce[E](v)
		if s, ok := p.(*sequence[E]); ok {
			ps = append(ps, s.ps...)
			continue
		}
		ps = append(ps, p)
	}
	return &sequence[E]{ps}
}

// Or returns a OneOf trying a, then each of more. Like Then, it splices
// operands that are themselves alternations.
//
func Or[E comparable](a interface{}, more ...interface{}) Parser[E] {
	var ps []Parser[E]
	for _, v := range append([]interface{}{a}, more...) {
		p := Coerce[E](v)
		if o, ok := p.(*oneOf[E]); ok {
			ps = append(ps, o.ps...)
			continue
		}
		ps = append(ps, p)
	}
	return &oneOf[E]{ps}
}

// Times returns a parser matching p n times. For literals, this is the literal
// repeated n times; otherwise it is Repeat(p, n).
//
func Times[E comparable](p interface{}, n int) Parser[E] {
	q := Coerce[E](p)
	if l, ok := q.(*literal[E]); ok {
		if n < 0 {
			n = 0
		}
		v := make([]E, 0, len(l.v)*n)
		for i := 0; i < n; i++ {
			v = append(v, l.v...)
		}
		return &literal[E]{v}
	}
	return Repeat[E](q, n)
}

// Neg is an alias for Not.
//
func Neg[E comparable](p interface{}) Parser[E] {
	return Not[E](p)
}

// A Transform maps a parse result to another value.
//
type Transform func(Value) (Value, error)

type pipe[E comparable] struct {
	p  Parser[E]
	fs []Transform
}

// Pipe returns a parser that applies p then passes its result through each of
// fs in turn. Each f can be:
//
//	- a Transform or func(Value) (Value, error)
//	- a func(Value) Value
//	- a func(string) Value, for text parsers
//	- any other value, which is returned in place of the result
//
// Piping a pipe extends its list of functions, so Pipe(Pipe(p, f), g) is
// equivalent to Pipe(p, Compose(f, g)).
//
// An error returned by a function aborts the parse; no input is consumed.
//
func Pipe[E comparable](p interface{}, fs ...interface{}) Parser[E] {
	q := Coerce[E](p)
	var chain []Transform
	if pp, ok := q.(*pipe[E]); ok {
		q = pp.p
		chain = append(chain, pp.fs...)
	}
	for _, f := range fs {
		chain = append(chain, transform(f))
	}
	return &pipe[E]{q, chain}
}

// Compose returns a Transform applying each of fs in order. See Pipe for the
// accepted function types.
//
func Compose(fs ...interface{}) Transform {
	ts := make([]Transform, len(fs))
	for i, f := range fs {
		ts[i] = transform(f)
	}
	return func(v Value) (Value, error) {
		return apply(ts, v)
	}
}

func transform(f interface{}) Transform {
	switch f := f.(type) {
	case Transform:
		return f
	case func(Value) (Value, error):
		return f
	case func(Value) Value:
		return func(v Value) (Value, error) { return f(v), nil }
	case func(string) Value:
		return func(v Value) (Value, error) {
			s, _ := unwrap(v).(string)
			return f(s), nil
		}
	}
	return func(Value) (Value, error) { return f, nil }
}

func apply(ts []Transform, v Value) (_ Value, err error) {
	for _, t := range ts {
		if v, err = t(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (p *pipe[E]) Parse(c *Cursor[E]) (Value, error) {
	c.Begin()
	v, err := p.p.Parse(c)
	if err == nil {
		v, err = apply(p.fs, v)
	}
	if err != nil {
		c.Rollback()
		return nil, err
	}
	c.Commit()
	return v, nil
}

func (p *pipe[E]) String() string {
	return describe(p.p)
}

// Expr wraps a Parser to build grammars with method chaining:
//
//	X[byte]("a").Then("b").Or("c").Many()
//
// is equivalent to
//
//	Many[byte](Or[byte](Then[byte]("a", "b"), "c"))
//
type Expr[E comparable] struct {
	p Parser[E]
}

// X returns an Expr over the parser obtained by coercing v.
//
func X[E comparable](v interface{}) Expr[E] {
	return Expr[E]{Coerce[E](v)}
}

// T returns an Expr over text input.
//
func T(v interface{}) Expr[byte] {
	return X[byte](v)
}

// Parse implements Parser.
//
func (x Expr[E]) Parse(c *Cursor[E]) (Value, error) {
	return x.p.Parse(c)
}

// Parser returns the wrapped parser.
//
func (x Expr[E]) Parser() Parser[E] { return x.p }

// Then is the method form of Then.
func (x Expr[E]) Then(v ...interface{}) Expr[E] { return Expr[E]{Then[E](x.p, v...)} }

// Or is the method form of Or.
func (x Expr[E]) Or(v ...interface{}) Expr[E] { return Expr[E]{Or[E](x.p, v...)} }

// Times is the method form of Times.
func (x Expr[E]) Times(n int) Expr[E] { return Expr[E]{Times[E](x.p, n)} }

// Not is the method form of Not.
func (x Expr[E]) Not() Expr[E] { return Expr[E]{Not[E](x.p)} }

// Pipe is the method form of Pipe.
func (x Expr[E]) Pipe(fs ...interface{}) Expr[E] { return Expr[E]{Pipe[E](x.p, fs...)} }

// Many is the method form of Many.
func (x Expr[E]) Many() Expr[E] { return Expr[E]{Many[E](x.p)} }

// AtLeast is the method form of AtLeast.
func (x Expr[E]) AtLeast(n int) Expr[E] { return Expr[E]{AtLeast[E](n, x.p)} }

// Optional is the method form of Optional.
func (x Expr[E]) Optional() Expr[E] { return Expr[E]{Optional[E](x.p)} }

// Ignored is the method form of Ignored.
func (x Expr[E]) Ignored() Expr[E] { return Expr[E]{Ignored[E](x.p)} }

// Label is the method form of Label.
func (x Expr[E]) Label(name string) Expr[E] { return Expr[E]{Label[E](name, x.p)} }

// SepBy is the method form of SepBy.
func (x Expr[E]) SepBy(sep interface{}) Expr[E] {
	return Expr[E]{SepBy[E](x.p, sep)}
}

// SurroundedBy is the method form of SurroundedBy.
func (x Expr[E]) SurroundedBy(outer interface{}) Expr[E] {
	return Expr[E]{SurroundedBy[E](x.p, outer)}
}

func (x Expr[E]) String() string {
	return describe(x.p)
}
