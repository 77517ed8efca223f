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
	"strings"

	"github.com/pkg/errors"
)

// Value is the result of a parse. A nil Value is the absence of a value: it
// is what parsers like Optional or Ignored return when they contribute nothing
// to the result, and it is the identity element for Join.
//
// Parsers over text return string values, parsers over other element types
// return []E slices. Sub-slices returned by a Cursor are capacity-limited, so
// joining them never writes into the input.
//
type Value = interface{}

// A Match is a Value along with the input slice that produced it. See
// Cursor.Match.
//
// For the purpose of Join and Equal, a Match behaves as its Value.
//
type Match struct {
	Value Value
	Raw   Value // input consumed by the parser that produced Value
}

func (m *Match) String() string {
	return fmt.Sprint(m.Value)
}

func unwrap(v Value) Value {
	for {
		m, ok := v.(*Match)
		if !ok {
			return v
		}
		v = m.Value
	}
}

// IsNil returns true if v is nil or an empty string, slice, array or map.
//
func IsNil(v Value) bool {
	v = unwrap(v)
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

// Equal compares two values. Absent values are equal to empty strings and
// collections. Otherwise values are compared with reflect.DeepEqual.
//
func Equal(a, b Value) bool {
	a, b = unwrap(a), unwrap(b)
	if na, nb := IsNil(a), IsNil(b); na || nb {
		return na && nb
	}
	return reflect.DeepEqual(a, b)
}

// Join combines two values:
//
//	- nil is the identity: Join(nil, v) == Join(v, nil) == v
//	- strings and slices of the same type are concatenated, including
//	  values of named string types
//	- an empty value of a different kind is treated as nil
//
// Any other combination returns a *JoinError.
//
func Join(a, b Value) (Value, error) {
	a, b = unwrap(a), unwrap(b)
	switch {
	case a == nil:
		return b, nil
	case b == nil:
		return a, nil
	}
	if s, ok := a.(string); ok {
		if t, ok := b.(string); ok {
			return s + t, nil
		}
	}
	if s, ok := a.([]Value); ok {
		if t, ok := b.([]Value); ok {
			return append(append(make([]Value, 0, len(s)+len(t)), s...), t...), nil
		}
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() == reflect.Slice && ra.Type() == rb.Type() {
		z := reflect.MakeSlice(ra.Type(), 0, ra.Len()+rb.Len())
		z = reflect.AppendSlice(z, ra)
		z = reflect.AppendSlice(z, rb)
		return z.Interface(), nil
	}
	if ra.Kind() == reflect.String && ra.Type() == rb.Type() {
		return reflect.ValueOf(ra.String() + rb.String()).Convert(ra.Type()).Interface(), nil
	}
	switch {
	case IsNil(a):
		return b, nil
	case IsNil(b):
		return a, nil
	}
	return nil, errors.WithStack(&JoinError{a, b})
}

// joinAll folds vs with Join. The all-strings case, by far the most common
// with text input, goes through a strings.Builder.
//
func joinAll(vs []Value) (Value, error) {
	var (
		n      int
		hasStr bool
	)
	for _, v := range vs {
		switch v := unwrap(v).(type) {
		case nil:
		case string:
			n += len(v)
			hasStr = true
		default:
			return fold(vs)
		}
	}
	if !hasStr {
		return nil, nil
	}
	var b strings.Builder
	b.Grow(n)
	for _, v := range vs {
		if s, ok := unwrap(v).(string); ok {
			b.WriteString(s)
		}
	}
	return b.String(), nil
}

func fold(vs []Value) (acc Value, err error) {
	for _, v := range vs {
		if acc, err = Join(acc, v); err != nil {
			return nil, err
		}
	}
	return acc, nil
}
