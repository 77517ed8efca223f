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

import "github.com/sirupsen/logrus"

type options struct {
	name string
	log  logrus.Ext1FieldLogger
}

// An Option is a configuration option for a new Cursor.
//
type Option func(*options)

// WithName sets the name of the input. It is reported in log entries.
//
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger enables trace logging of checkpoint operations and of parsers
// wrapped with Trace. Entries are logged at logrus.TraceLevel.
//
func WithLogger(l logrus.Ext1FieldLogger) Option {
	return func(o *options) {
		o.log = l
	}
}
