// Copyright 2017-2018 Denis Bernard <db047h@gmail.com>
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
	"bytes"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/width"
)

// Position describes an arbitrary source position including the file, line, and column location.
//
type Position struct {
	Filename string
	Line     int // 1-based line number
	Column   int // 1-based column number (byte index)
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A File wraps text input and handles offset to line/column conversion for
// error reporting.
//
type File struct {
	name  string
	src   []byte
	lines []int // 0-based line offsets
}

// NewFile returns a new File.
//
func NewFile(name string, src []byte) *File {
	f := &File{name: name, src: src, lines: []int{0}}
	for i, b := range src {
		if b == '\n' {
			f.lines = append(f.lines, i+1)
		}
	}
	return f
}

// Name returns the file name.
//
func (f *File) Name() string {
	return f.name
}

// Cursor returns a new Cursor over the file contents. The cursor is named after
// the file.
//
func (f *File) Cursor(opts ...Option) *Cursor[byte] {
	return NewCursor(f.src, append([]Option{WithName(f.name)}, opts...)...)
}

// Position returns the 1-based line and column for a given offset. The returned
// column is a byte offset, not a rune offset.
//
func (f *File) Position(pos int) Position {
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	return Position{f.name, i, pos - f.lines[i-1] + 1}
}

// LinePos return the file offset of the given line.
//
func (f *File) LinePos(line int) int {
	if line < 1 || line > len(f.lines) {
		return -1
	}
	return f.lines[line-1]
}

// Line returns the contents of the line for position pos, without the line
// terminator.
//
func (f *File) Line(pos int) []byte {
	lp := f.LinePos(f.Position(pos).Line)
	l := f.src[lp:]
	if i := bytes.IndexByte(l, '\n'); i >= 0 {
		l = l[:i]
	}
	return bytes.TrimSuffix(l, []byte{'\r'})
}

// Report writes a description of err in the form:
//
//	file:line:col: error description
//	|source line where the error occurred
//	|          ^
//
// If err is not a parse failure, only its message is written.
//
func (f *File) Report(w io.Writer, err error) error {
	var pe *Error
	if !errors.As(err, &pe) {
		_, err = fmt.Fprintf(w, "%s: %v\n", f.name, err)
		return err
	}
	pos := f.Position(pe.Pos)
	l := f.Line(pe.Pos)
	b := pos.Column - 1
	if b > len(l) {
		b = len(l)
	}
	_, err = fmt.Fprintf(w, "%s: %v\n|%s\n|%*s^\n", pos, pe, l, getWidth(l[:b]), "")
	return err
}

// getWidth computes the width in text cells of a given byte slice.
// (supposing rendering with a UTF-8 locale and monospaced font)
//
func getWidth(l []byte) int {
	w := 0
	for i := 0; i < len(l); {
		r, s := utf8.DecodeRune(l[i:])
		i += s
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			w++
		}
	}
	return w
}
