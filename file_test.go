package combi_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/db47h/combi"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// This example shows how to use File.Report to display nicely formatted error
// messages.
//
func ExampleFile_Report() {
	input := "＃〄 - Hello 世界 1<\ndéjà vu 2<"
	f := combi.NewFile("INPUT", []byte(input))
	grammars := []combi.Parser[byte]{
		// no digits allowed
		combi.Then[byte](combi.Many[byte](combi.Not[byte](combi.Digit)), combi.EOF),
		// second line must end with a digit
		combi.Then[byte](combi.Until[byte]("\n"), "\n", combi.Many[byte](combi.Not[byte](combi.Digit)), combi.Digit, combi.EOF),
		// must end with an x
		combi.Then[byte](combi.UntilEnd[byte]("#"), "x"),
	}
	for _, g := range grammars {
		_, err := g.Parse(f.Cursor())
		f.Report(os.Stdout, err)
	}

	// The following output will display correctly only with monospaced fonts
	// and a UTF-8 locale. The caret alignment will also be off with some fonts
	// like Fira Code and East Asian characters.

	// Output:
	// INPUT:1:23: expected end of input but received "1<\ndéjà vu 2<"
	// |＃〄 - Hello 世界 1<
	// |                  ^
	// INPUT:2:12: expected end of input but received "<"
	// |déjà vu 2<
	// |         ^
	// INPUT:2:13: expected "x" but encountered end of input
	// |déjà vu 2<
	// |          ^
}

func TestFile_Position(t *testing.T) {
	f := combi.NewFile("test", []byte("ab\ncd\n\nef"))
	data := []struct {
		pos  int
		line int
		col  int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{4, 2, 2},
		{6, 3, 1},
		{7, 4, 1},
		{9, 4, 3},
	}
	for _, d := range data {
		p := f.Position(d.pos)
		assert.Equal(t, combi.Position{Filename: "test", Line: d.line, Column: d.col}, p, "offset %d", d.pos)
	}
	assert.Equal(t, "test:2:2", f.Position(4).String())
	assert.Equal(t, 3, f.LinePos(2))
	assert.Equal(t, -1, f.LinePos(5))
	assert.Equal(t, -1, f.LinePos(0))
	assert.Equal(t, "cd", string(f.Line(4)))
	assert.Equal(t, "", string(f.Line(6)))
	assert.Equal(t, "test", f.Name())

	f = combi.NewFile("crlf", []byte("ab\r\ncd"))
	assert.Equal(t, "ab", string(f.Line(1)))
	assert.Equal(t, "cd", string(f.Line(4)))
}

func TestFile_Report(t *testing.T) {
	f := combi.NewFile("INPUT", []byte("x = 1"))
	var buf bytes.Buffer

	err := f.Report(&buf, errors.New("boom"))
	assert.NoError(t, err)
	assert.Equal(t, "INPUT: boom\n", buf.String())

	buf.Reset()
	c := f.Cursor()
	_, perr := combi.Then[byte]("x", combi.Trimmed("="), combi.Letter).Parse(c)
	assert.NoError(t, f.Report(&buf, errors.Wrap(perr, "assignment")))
	assert.Equal(t, "INPUT:1:5: expected letter but received \"1\"\n|x = 1\n|    ^\n", buf.String())
}
