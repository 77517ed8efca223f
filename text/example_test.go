package text_test

import (
	"fmt"
	"os"

	"github.com/db47h/combi"
	"github.com/db47h/combi/text"
)

// TinyGo: a parser for variable declarations in a minimal Go-like language.
//
func Example_go() {
	input := `var str = "some\tstring"
	var flt = .42
	var r = 'x'`

	ws := combi.Ignored[byte](combi.Optional[byte](combi.Whitespace))
	// wrap single values so that joining them builds a list
	list := func(v combi.Value) combi.Value { return []combi.Value{v} }
	value := combi.Or[byte](text.QuotedString(), text.Number('.'), text.QuotedChar())
	decl := combi.Sequence[byte](
		ws, combi.Ignored[byte]("var"), combi.WordBoundary, ws,
		combi.Pipe[byte](text.Identifier(), list), ws,
		combi.Ignored[byte]("="), ws,
		combi.Pipe[byte](value, list), ws,
	)
	prog := combi.Many[byte](decl)

	f := combi.NewFile("example", []byte(input))
	v, err := prog.Parse(f.Cursor())
	if err != nil {
		f.Report(os.Stdout, err)
		return
	}

	l := v.([]combi.Value)
	for i := 0; i < len(l); i += 2 {
		switch x := l[i+1].(type) {
		case string:
			fmt.Printf("%s = %q\n", l[i], x)
		case rune:
			fmt.Printf("%s = %q\n", l[i], x)
		case fmt.Stringer:
			fmt.Printf("%s = %s\n", l[i], x.String())
		}
	}

	// Output:
	// str = "some\tstring"
	// flt = 0.42
	// r = 'x'
}
