package combi_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/db47h/combi"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// outcome runs p on in and returns a comparable summary of the result.
//
func outcome(p combi.Parser[byte], in string) string {
	v, rest, err := combi.RunString(p, in)
	if err != nil {
		return "error: " + err.Error()
	}
	return fmt.Sprintf("%v|%s", v, rest)
}

var algebraInputs = []string{"", "a", "ab", "abc", "abcabc", "ba", "cab", "aab", "bbb"}

func TestThen_associative(t *testing.T) {
	a, b, c := combi.OneOf[byte]("a", "b"), combi.Optional[byte]("b"), combi.Many[byte]("c")
	l := combi.Then[byte](combi.Then[byte](a, b), c)
	r := combi.Then[byte](a, combi.Then[byte](b, c))
	for _, in := range algebraInputs {
		assert.Equal(t, outcome(l, in), outcome(r, in), in)
	}
}

func TestOr_associative(t *testing.T) {
	a, b, c := combi.String("ab"), combi.Many[byte]("b"), combi.String("a")
	l := combi.Or[byte](combi.Or[byte](a, b), c)
	r := combi.Or[byte](a, combi.Or[byte](b, c))
	for _, in := range algebraInputs {
		assert.Equal(t, outcome(l, in), outcome(r, in), in)
	}
}

func TestRepeat_exponent(t *testing.T) {
	p := combi.OneOf[byte]("a", "b")
	for n := 1; n <= 3; n++ {
		for m := 1; m <= 3; m++ {
			l := combi.Times[byte](combi.Repeat[byte](p, n), m)
			r := combi.Repeat[byte](p, n*m)
			for k := 0; k <= 10; k++ {
				in := strings.Repeat("ab", k/2) + strings.Repeat("b", k%2) + "!"
				assert.Equal(t, outcome(r, in), outcome(l, in), "n=%d m=%d %q", n, m, in)
			}
		}
	}
}

func TestTimes_literal(t *testing.T) {
	v, rest, err := combi.RunString(combi.Times[byte]("ab", 2), "ababab")
	require.NoError(t, err)
	assert.Equal(t, "abab", v)
	assert.Equal(t, "ab", rest)
}

func TestNeg(t *testing.T) {
	v, rest, err := combi.RunString(combi.Neg[byte]("ab"), "cdab")
	require.NoError(t, err)
	assert.Equal(t, "c", v)
	assert.Equal(t, "dab", rest)
}

func atoi(s string) combi.Value {
	n, _ := strconv.Atoi(s)
	return n
}

func TestPipe(t *testing.T) {
	double := func(v combi.Value) combi.Value { return v.(int) * 2 }
	num := combi.AtLeast[byte](1, combi.Digit)

	v, rest, err := combi.RunString(combi.Pipe[byte](num, atoi, double), "21+")
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, "+", rest)

	// composition is associative
	l := combi.Pipe[byte](combi.Pipe[byte](num, atoi), double)
	r := combi.Pipe[byte](num, combi.Compose(atoi, double))
	assert.Equal(t, outcome(l, "12"), outcome(r, "12"))

	// constants
	v, _, err = combi.RunString(combi.Pipe[byte]("true", true), "true")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	// transform errors abort the parse and propagate as is
	bad := errors.New("out of range")
	p := combi.Pipe[byte](num, func(v combi.Value) (combi.Value, error) { return nil, bad })
	c := combi.NewTextCursor("99")
	_, err = p.Parse(c)
	assert.Equal(t, bad, err)
	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, 0, c.Depth())
}

func TestExpr(t *testing.T) {
	word := combi.T(combi.Letter).AtLeast(1)
	list := word.SepBy(combi.Trimmed(",")).Pipe(func(v combi.Value) combi.Value {
		return len(v.([]combi.Value))
	})
	v, rest, err := combi.RunString(list, "foo, bar ,baz;")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, ";", rest)

	e := combi.T("a").Then("b").Or("c").Many()
	v, rest, err = combi.RunString(e, "abcab!")
	require.NoError(t, err)
	assert.Equal(t, "abcab", v)
	assert.Equal(t, "!", rest)

	v, rest, err = combi.RunString(combi.T("x").Times(2).Optional().Then(combi.T("y").Not()), "xxz")
	require.NoError(t, err)
	assert.Equal(t, "xxz", v)
	assert.Equal(t, "", rest)

	v, _, err = combi.RunString(combi.T("-").Ignored().Then(combi.Digit).SurroundedBy("|"), "|-1|")
	require.NoError(t, err)
	assert.Equal(t, "|1|", v)

	_, _, err = combi.RunString(combi.T(combi.Digit).Label("a digit"), "x")
	assert.EqualError(t, err, `expected a digit but received "x"`)
}
