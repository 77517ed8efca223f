package combi_test

import (
	"fmt"
	"testing"

	"github.com/db47h/combi"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	data := []struct {
		a, b combi.Value
		res  combi.Value
		err  bool
	}{
		{nil, nil, nil, false},
		{nil, "a", "a", false},
		{"a", nil, "a", false},
		{"a", "b", "ab", false},
		{[]int{1}, []int{2, 3}, []int{1, 2, 3}, false},
		{[]combi.Value{"x"}, []combi.Value{1}, []combi.Value{"x", 1}, false},
		{"", []int{1}, []int{1}, false},
		{[]int{1}, "", []int{1}, false},
		{&combi.Match{Value: "a", Raw: "A"}, "b", "ab", false},
		{"a", 1, nil, true},
		{1, 2, nil, true},
		{[]int{1}, []string{"a"}, nil, true},
	}
	for _, d := range data {
		t.Run(fmt.Sprintf("%v+%v", d.a, d.b), func(t *testing.T) {
			v, err := combi.Join(d.a, d.b)
			if d.err {
				require.Error(t, err)
				var je *combi.JoinError
				require.True(t, errors.As(err, &je))
				assert.False(t, combi.IsMismatch(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, d.res, v)
		})
	}
}

type symbol string

func TestJoin_namedString(t *testing.T) {
	v, err := combi.Join(symbol("x"), symbol("y"))
	require.NoError(t, err)
	assert.Equal(t, symbol("xy"), v)

	p := combi.Sequence[byte](combi.Pipe[byte]("a", symbol("x")), combi.Pipe[byte]("b", symbol("y")))
	v, rest, err := combi.RunString(p, "abc")
	require.NoError(t, err)
	assert.Equal(t, symbol("xy"), v)
	assert.Equal(t, "c", rest)

	_, err = combi.Join(symbol("x"), "y")
	var je *combi.JoinError
	assert.True(t, errors.As(err, &je))
}

func TestJoin_associative(t *testing.T) {
	triples := [][3]combi.Value{
		{"a", "b", "c"},
		{nil, "b", nil},
		{[]int{1}, nil, []int{2}},
		{"", []int{1}, []int{2}},
		{[]combi.Value{1}, []combi.Value{2}, []combi.Value{3}},
	}
	for _, tr := range triples {
		ab, err := combi.Join(tr[0], tr[1])
		require.NoError(t, err)
		l, err := combi.Join(ab, tr[2])
		require.NoError(t, err)
		bc, err := combi.Join(tr[1], tr[2])
		require.NoError(t, err)
		r, err := combi.Join(tr[0], bc)
		require.NoError(t, err)
		assert.True(t, combi.Equal(l, r), "%v != %v", l, r)
	}
}

func TestJoin_noAlias(t *testing.T) {
	base := []int{1, 2, 3}
	v, err := combi.Join(base[:1], []int{9})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 9}, v)
	assert.Equal(t, []int{1, 2, 3}, base)
}

func TestEqual(t *testing.T) {
	assert.True(t, combi.Equal(nil, ""))
	assert.True(t, combi.Equal([]int{}, nil))
	assert.True(t, combi.Equal(nil, map[string]int{}))
	assert.True(t, combi.Equal(&combi.Match{Value: "a"}, "a"))
	assert.True(t, combi.Equal([]combi.Value{"x", "y"}, []combi.Value{"x", "y"}))
	assert.False(t, combi.Equal(nil, "a"))
	assert.False(t, combi.Equal("a", "b"))
	assert.False(t, combi.Equal(0, nil))

	assert.True(t, combi.IsNil(""))
	assert.True(t, combi.IsNil(&combi.Match{}))
	assert.False(t, combi.IsNil(0))
}
