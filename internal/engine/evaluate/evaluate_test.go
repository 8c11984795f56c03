// Released under an MIT license. See LICENSE.

package evaluate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/computor/internal/common/failure"
	"github.com/michaelmacinnis/computor/internal/common/struct/extension"
	"github.com/michaelmacinnis/computor/internal/common/struct/memory"
	"github.com/michaelmacinnis/computor/internal/common/struct/tree"
	"github.com/michaelmacinnis/computor/internal/common/type/computed"
	"github.com/michaelmacinnis/computor/internal/common/type/imaginary"
	"github.com/michaelmacinnis/computor/internal/reader"
)

func read(t *testing.T, s string) tree.Node {
	t.Helper()

	i, err := reader.Read("test", s)
	require.NoError(t, err)

	return i.Tree
}

func run(t *testing.T, m *memory.T, s string) string {
	t.Helper()

	c, err := Compute(read(t, s), m, nil)
	require.NoError(t, err, s)

	return c.String()
}

func define(t *testing.T, m *memory.T, name, body string, params ...string) {
	t.Helper()

	m.Define(name, &memory.Function{Params: params, Body: read(t, body)})
}

func TestArithmetic(t *testing.T) {
	m := memory.New()

	require.Equal(t, "14", run(t, m, "2+3*4"))
	require.Equal(t, "20", run(t, m, "(2+3)*4"))
	require.Equal(t, "0.3", run(t, m, "0.1 + 0.2"))
	require.Equal(t, "-8", run(t, m, "-2^3"))
	require.Equal(t, "1 + 2i", run(t, m, "1 + 2i"))
	require.Equal(t, "-1", run(t, m, "i^2"))
	require.Equal(t, "[ 2 , 4 ]", run(t, m, "2[[1,2]]"))
}

func TestVariables(t *testing.T) {
	m := memory.New()
	m.Assign("a", computed.Number(imaginary.Int(3)))

	c, err := Compute(read(t, "a"), m, nil)
	require.NoError(t, err)
	require.Equal(t, computed.Bound{Name: "a", Value: computed.Number(imaginary.Int(3))}, c)

	c, err = Compute(read(t, "b"), m, nil)
	require.NoError(t, err)
	require.Equal(t, computed.Unresolved{Name: "b"}, c)

	require.Equal(t, "2 * x + 3", run(t, m, "2x + a"))

	// Bindings hide variables.
	x := extension.Bind([]string{"a"}, []computed.T{computed.Number(imaginary.Int(10))})

	c, err = Compute(read(t, "a + 1"), m, x)
	require.NoError(t, err)
	require.Equal(t, "11", c.String())
}

func TestCalls(t *testing.T) {
	m := memory.New()
	m.Assign("k", computed.Number(imaginary.Int(2)))

	define(t, m, "f", "x^2 + k", "x")
	define(t, m, "g", "f(x) - f(y)", "x", "y")

	require.Equal(t, "11", run(t, m, "f(3)"))
	require.Equal(t, "5", run(t, m, "g(3, 2)"))
	require.Equal(t, "x^2 + 2", run(t, m, "f(x)"))

	// Function bodies see the memory at the time of the call.
	m.Assign("k", computed.Number(imaginary.Int(0)))
	require.Equal(t, "9", run(t, m, "f(3)"))

	// Parameters do not leak into the functions a body calls.
	define(t, m, "h", "y + 1", "x")
	define(t, m, "outer", "h(0)", "y")
	require.Equal(t, "y + 1", run(t, m, "outer(5)"))
}

func TestCallErrors(t *testing.T) {
	m := memory.New()

	define(t, m, "f", "1 / x", "x")
	define(t, m, "loop", "loop(x) + 1", "x")

	tests := []struct {
		s    string
		kind failure.Kind
	}{
		{"nope(1)", failure.UnknownFunction},
		{"f(1, 2)", failure.WrongArgumentCount},
		{"f(0)", failure.DivisionByZero},
		{"loop(1)", failure.RecursionLimit},
		{"[[x]]", failure.MatrixInEquation},
		{"[[1,2]] + [[1]]", failure.MatrixDimension},
	}

	for _, tc := range tests {
		_, err := Compute(read(t, tc.s), m, nil)
		require.Error(t, err, tc.s)
		require.Equal(t, tc.kind, failure.KindOf(err), tc.s)
	}

	_, err := Compute(read(t, "f(0)"), m, nil)
	require.EqualError(t, err, "f: division by zero")
}

func TestInvalid(t *testing.T) {
	_, err := Compute(read(t, "1 + $"), memory.New(), nil)
	require.True(t, failure.Is(err, failure.Lexical))
}
