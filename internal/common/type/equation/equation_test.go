// Released under an MIT license. See LICENSE.

package equation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/computor/internal/common/failure"
	"github.com/michaelmacinnis/computor/internal/common/type/imaginary"
)

// poly builds the polynomial in x with the coefficients cs, constant first.
func poly(t *testing.T, cs ...int64) *T {
	t.Helper()

	e := Constant("x", imaginary.Int(0))
	power := Constant("x", imaginary.Int(1))

	for _, c := range cs {
		term, err := power.Scale(imaginary.Int(c))
		require.NoError(t, err)

		e, err = e.Add(term)
		require.NoError(t, err)

		power, err = power.Mul(Variable("x"))
		require.NoError(t, err)
	}

	return e
}

func TestString(t *testing.T) {
	tests := []struct {
		in  *T
		out string
	}{
		{poly(t), "0"},
		{poly(t, 0, 0, 0), "0"},
		{poly(t, 1, -2, 1), "x^2 - 2 * x + 1"},
		{poly(t, -5, 5), "5 * x - 5"},
		{poly(t, 0, -1), "-x"},
		{poly(t, 3), "3"},
		{Variable("y"), "y"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.out, tc.in.String())
	}

	c, err := Variable("x").Scale(imaginary.T{
		Real: imaginary.Int(1).Real,
		Imag: imaginary.Int(2).Real,
	})
	require.NoError(t, err)
	require.Equal(t, "(1 + 2i) * x", c.String())
}

func TestFusionNeedsTheSameUnknown(t *testing.T) {
	x, y := Variable("x"), Variable("y")

	ops := map[string]func(a, b *T) (*T, error){
		"add": (*T).Add,
		"div": (*T).Div,
		"mul": (*T).Mul,
		"sub": (*T).Sub,
	}

	for name, op := range ops {
		_, err := op(x, y)
		assert.True(t, failure.Is(err, failure.TooManyUnknowns), name)

		_, err = op(y, x)
		assert.True(t, failure.Is(err, failure.TooManyUnknowns), name)
	}
}

func TestMul(t *testing.T) {
	// (x - 1)(x + 1) = x^2 - 1
	p, err := poly(t, -1, 1).Mul(poly(t, 1, 1))
	require.NoError(t, err)
	require.Equal(t, "x^2 - 1", p.String())

	d, ok := p.Degree()
	require.True(t, ok)
	require.Equal(t, 2, d)
}

func TestDiv(t *testing.T) {
	q, err := poly(t, 0, 4, 2).Div(poly(t, 0, 2))
	require.NoError(t, err)
	require.Equal(t, "x + 2", q.String())

	q, err = poly(t, 6).Div(poly(t, 0, 0, 3))
	require.NoError(t, err)
	require.Equal(t, []int{-2}, q.Prune().Exponents())

	_, err = poly(t, 1).Div(poly(t, 1, 1))
	require.True(t, failure.Is(err, failure.DivideByEquation))

	_, err = poly(t, 1).Div(poly(t, 0, 0))
	require.True(t, failure.Is(err, failure.DivisionByZero))
}

func TestPow(t *testing.T) {
	p, err := poly(t, 1, 1).Pow(2)
	require.NoError(t, err)
	require.Equal(t, "x^2 + 2 * x + 1", p.String())

	p, err = Variable("x").Pow(0)
	require.NoError(t, err)
	require.Equal(t, "1", p.String())

	p, err = Variable("x").Pow(5)
	require.NoError(t, err)
	require.Equal(t, "x^5", p.String())

	_, err = Variable("x").Pow(-1)
	require.True(t, failure.Is(err, failure.BadPower))
}

func TestExponentOverflow(t *testing.T) {
	big, err := Variable("x").Pow(1 << 62)
	require.NoError(t, err)
	require.Equal(t, []int{1 << 62}, big.Exponents())

	_, err = big.Mul(big)
	require.True(t, failure.Is(err, failure.Overflow), "%v", err)

	fourth, err := Variable("x").Pow(4)
	require.NoError(t, err)

	_, err = fourth.Pow(1 << 62)
	require.True(t, failure.Is(err, failure.Overflow), "%v", err)

	top, err := Variable("x").Pow((1 << 62) - 1)
	require.NoError(t, err)

	top, err = top.Mul(big)
	require.NoError(t, err)

	inverse, err := Constant("x", imaginary.Int(1)).Div(Variable("x"))
	require.NoError(t, err)

	_, err = top.Div(inverse)
	require.True(t, failure.Is(err, failure.Overflow), "%v", err)
}

func TestMulSkipsZeroTerms(t *testing.T) {
	// x + 1 - 1 keeps a zero constant term until it is pruned.
	e, err := Variable("x").AddConstant(imaginary.Int(1))
	require.NoError(t, err)

	e, err = e.Sub(Constant("x", imaginary.Int(1)))
	require.NoError(t, err)
	require.Len(t, e.Exponents(), 2)

	p, err := e.Pow(20000)
	require.NoError(t, err)
	require.Equal(t, []int{20000}, p.Exponents())
	require.Equal(t, "x^20000", p.String())
}

func TestPrune(t *testing.T) {
	p, err := poly(t, 1, 1, 1).Sub(poly(t, 1, 0, 1))
	require.NoError(t, err)

	require.Len(t, p.Exponents(), 3)
	require.Equal(t, []int{1}, p.Prune().Exponents())
}
