// Released under an MIT license. See LICENSE.

package rational

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/computor/internal/common/failure"
)

func parse(t *testing.T, s string) T {
	t.Helper()

	r, err := Parse(s)
	require.NoError(t, err)

	return r
}

func TestDecimalsAreExact(t *testing.T) {
	a, err := Float(0.1)
	require.NoError(t, err)

	b, err := Float(0.2)
	require.NoError(t, err)

	c, err := Float(0.3)
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Equal(c))

	sum, err = parse(t, "0.1").Add(parse(t, "0.2"))
	require.NoError(t, err)
	require.True(t, sum.Equal(parse(t, "0.3")))
	require.Equal(t, "0.3", sum.String())
}

func TestIdentities(t *testing.T) {
	for _, s := range []string{"0", "1", "0.5", "123.456", "18446744073709551615"} {
		a := parse(t, s)

		sum, err := a.Add(T{})
		require.NoError(t, err)
		assert.True(t, sum.Equal(a), s)

		product, err := a.Mul(T{})
		require.NoError(t, err)
		assert.True(t, product.IsZero(), s)

		negated := a.Neg()
		assert.Equal(t, -a.Sign(), negated.Sign(), s)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"0", "0"},
		{"007", "7"},
		{"2.50", "2.5"},
		{".25", "0.25"},
		{"5.", "5"},
		{"0.12345678901", "0.123456789"},
		{"0.12345678905", "0.1234567891"},
		{"0.99999999999", "1"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.out, parse(t, tc.in).String(), tc.in)
	}

	_, err := Parse(".")
	require.True(t, failure.Is(err, failure.Lexical))

	_, err = Parse("18446744073709551616")
	require.True(t, failure.Is(err, failure.Overflow))
}

func TestString(t *testing.T) {
	third, err := Frac(1, 3)
	require.NoError(t, err)
	require.Equal(t, "1/3", third.String())
	require.Equal(t, "-1/3", third.Neg().String())

	eighth, err := Frac(-1, 8)
	require.NoError(t, err)
	require.Equal(t, "-0.125", eighth.String())

	big, err := Frac(1, 1<<62)
	require.NoError(t, err)
	require.Equal(t, "1/4611686018427387904", big.String())

	require.Equal(t, "0", T{}.String())
	require.Equal(t, "-9223372036854775808", Int(math.MinInt64).String())
}

func TestArithmetic(t *testing.T) {
	half, _ := Frac(1, 2)
	third, _ := Frac(1, 3)

	sum, err := half.Add(third)
	require.NoError(t, err)
	require.Equal(t, "5/6", sum.String())

	difference, err := third.Sub(half)
	require.NoError(t, err)
	require.Equal(t, "-1/6", difference.String())

	product, err := half.Mul(third)
	require.NoError(t, err)
	require.Equal(t, "1/6", product.String())

	quotient, err := half.Div(third)
	require.NoError(t, err)
	require.Equal(t, "1.5", quotient.String())

	_, err = half.Div(T{})
	require.True(t, failure.Is(err, failure.DivisionByZero))

	_, err = Frac(1, 0)
	require.True(t, failure.Is(err, failure.DivisionByZero))
}

func TestCmp(t *testing.T) {
	half, _ := Frac(1, 2)
	third, _ := Frac(1, 3)

	require.Equal(t, 1, half.Cmp(third))
	require.Equal(t, -1, third.Cmp(half))
	require.Equal(t, 0, half.Cmp(parse(t, "0.5")))
	require.Equal(t, 1, third.Neg().Cmp(half.Neg()))
	require.Equal(t, -1, Int(-1).Cmp(T{}))
}

func TestOverflow(t *testing.T) {
	largest := parse(t, "18446744073709551615")

	_, err := largest.Add(Int(1))
	require.True(t, failure.Is(err, failure.Overflow))

	_, err = largest.Mul(Int(2))
	require.True(t, failure.Is(err, failure.Overflow))

	// Opposite signs cancel without overflowing.
	v, err := largest.Add(largest.Neg())
	require.NoError(t, err)
	require.True(t, v.IsZero())
}

func TestRem(t *testing.T) {
	tests := []struct {
		a, b int64
		out  string
	}{
		{7, 3, "1"},
		{-7, 3, "-1"},
		{7, -3, "1"},
		{-7, -3, "-1"},
		{6, 3, "0"},
	}

	for _, tc := range tests {
		r, err := Int(tc.a).Rem(Int(tc.b))
		require.NoError(t, err)
		assert.Equal(t, tc.out, r.String(), "%d %% %d", tc.a, tc.b)
	}

	_, err := Int(1).Rem(T{})
	require.True(t, failure.Is(err, failure.DivisionByZero))
}

func TestSqrt(t *testing.T) {
	r, err := Int(16).Sqrt()
	require.NoError(t, err)
	require.Equal(t, "4", r.String())

	quarter, _ := Frac(9, 4)

	r, err = quarter.Sqrt()
	require.NoError(t, err)
	require.Equal(t, "1.5", r.String())

	r, err = Int(2).Sqrt()
	require.NoError(t, err)
	require.Equal(t, "1.4142135624", r.String())

	_, err = Int(-4).Sqrt()
	require.True(t, failure.Is(err, failure.BadPower))
}

func TestRoot(t *testing.T) {
	quarter, _ := Frac(9, 4)

	r, ok := quarter.Root()
	require.True(t, ok)
	require.Equal(t, "1.5", r.String())

	_, ok = Int(2).Root()
	require.False(t, ok)

	_, ok = Int(-4).Root()
	require.False(t, ok)
}

func TestInt64(t *testing.T) {
	n, ok := Int(-42).Int64()
	require.True(t, ok)
	require.Equal(t, int64(-42), n)

	n, ok = Int(math.MinInt64).Int64()
	require.True(t, ok)
	require.Equal(t, int64(math.MinInt64), n)

	half, _ := Frac(1, 2)

	_, ok = half.Int64()
	require.False(t, ok)

	_, ok = parse(t, "18446744073709551615").Int64()
	require.False(t, ok)
}
