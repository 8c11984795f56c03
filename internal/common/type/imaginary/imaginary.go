// Released under an MIT license. See LICENSE.

// Package imaginary provides computor's complex number type.
package imaginary

import (
	"strings"

	"github.com/michaelmacinnis/computor/internal/common/failure"
	"github.com/michaelmacinnis/computor/internal/common/type/rational"
)

// T (imaginary) is a complex number with exact rational parts.
// A real number is a T with a zero imaginary part.
type T struct {
	Real rational.T
	Imag rational.T
}

type imaginary = T

// Int creates the real number i.
func Int(i int64) T {
	return T{Real: rational.Int(i)}
}

// Real creates a real number from the rational r.
func Real(r rational.T) T {
	return T{Real: r}
}

// Unit returns the imaginary unit i.
func Unit() T {
	return T{Imag: rational.Int(1)}
}

// Add returns a + b.
func (a T) Add(b T) (T, error) {
	re, err := a.Real.Add(b.Real)
	if err != nil {
		return T{}, err
	}

	im, err := a.Imag.Add(b.Imag)
	if err != nil {
		return T{}, err
	}

	return T{Real: re, Imag: im}, nil
}

// Div returns a / b.
func (a T) Div(b T) (T, error) {
	if b.IsZero() {
		return T{}, failure.New(failure.DivisionByZero, "division by zero")
	}

	if b.IsReal() {
		re, err := a.Real.Div(b.Real)
		if err != nil {
			return T{}, err
		}

		im, err := a.Imag.Div(b.Real)
		if err != nil {
			return T{}, err
		}

		return T{Real: re, Imag: im}, nil
	}

	// (a + bi) / (c + di) = ((ac + bd) + (bc - ad)i) / (c^2 + d^2)
	den, err := sum(products(b.Real, b.Real), products(b.Imag, b.Imag))
	if err != nil {
		return T{}, err
	}

	re, err := sum(products(a.Real, b.Real), products(a.Imag, b.Imag))
	if err != nil {
		return T{}, err
	}

	im, err := sum(products(a.Imag, b.Real), products(a.Real.Neg(), b.Imag))
	if err != nil {
		return T{}, err
	}

	if re, err = re.Div(den); err != nil {
		return T{}, err
	}

	if im, err = im.Div(den); err != nil {
		return T{}, err
	}

	return T{Real: re, Imag: im}, nil
}

// Equal returns true if a and b are the same number.
func (a T) Equal(b T) bool {
	return a.Real.Equal(b.Real) && a.Imag.Equal(b.Imag)
}

// IsReal returns true if the imaginary part of a is zero.
func (a T) IsReal() bool {
	return a.Imag.IsZero()
}

// IsZero returns true if a is 0.
func (a T) IsZero() bool {
	return a.Real.IsZero() && a.Imag.IsZero()
}

// Mul returns a * b.
func (a T) Mul(b T) (T, error) {
	// (a + bi)(c + di) = (ac - bd) + (ad + bc)i
	re, err := sum(products(a.Real, b.Real), products(a.Imag.Neg(), b.Imag))
	if err != nil {
		return T{}, err
	}

	im, err := sum(products(a.Real, b.Imag), products(a.Imag, b.Real))
	if err != nil {
		return T{}, err
	}

	return T{Real: re, Imag: im}, nil
}

// Neg returns -a.
func (a T) Neg() T {
	return T{Real: a.Real.Neg(), Imag: a.Imag.Neg()}
}

// Pow returns a raised to the integer power n. A negative n raises the
// reciprocal of a to -n.
func (a T) Pow(n int64) (T, error) {
	base := a
	m := uint64(n)

	if n < 0 {
		r, err := Int(1).Div(a)
		if err != nil {
			return T{}, err
		}

		base = r
		m = uint64(-(n + 1)) + 1
	}

	result := Int(1)

	for ; m > 0; m >>= 1 {
		var err error

		if m&1 == 1 {
			if result, err = result.Mul(base); err != nil {
				return T{}, err
			}
		}

		if m > 1 {
			if base, err = base.Mul(base); err != nil {
				return T{}, err
			}
		}
	}

	return result, nil
}

// Rem returns the remainder of a / b. Both must be real.
func (a T) Rem(b T) (T, error) {
	if !a.IsReal() || !b.IsReal() {
		return T{}, failure.New(failure.BadOperatorUse, "modulo of non-real number")
	}

	r, err := a.Real.Rem(b.Real)
	if err != nil {
		return T{}, err
	}

	return Real(r), nil
}

// String returns the text of a.
func (a T) String() string {
	if a.IsReal() {
		return a.Real.String()
	}

	im := a.Imag.Abs().String()
	if im == "1" {
		im = ""
	} else if strings.Contains(im, "/") {
		im = "(" + im + ")"
	}

	im += "i"

	if a.Real.IsZero() {
		if a.Imag.Sign() < 0 {
			return "-" + im
		}

		return im
	}

	if a.Imag.Sign() < 0 {
		return a.Real.String() + " - " + im
	}

	return a.Real.String() + " + " + im
}

// Sub returns a - b.
func (a T) Sub(b T) (T, error) {
	return a.Add(b.Neg())
}

type product struct {
	a, b rational.T
}

func products(a, b rational.T) product {
	return product{a, b}
}

func sum(ps ...product) (rational.T, error) {
	total := rational.T{}

	for _, p := range ps {
		v, err := p.a.Mul(p.b)
		if err != nil {
			return rational.T{}, err
		}

		total, err = total.Add(v)
		if err != nil {
			return rational.T{}, err
		}
	}

	return total, nil
}
