// Released under an MIT license. See LICENSE.

// Package equation provides computor's single-unknown polynomial type.
//
// An equation maps integer exponents to complex coefficients and names the
// one unknown it is expressed in. Equations are never modified; every
// operation returns a new equation. Combining two equations that name
// different unknowns is an error.
package equation

import (
	"sort"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/computor/internal/common/failure"
	"github.com/michaelmacinnis/computor/internal/common/type/imaginary"
)

// T (equation) is a polynomial in one unknown.
type T struct {
	unknown string
	terms   map[int]imaginary.T
}

type equation = T

// Constant creates the equation v in the unknown named u.
func Constant(u string, v imaginary.T) *T {
	return &equation{unknown: u, terms: map[int]imaginary.T{0: v}}
}

// Variable creates the equation u in the unknown named u.
func Variable(u string) *T {
	return &equation{unknown: u, terms: map[int]imaginary.T{1: imaginary.Int(1)}}
}

// Add returns e + o.
func (e *T) Add(o *T) (*T, error) {
	return e.merge(o, imaginary.T.Add)
}

// AddConstant returns e + v.
func (e *T) AddConstant(v imaginary.T) (*T, error) {
	return e.Add(Constant(e.unknown, v))
}

// Coefficient returns the coefficient of the term with exponent n.
func (e *T) Coefficient(n int) imaginary.T {
	return e.terms[n]
}

// Degree returns the largest exponent with a non-zero coefficient.
// It returns false if there are no such terms.
func (e *T) Degree() (int, bool) {
	exponents := e.Prune().Exponents()
	if len(exponents) == 0 {
		return 0, false
	}

	return exponents[0], true
}

// Div returns e / o. After pruning o must have exactly one term.
func (e *T) Div(o *T) (*T, error) {
	if err := e.fuse(o); err != nil {
		return nil, err
	}

	d := o.Prune()

	switch len(d.terms) {
	case 0:
		return nil, failure.New(failure.DivisionByZero, "division by zero")
	case 1:
	default:
		return nil, failure.New(
			failure.DivideByEquation, "cannot divide by %s", d,
		)
	}

	var (
		shift int
		by    imaginary.T
	)

	for n, c := range d.terms {
		shift, by = n, c
	}

	q := e.empty()

	for n, c := range e.Prune().terms {
		v, err := c.Div(by)
		if err != nil {
			return nil, err
		}

		k, err := difference(n, shift)
		if err != nil {
			return nil, err
		}

		q.terms[k] = v
	}

	return q, nil
}

// Exponents returns the exponents of e from largest to smallest.
func (e *T) Exponents() []int {
	exponents := make([]int, 0, len(e.terms))
	for n := range e.terms {
		exponents = append(exponents, n)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(exponents)))

	return exponents
}

// Mul returns e * o by multiplying every pair of non-zero terms.
func (e *T) Mul(o *T) (*T, error) {
	if err := e.fuse(o); err != nil {
		return nil, err
	}

	p, q := e.empty(), o.Prune()

	for n, a := range e.Prune().terms {
		for m, b := range q.terms {
			v, err := a.Mul(b)
			if err != nil {
				return nil, err
			}

			k, err := sum(n, m)
			if err != nil {
				return nil, err
			}

			if p.terms[k], err = p.terms[k].Add(v); err != nil {
				return nil, err
			}
		}
	}

	return p.Prune(), nil
}

// Pow returns e raised to the non-negative integer power n.
func (e *T) Pow(n int64) (*T, error) {
	if n < 0 {
		return nil, failure.New(
			failure.BadPower, "cannot raise %s to a negative power", e.Prune(),
		)
	}

	p := Constant(e.unknown, imaginary.Int(1))

	for base := e; n > 0; n >>= 1 {
		var err error

		if n&1 == 1 {
			if p, err = p.Mul(base); err != nil {
				return nil, err
			}
		}

		if n > 1 {
			if base, err = base.Mul(base); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// Prune returns e without any zero coefficients.
func (e *T) Prune() *T {
	p := e.empty()

	for n, c := range e.terms {
		if !c.IsZero() {
			p.terms[n] = c
		}
	}

	return p
}

// Scale returns e with every coefficient multiplied by v.
func (e *T) Scale(v imaginary.T) (*T, error) {
	s := e.empty()

	for n, c := range e.terms {
		p, err := c.Mul(v)
		if err != nil {
			return nil, err
		}

		s.terms[n] = p
	}

	return s, nil
}

// String returns the reduced form of e, largest exponent first.
func (e *T) String() string {
	p := e.Prune()

	exponents := p.Exponents()
	if len(exponents) == 0 {
		return "0"
	}

	var sb strings.Builder

	for i, n := range exponents {
		c := p.terms[n]

		negative := c.IsReal() && c.Real.Sign() < 0
		if negative {
			c = c.Neg()
		}

		switch {
		case i == 0 && negative:
			sb.WriteString("-")
		case i > 0 && negative:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}

		sb.WriteString(term(c, p.unknown, n))
	}

	return sb.String()
}

// Sub returns e - o.
func (e *T) Sub(o *T) (*T, error) {
	return e.merge(o, imaginary.T.Sub)
}

// Unknown returns the name of the unknown in e.
func (e *T) Unknown() string {
	return e.unknown
}

func (e *T) empty() *T {
	return &equation{unknown: e.unknown, terms: map[int]imaginary.T{}}
}

func (e *T) fuse(o *T) error {
	if e.unknown != o.unknown {
		return failure.New(
			failure.TooManyUnknowns,
			"too many unknowns: %s and %s", e.unknown, o.unknown,
		)
	}

	return nil
}

func (e *T) merge(o *T, op func(a, b imaginary.T) (imaginary.T, error)) (*T, error) {
	if err := e.fuse(o); err != nil {
		return nil, err
	}

	r := e.empty()
	for n, c := range e.terms {
		r.terms[n] = c
	}

	for n, c := range o.terms {
		v, err := op(r.terms[n], c)
		if err != nil {
			return nil, err
		}

		r.terms[n] = v
	}

	return r, nil
}

func difference(a, b int) (int, error) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, overflow()
	}

	return d, nil
}

func overflow() error {
	return failure.New(failure.Overflow, "exponent overflow")
}

func sum(a, b int) (int, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, overflow()
	}

	return s, nil
}

func term(c imaginary.T, unknown string, n int) string {
	power := unknown
	if n != 1 {
		power += "^" + strconv.Itoa(n)
	}

	one := imaginary.Int(1)

	switch {
	case n == 0:
		return c.String()
	case c.Equal(one):
		return power
	case c.IsReal():
		return c.String() + " * " + power
	}

	return "(" + c.String() + ") * " + power
}
