// Released under an MIT license. See LICENSE.

// Package operator combines the two evaluated sides of an operator.
//
// Each operator handles every pairing of number, matrix, unresolved
// variable and equation. An unresolved variable x takes part in algebra
// as the equation x^1 and a number next to an equation takes part as a
// constant term in the same unknown.
package operator

import (
	"github.com/michaelmacinnis/computor/internal/common/failure"
	"github.com/michaelmacinnis/computor/internal/common/struct/tree"
	"github.com/michaelmacinnis/computor/internal/common/type/computed"
	"github.com/michaelmacinnis/computor/internal/common/type/equation"
	"github.com/michaelmacinnis/computor/internal/common/type/imaginary"
)

// Apply combines l and r with the operator o.
func Apply(o tree.Operator, l, r computed.T) (computed.T, error) {
	l, r = computed.Unbind(l), computed.Unbind(r)

	if isResolve(l) || isResolve(r) {
		return nil, failure.New(failure.ResolveMarker, "resolve marker not alone")
	}

	_, lnone := l.(computed.None)
	_, rnone := r.(computed.None)

	switch {
	case rnone:
		return nil, failure.New(failure.MissingOperand, "missing operand after '%s'", o)
	case lnone:
		return prefix(o, r)
	}

	switch o {
	case tree.Add:
		return add(l, r)
	case tree.Div:
		return div(l, r)
	case tree.Mod:
		return mod(l, r)
	case tree.Mul:
		return mul(l, r)
	case tree.Pow:
		return pow(l, r)
	case tree.Sub:
		return sub(l, r)
	}

	return nil, failure.New(failure.BadOperatorUse, "misplaced '%s'", o)
}

func prefix(o tree.Operator, r computed.T) (computed.T, error) {
	switch o {
	case tree.Add:
		return r, nil
	case tree.Sub:
		return mul(computed.Number(imaginary.Int(-1)), r)
	}

	return nil, failure.New(failure.BadOperatorUse, "bad use of operator '%s'", o)
}

// Helper functions.

func isResolve(c computed.T) bool {
	_, ok := c.(computed.Resolve)

	return ok
}

// lift turns both sides into equations in the same unknown. At least one
// side must be an unresolved variable or an equation.
func lift(l, r computed.T) (*equation.T, *equation.T, error) {
	a, aok := symbolic(l)
	b, bok := symbolic(r)

	switch {
	case aok && bok:
		return a, b, nil
	case aok:
		v, err := number(r)
		if err != nil {
			return nil, nil, err
		}

		return a, equation.Constant(a.Unknown(), v), nil
	case bok:
		v, err := number(l)
		if err != nil {
			return nil, nil, err
		}

		return equation.Constant(b.Unknown(), v), b, nil
	}

	return nil, nil, failure.New(failure.BadOperatorUse, "no unknown to solve for")
}

func number(c computed.T) (imaginary.T, error) {
	switch c := c.(type) {
	case computed.Value:
		return c.T, nil
	case computed.Matrix:
		return imaginary.T{}, failure.New(failure.MatrixInEquation, "matrix in equation")
	}

	return imaginary.T{}, failure.New(failure.BadOperatorUse, "cannot use %s in an equation", c)
}

func polynomial(e *equation.T, err error) (computed.T, error) {
	if err != nil {
		return nil, err
	}

	return computed.Polynomial(e), nil
}

func symbolic(c computed.T) (*equation.T, bool) {
	switch c := c.(type) {
	case computed.Equation:
		return c.T, true
	case computed.Unresolved:
		return equation.Variable(c.Name), true
	}

	return nil, false
}

func value(v imaginary.T, err error) (computed.T, error) {
	if err != nil {
		return nil, err
	}

	return computed.Number(v), nil
}
