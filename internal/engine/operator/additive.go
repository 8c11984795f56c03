// Released under an MIT license. See LICENSE.

package operator

import (
	"github.com/michaelmacinnis/computor/internal/common/failure"
	"github.com/michaelmacinnis/computor/internal/common/struct/tree"
	"github.com/michaelmacinnis/computor/internal/common/type/computed"
	"github.com/michaelmacinnis/computor/internal/common/type/equation"
	"github.com/michaelmacinnis/computor/internal/common/type/matrix"
)

func add(l, r computed.T) (computed.T, error) {
	switch l := l.(type) {
	case computed.Value:
		if r, ok := r.(computed.Value); ok {
			return value(l.Add(r.T))
		}
	case computed.Matrix:
		if r, ok := r.(computed.Matrix); ok {
			return table(l.T.Add(r.T))
		}
	}

	return algebra(tree.Add, l, r, (*equation.T).Add)
}

func sub(l, r computed.T) (computed.T, error) {
	switch l := l.(type) {
	case computed.Value:
		if r, ok := r.(computed.Value); ok {
			return value(l.Sub(r.T))
		}
	case computed.Matrix:
		if r, ok := r.(computed.Matrix); ok {
			return table(l.T.Sub(r.T))
		}
	}

	return algebra(tree.Sub, l, r, (*equation.T).Sub)
}

// algebra handles everything that is not number with number or matrix
// with matrix. Matrices go no further.
func algebra(
	o tree.Operator, l, r computed.T,
	f func(a, b *equation.T) (*equation.T, error),
) (computed.T, error) {
	if err := matrices(o, l, r); err != nil {
		return nil, err
	}

	a, b, err := lift(l, r)
	if err != nil {
		return nil, err
	}

	return polynomial(f(a, b))
}

// matrices reports the error for a matrix used with something other than
// the operands the operator o accepts for it.
func matrices(o tree.Operator, l, r computed.T) error {
	_, lm := l.(computed.Matrix)
	_, rm := r.(computed.Matrix)

	if !lm && !rm {
		return nil
	}

	_, lsym := symbolic(l)
	_, rsym := symbolic(r)

	if lsym || rsym {
		return failure.New(failure.MatrixInEquation, "matrix in equation")
	}

	return failure.New(
		failure.MatrixOperation,
		"cannot use '%s' with %s and %s", o, kind(l), kind(r),
	)
}

func kind(c computed.T) string {
	if _, ok := c.(computed.Matrix); ok {
		return "matrix"
	}

	return "number"
}

func table(m *matrix.T, err error) (computed.T, error) {
	if err != nil {
		return nil, err
	}

	return computed.Table(m), nil
}
