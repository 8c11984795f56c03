// Released under an MIT license. See LICENSE.

package operator

import (
	"github.com/michaelmacinnis/computor/internal/common/failure"
	"github.com/michaelmacinnis/computor/internal/common/struct/tree"
	"github.com/michaelmacinnis/computor/internal/common/type/computed"
	"github.com/michaelmacinnis/computor/internal/common/type/imaginary"
)

func pow(l, r computed.T) (computed.T, error) {
	if err := matrices(tree.Pow, l, r); err != nil {
		return nil, err
	}

	if _, ok := symbolic(r); ok {
		return nil, failure.New(failure.BadPower, "cannot raise to the power of an unknown")
	}

	n, err := exponent(r)
	if err != nil {
		return nil, err
	}

	switch l := l.(type) {
	case computed.Value:
		return value(l.Pow(n))
	case computed.Equation:
		return polynomial(l.T.Pow(n))
	case computed.Unresolved:
		e, _ := symbolic(l)

		return polynomial(e.Pow(n))
	}

	return nil, failure.New(failure.BadOperatorUse, "cannot raise %s to a power", l)
}

func exponent(c computed.T) (int64, error) {
	v, ok := c.(computed.Value)
	if !ok {
		return 0, failure.New(failure.BadPower, "bad power %s", c)
	}

	n, ok := integer(v.T)
	if !ok {
		return 0, failure.New(failure.BadPower, "power must be a real integer, not %s", v)
	}

	return n, nil
}

func integer(v imaginary.T) (int64, bool) {
	if !v.IsReal() {
		return 0, false
	}

	return v.Real.Int64()
}
