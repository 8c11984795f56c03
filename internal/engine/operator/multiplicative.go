// Released under an MIT license. See LICENSE.

package operator

import (
	"github.com/michaelmacinnis/computor/internal/common/failure"
	"github.com/michaelmacinnis/computor/internal/common/struct/tree"
	"github.com/michaelmacinnis/computor/internal/common/type/computed"
	"github.com/michaelmacinnis/computor/internal/common/type/equation"
)

func div(l, r computed.T) (computed.T, error) {
	if l, ok := l.(computed.Value); ok {
		if r, ok := r.(computed.Value); ok {
			return value(l.Div(r.T))
		}
	}

	return algebra(tree.Div, l, r, (*equation.T).Div)
}

func mod(l, r computed.T) (computed.T, error) {
	if l, ok := l.(computed.Value); ok {
		if r, ok := r.(computed.Value); ok {
			return value(l.Rem(r.T))
		}
	}

	if err := matrices(tree.Mod, l, r); err != nil {
		return nil, err
	}

	return nil, failure.New(failure.BadOperatorUse, "cannot use '%%' in an equation")
}

func mul(l, r computed.T) (computed.T, error) {
	switch l := l.(type) {
	case computed.Value:
		switch r := r.(type) {
		case computed.Value:
			return value(l.Mul(r.T))
		case computed.Matrix:
			return table(r.Scale(l.T))
		}
	case computed.Matrix:
		switch r := r.(type) {
		case computed.Value:
			return table(l.Scale(r.T))
		case computed.Matrix:
			return table(l.T.Mul(r.T))
		}
	}

	return algebra(tree.Mul, l, r, (*equation.T).Mul)
}
