// Released under an MIT license. See LICENSE.

// Package evaluate computes the value of an expression tree.
package evaluate

import (
	"github.com/michaelmacinnis/computor/internal/common/failure"
	"github.com/michaelmacinnis/computor/internal/common/struct/extension"
	"github.com/michaelmacinnis/computor/internal/common/struct/memory"
	"github.com/michaelmacinnis/computor/internal/common/struct/tree"
	"github.com/michaelmacinnis/computor/internal/common/type/computed"
	"github.com/michaelmacinnis/computor/internal/common/type/imaginary"
	"github.com/michaelmacinnis/computor/internal/common/type/matrix"
	"github.com/michaelmacinnis/computor/internal/common/validate"
	"github.com/michaelmacinnis/computor/internal/engine/operator"
)

// Depth is the maximum number of nested function calls.
const Depth = 256

// Compute evaluates n against the table m. Names bound in x hide variables
// of the same name in m. A nil x binds nothing.
func Compute(n tree.Node, m *memory.T, x *extension.T) (computed.T, error) {
	return compute(n, m, x, 0)
}

func compute(n tree.Node, m *memory.T, x *extension.T, depth int) (computed.T, error) {
	switch n := n.(type) {
	case nil:
		return computed.None{}, nil
	case *tree.Branch:
		l, err := compute(n.Left, m, x, depth)
		if err != nil {
			return nil, err
		}

		r, err := compute(n.Right, m, x, depth)
		if err != nil {
			return nil, err
		}

		return operator.Apply(n.Op, l, r)
	case tree.Leaf:
		c, err := leaf(n.Term, m, x, depth)
		if err != nil {
			return nil, err
		}

		if call, ok := c.(computed.Call); ok {
			return resolve(call, m, depth)
		}

		return c, nil
	}

	return nil, failure.New(failure.BadOperatorUse, "unexpected node %T", n)
}

func elements(t tree.Matrix, m *memory.T, x *extension.T, depth int) (computed.T, error) {
	rows := make([][]imaginary.T, len(t.Rows))

	for i, row := range t.Rows {
		rows[i] = make([]imaginary.T, len(row))

		for j, e := range row {
			c, err := compute(e, m, x, depth)
			if err != nil {
				return nil, err
			}

			v, ok := computed.Unbind(c).(computed.Value)
			if !ok {
				return nil, failure.New(
					failure.MatrixInEquation,
					"matrix element %s is not a number", tree.String(e),
				)
			}

			rows[i][j] = v.T
		}
	}

	mat, err := matrix.New(rows)
	if err != nil {
		return nil, err
	}

	return computed.Table(mat), nil
}

func leaf(t tree.Term, m *memory.T, x *extension.T, depth int) (computed.T, error) {
	switch t := t.(type) {
	case tree.Call:
		args := make([]computed.T, len(t.Args))

		for i, a := range t.Args {
			c, err := compute(a, m, x, depth)
			if err != nil {
				return nil, err
			}

			args[i] = c
		}

		return computed.Call{Name: t.Name, Args: args, Source: t.Args}, nil
	case tree.Invalid:
		return nil, failure.New(failure.Lexical, "invalid token %s", t.Diagnostic)
	case tree.Matrix:
		return elements(t, m, x, depth)
	case tree.Operand:
		return computed.Number(t.Value), nil
	case tree.Resolve:
		return computed.Resolve{}, nil
	case tree.Variable:
		if v, ok := x.Lookup(t.Name); ok {
			if computed.Concrete(v) {
				return computed.Bound{Name: t.Name, Value: v}, nil
			}

			return v, nil
		}

		if v, ok := m.Variable(t.Name); ok {
			return computed.Bound{Name: t.Name, Value: v}, nil
		}

		return computed.Unresolved{Name: t.Name}, nil
	}

	return nil, failure.New(failure.Lexical, "unexpected term %T", t)
}

func resolve(c computed.Call, m *memory.T, depth int) (computed.T, error) {
	f, ok := m.Function(c.Name)
	if !ok {
		return nil, failure.New(failure.UnknownFunction, "unknown function %s", c.Name)
	}

	n := len(f.Params)

	err := validate.Fixed(m.Signature(c.Name), len(c.Args), n, n)
	if err != nil {
		return nil, err
	}

	if depth >= Depth {
		return nil, failure.New(
			failure.RecursionLimit, "too many nested calls to %s", c.Name,
		)
	}

	args := make([]computed.T, len(c.Args))
	for i, a := range c.Args {
		args[i] = computed.Unbind(a)
	}

	v, err := compute(f.Body, m, extension.Bind(f.Params, args), depth+1)
	if err != nil && !failure.Is(err, failure.RecursionLimit) {
		return nil, failure.Wrap(err, "%s", c.Name)
	}

	return v, err
}
