// Released under an MIT license. See LICENSE.

// Package computed provides the result of evaluating an expression tree.
package computed

import (
	"strings"

	"github.com/michaelmacinnis/computor/internal/common/struct/tree"
	"github.com/michaelmacinnis/computor/internal/common/type/equation"
	"github.com/michaelmacinnis/computor/internal/common/type/imaginary"
	"github.com/michaelmacinnis/computor/internal/common/type/matrix"
)

// T (computed) is one of None, Resolve, Matrix, Value, Bound, Unresolved,
// Call or Equation.
type T interface {
	computed()
	String() string
}

// Bound is a variable reference with its concrete value.
type Bound struct {
	Name  string
	Value T
}

// Call is a function call whose arguments have been evaluated.
type Call struct {
	Name   string
	Args   []T
	Source []tree.Node
}

// Equation is a pending single-unknown polynomial.
type Equation struct {
	*equation.T
}

// Matrix is a matrix value.
type Matrix struct {
	*matrix.T
}

// None is the missing side of a prefix operator.
type None struct{}

// Resolve is a request to print the other side of '='.
type Resolve struct{}

// Unresolved is a reference to a variable with no value.
type Unresolved struct {
	Name string
}

// Value is a number.
type Value struct {
	imaginary.T
}

func (Bound) computed()      {}
func (Call) computed()       {}
func (Equation) computed()   {}
func (Matrix) computed()     {}
func (None) computed()       {}
func (Resolve) computed()    {}
func (Unresolved) computed() {}
func (Value) computed()      {}

// String returns the text of the bound value.
func (b Bound) String() string {
	return b.Value.String()
}

// String returns the text of the call.
func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}

	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// String returns nothing.
func (None) String() string {
	return ""
}

// String returns the resolve marker.
func (Resolve) String() string {
	return "?"
}

// String returns the variable name.
func (u Unresolved) String() string {
	return u.Name
}

// Concrete returns true if c is a number or a matrix.
func Concrete(c T) bool {
	switch Unbind(c).(type) {
	case Matrix, Value:
		return true
	}

	return false
}

// Unbind returns the value of a Bound or c itself.
func Unbind(c T) T {
	if b, ok := c.(Bound); ok {
		return Unbind(b.Value)
	}

	return c
}

// Number creates a Value from v.
func Number(v imaginary.T) Value {
	return Value{v}
}

// Polynomial creates an Equation from e.
func Polynomial(e *equation.T) Equation {
	return Equation{e}
}

// Table creates a Matrix from m.
func Table(m *matrix.T) Matrix {
	return Matrix{m}
}
