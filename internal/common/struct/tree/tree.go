// Released under an MIT license. See LICENSE.

// Package tree provides computor's expression tree.
//
// A tree is made of two kinds of node. A Leaf holds exactly one terminal
// term. A Branch holds an operator and up to two children. Children are
// owned by exactly one parent and trees are never mutated once built;
// Insert returns a new tree that shares untouched subtrees with the old one.
package tree

import (
	"github.com/michaelmacinnis/computor/internal/common/type/imaginary"
)

// Node is a Leaf or a *Branch.
type Node interface {
	node()
}

// Term is the terminal held by a Leaf.
type Term interface {
	term()
}

// Operator is a binary (or prefix) operator.
type Operator rune

// Operators.
const (
	Add   Operator = '+'
	Div   Operator = '/'
	Equal Operator = '='
	Mod   Operator = '%'
	Mul   Operator = '*'
	Pow   Operator = '^'
	Sub   Operator = '-'
)

// Priority classes, lowest to highest. Parenthesized subtrees have
// the same priority as exponentiation.
const (
	Equality = iota
	Additive
	Multiplicative
	Exponential
)

// Priority returns the priority class of the operator o.
func (o Operator) Priority() int {
	switch o {
	case Equal:
		return Equality
	case Add, Sub:
		return Additive
	case Mul, Div, Mod:
		return Multiplicative
	}

	return Exponential
}

// String returns the text of the operator o.
func (o Operator) String() string {
	return string(o)
}

// Branch is an operator with its operands.
type Branch struct {
	Op            Operator
	Left          Node
	Right         Node
	Parenthesized bool // Built from an explicit (...) group.
	Prefix        bool // Closed with an empty left operand.
}

// Leaf holds a single term.
type Leaf struct {
	Term Term
}

// NewOperator creates an operator node waiting for its operands.
func NewOperator(o Operator) *Branch {
	return &Branch{Op: o}
}

// NewLeaf creates a leaf holding t.
func NewLeaf(t Term) Leaf {
	return Leaf{Term: t}
}

func (*Branch) node() {}
func (Leaf) node()    {}

// Terms.

// Call is a function call with one tree per argument.
type Call struct {
	Name string
	Args []Node
}

// Invalid is a lexical error. It always fails when evaluated.
type Invalid struct {
	Diagnostic string
}

// Matrix is a matrix literal with one tree per element.
type Matrix struct {
	Rows [][]Node
}

// Operand is a number.
type Operand struct {
	Value imaginary.T
}

// Resolve is the '?' marker.
type Resolve struct{}

// Variable is a reference to a variable.
type Variable struct {
	Name string
}

func (Call) term()     {}
func (Invalid) term()  {}
func (Matrix) term()   {}
func (Operand) term()  {}
func (Resolve) term()  {}
func (Variable) term() {}

// Opaque returns true if b must not be re-associated by later insertions.
func (b *Branch) Opaque() bool {
	return b.Parenthesized || b.Prefix
}

// Waiting returns true if b is a bare operator that has not been inserted.
func (b *Branch) Waiting() bool {
	return b.Left == nil && b.Right == nil && !b.Opaque()
}
