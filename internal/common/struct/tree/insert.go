// Released under an MIT license. See LICENSE.

package tree

import (
	"github.com/michaelmacinnis/computor/internal/common/failure"
)

// Insert adds the node n to the left of the tree t and returns the new tree.
//
// Nodes are inserted right to left, so n is always the node that appears
// before everything already in t. An operator takes as its right operand
// the part of t's left spine that binds at least as tightly as it does.
// On a tie the operator already in t stays on the outside, which makes
// operators of the same priority associate to the left. An operand fills
// the left-most open slot or, if there is none, is joined to t by an
// implicit multiplication.
func Insert(t, n Node) (Node, error) {
	if t == nil {
		return n, nil
	}

	if b, ok := n.(*Branch); ok && b.Waiting() {
		return insertOperator(t, b.Op)
	}

	return insertOperand(t, n), nil
}

func insertOperand(t, n Node) Node {
	if filled, ok := fill(t, n); ok {
		return filled
	}

	filled, _ := fill(rotate(t, Mul), n)

	return filled
}

func insertOperator(t Node, o Operator) (Node, error) {
	if o == Equal && equality(t) {
		return nil, failure.New(failure.TooManyEqualSigns, "too many equal signs")
	}

	return rotate(closePrefix(t), o), nil
}

// closePrefix marks the branch that owns the left-most open slot as a
// prefix operator. It is called when an operator arrives while the slot
// is still waiting for an operand, so nothing will ever fill it.
func closePrefix(t Node) Node {
	b, ok := t.(*Branch)
	if !ok || b.Opaque() {
		return t
	}

	c := *b

	if b.Left == nil {
		c.Prefix = true
	} else {
		c.Left = closePrefix(b.Left)
	}

	return &c
}

// equality returns true if '=' appears on the open left spine of t.
func equality(t Node) bool {
	for {
		b, ok := t.(*Branch)
		if !ok || b.Opaque() {
			return false
		}

		if b.Op == Equal {
			return true
		}

		t = b.Left
	}
}

// fill places n in the left-most open slot of t.
func fill(t, n Node) (Node, bool) {
	b, ok := t.(*Branch)
	if !ok || b.Opaque() {
		return t, false
	}

	c := *b

	if b.Left == nil {
		c.Left = n

		return &c, true
	}

	left, ok := fill(b.Left, n)
	if !ok {
		return t, false
	}

	c.Left = left

	return &c, true
}

// rotate places a new operator o to the left of t.
func rotate(t Node, o Operator) Node {
	b, ok := t.(*Branch)
	if !ok || b.Opaque() || o.Priority() < b.Op.Priority() {
		return &Branch{Op: o, Right: t}
	}

	c := *b
	c.Left = rotate(b.Left, o)

	return &c
}
