// Released under an MIT license. See LICENSE.

// Package parser turns computor tokens into an expression tree.
//
// Groups are handled first and recursively: each (...) group, function
// argument and matrix element is built into its own tree. What is left is
// a flat list of operands and operators which is folded, right to left,
// into a single tree with tree.Insert.
package parser

import (
	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/computor/internal/common/struct/token"
	"github.com/michaelmacinnis/computor/internal/common/struct/tree"
	"github.com/michaelmacinnis/computor/internal/common/type/imaginary"
	"github.com/michaelmacinnis/computor/internal/common/type/rational"
)

// Instruction is a parsed line.
type Instruction struct {
	// Tree is nil for an empty line.
	Tree tree.Node

	// Query is true when the line ended with a '?' that did not directly
	// follow '='. The '?' itself is not part of the tree.
	Query bool
}

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser that reads tokens by calling item.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// Parse consumes tokens until there are no more and returns the instruction.
func (p *T) Parse() (*Instruction, error) {
	nodes, err := p.sequence()
	if err != nil {
		return nil, err
	}

	i := &Instruction{}

	if n := len(nodes); n > 0 && isResolve(nodes[n-1]) {
		if n < 2 || !isEqual(nodes[n-2]) {
			nodes = nodes[:n-1]
			i.Query = true
		}
	}

	i.Tree, err = build(nodes)
	if err != nil {
		return nil, err
	}

	return i, nil
}

func (p *T) call(t *token.T) (tree.Node, error) {
	var args []tree.Node

	problem := ""

	for {
		nodes, closer, err := p.group(',', ')')
		if err != nil {
			return nil, err
		}

		if closer == nil {
			return invalid("unmatched '" + t.Value() + "('"), nil
		}

		switch {
		case len(nodes) > 0:
			n, err := build(nodes)
			if err != nil {
				return nil, err
			}

			args = append(args, n)
		case closer.Is(',') || len(args) > 0:
			problem = "empty argument in call to " + t.Value()
		}

		if closer.Is(')') {
			break
		}
	}

	if problem != "" {
		return invalid(problem), nil
	}

	return tree.NewLeaf(tree.Call{Name: t.Value(), Args: args}), nil
}

func (p *T) consume() *token.T {
	t := p.peek()

	p.ahead = 0
	p.token = nil

	return t
}

// group collects nodes until one of the closers is consumed. The closer is
// returned or nil if the tokens ran out first.
func (p *T) group(closers ...token.Class) ([]tree.Node, *token.T, error) {
	var nodes []tree.Node

	for t := p.peek(); t != nil; t = p.peek() {
		if t.Is(closers...) {
			return nodes, p.consume(), nil
		}

		n, err := p.term()
		if err != nil {
			return nil, nil, err
		}

		if n != nil {
			nodes = append(nodes, n)
		}
	}

	return nodes, nil, nil
}

func (p *T) matrix() (tree.Node, error) {
	var rows [][]tree.Node

	for {
		if !p.peek().Is('[') {
			return invalid("malformed matrix"), nil
		}

		p.consume()

		var row []tree.Node

		for {
			nodes, closer, err := p.group(',', ']')
			if err != nil {
				return nil, err
			}

			if closer == nil {
				return invalid("unmatched '['"), nil
			}

			if len(nodes) == 0 {
				return invalid("empty matrix element"), nil
			}

			n, err := build(nodes)
			if err != nil {
				return nil, err
			}

			row = append(row, n)

			if closer.Is(']') {
				break
			}
		}

		rows = append(rows, row)

		switch t := p.consume(); {
		case t.Is(';'):
			continue
		case t.Is(']'):
		default:
			return invalid("malformed matrix"), nil
		}

		break
	}

	for _, row := range rows[1:] {
		if len(row) != len(rows[0]) {
			return invalid("matrix rows of different lengths"), nil
		}
	}

	return tree.NewLeaf(tree.Matrix{Rows: rows}), nil
}

func (p *T) parenthesized() (tree.Node, error) {
	nodes, closer, err := p.group(')')
	if err != nil {
		return nil, err
	}

	if closer == nil {
		return invalid("unmatched '('"), nil
	}

	if len(nodes) == 0 {
		return nil, nil
	}

	n, err := build(nodes)
	if err != nil {
		return nil, err
	}

	if b, ok := n.(*tree.Branch); ok {
		c := *b
		c.Parenthesized = true

		return &c, nil
	}

	return n, nil
}

func (p *T) peek() *token.T {
	if p.ahead == 0 {
		p.token = p.item()
		p.ahead = 1
	}

	return p.token
}

func (p *T) sequence() ([]tree.Node, error) {
	nodes, _, err := p.group()

	return nodes, err
}

// term consumes the tokens for one node. A nil node means nothing to insert.
func (p *T) term() (tree.Node, error) {
	t := p.consume()

	switch t.Class() {
	case token.Call:
		return p.call(t)
	case token.Error:
		return invalid(adapted.CanonicalString(t.Value())), nil
	case token.Number:
		v, err := rational.Parse(t.Value())
		if err != nil {
			return invalid(err.Error()), nil
		}

		return tree.NewLeaf(tree.Operand{Value: imaginary.Real(v)}), nil
	case token.Symbol:
		if t.Value() == "i" {
			return tree.NewLeaf(tree.Operand{Value: imaginary.Unit()}), nil
		}

		return tree.NewLeaf(tree.Variable{Name: t.Value()}), nil
	case '(':
		return p.parenthesized()
	case '[':
		return p.matrix()
	case '?':
		return tree.NewLeaf(tree.Resolve{}), nil
	case '%', '*', '+', '-', '/', '=', '^':
		return tree.NewOperator(tree.Operator(t.Class())), nil
	}

	return invalid("unexpected '" + t.Value() + "'"), nil
}

// Helper functions.

func build(nodes []tree.Node) (tree.Node, error) {
	var (
		t   tree.Node
		err error
	)

	for i := len(nodes) - 1; i >= 0; i-- {
		t, err = tree.Insert(t, nodes[i])
		if err != nil {
			return nil, err
		}
	}

	return t, nil
}

func invalid(diagnostic string) tree.Node {
	return tree.NewLeaf(tree.Invalid{Diagnostic: diagnostic})
}

func isEqual(n tree.Node) bool {
	b, ok := n.(*tree.Branch)

	return ok && b.Waiting() && b.Op == tree.Equal
}

func isResolve(n tree.Node) bool {
	l, ok := n.(tree.Leaf)
	if !ok {
		return false
	}

	_, ok = l.Term.(tree.Resolve)

	return ok
}
