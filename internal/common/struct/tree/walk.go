// Released under an MIT license. See LICENSE.

package tree

import (
	"strings"
)

// Invalids returns the Invalid terms in n, including those nested in
// function arguments and matrix elements.
func Invalids(n Node) []Invalid {
	var found []Invalid

	walk(n, func(t Term) {
		if i, ok := t.(Invalid); ok {
			found = append(found, i)
		}
	})

	return found
}

// String returns the text of n.
func String(n Node) string {
	var sb strings.Builder

	write(&sb, n)

	return sb.String()
}

// Substitute returns a copy of n with every variable named in bindings
// replaced by its bound tree. Bound trees that are operator branches are
// parenthesized so that they stay intact wherever they land.
func Substitute(n Node, bindings map[string]Node) Node {
	switch n := n.(type) {
	case *Branch:
		c := *n
		c.Left = Substitute(n.Left, bindings)
		c.Right = Substitute(n.Right, bindings)

		return &c
	case Leaf:
		switch t := n.Term.(type) {
		case Call:
			args := make([]Node, len(t.Args))
			for i, a := range t.Args {
				args[i] = Substitute(a, bindings)
			}

			return NewLeaf(Call{Name: t.Name, Args: args})
		case Matrix:
			rows := make([][]Node, len(t.Rows))
			for i, row := range t.Rows {
				rows[i] = make([]Node, len(row))
				for j, e := range row {
					rows[i][j] = Substitute(e, bindings)
				}
			}

			return NewLeaf(Matrix{Rows: rows})
		case Variable:
			if b, ok := bindings[t.Name]; ok {
				if br, ok := b.(*Branch); ok && !br.Parenthesized {
					c := *br
					c.Parenthesized = true

					return &c
				}

				return b
			}
		}
	}

	return n
}

func walk(n Node, f func(Term)) {
	switch n := n.(type) {
	case *Branch:
		walk(n.Left, f)
		walk(n.Right, f)
	case Leaf:
		f(n.Term)

		switch t := n.Term.(type) {
		case Call:
			for _, a := range t.Args {
				walk(a, f)
			}
		case Matrix:
			for _, row := range t.Rows {
				for _, e := range row {
					walk(e, f)
				}
			}
		}
	}
}

func write(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Branch:
		if n.Parenthesized {
			sb.WriteByte('(')
		}

		if n.Left != nil {
			write(sb, n.Left)
			sb.WriteByte(' ')
		}

		sb.WriteString(n.Op.String())

		if n.Right != nil {
			if n.Left != nil {
				sb.WriteByte(' ')
			}

			write(sb, n.Right)
		}

		if n.Parenthesized {
			sb.WriteByte(')')
		}
	case Leaf:
		switch t := n.Term.(type) {
		case Call:
			sb.WriteString(t.Name)
			sb.WriteByte('(')

			for i, a := range t.Args {
				if i > 0 {
					sb.WriteString(", ")
				}

				write(sb, a)
			}

			sb.WriteByte(')')
		case Invalid:
			sb.WriteString(t.Diagnostic)
		case Matrix:
			sb.WriteByte('[')

			for i, row := range t.Rows {
				if i > 0 {
					sb.WriteByte(';')
				}

				sb.WriteByte('[')

				for j, e := range row {
					if j > 0 {
						sb.WriteByte(',')
					}

					write(sb, e)
				}

				sb.WriteByte(']')
			}

			sb.WriteByte(']')
		case Operand:
			sb.WriteString(t.Value.String())
		case Resolve:
			sb.WriteByte('?')
		case Variable:
			sb.WriteString(t.Name)
		}
	}
}
