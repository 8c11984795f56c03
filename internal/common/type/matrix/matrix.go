// Released under an MIT license. See LICENSE.

// Package matrix provides computor's dense matrix type.
package matrix

import (
	"strings"

	"github.com/michaelmacinnis/computor/internal/common/failure"
	"github.com/michaelmacinnis/computor/internal/common/type/imaginary"
)

// T (matrix) is a width x height matrix stored row-major.
type T struct {
	width  int
	height int
	cells  []imaginary.T
}

type matrix = T

// New creates a matrix from rows. Every row must have the same length.
func New(rows [][]imaginary.T) (*T, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, failure.New(failure.MatrixDimension, "empty matrix")
	}

	m := &matrix{
		width:  len(rows[0]),
		height: len(rows),
		cells:  make([]imaginary.T, 0, len(rows)*len(rows[0])),
	}

	for _, row := range rows {
		if len(row) != m.width {
			return nil, failure.New(failure.MatrixDimension, "rows of different lengths")
		}

		m.cells = append(m.cells, row...)
	}

	return m, nil
}

// Add returns the elementwise sum of m and o.
func (m *T) Add(o *T) (*T, error) {
	return m.elementwise(o, "add", imaginary.T.Add)
}

// At returns the element at row r, column c.
func (m *T) At(r, c int) imaginary.T {
	return m.cells[r*m.width+c]
}

// Equal returns true if m and o have the same dimensions and elements.
func (m *T) Equal(o *T) bool {
	if m.width != o.width || m.height != o.height {
		return false
	}

	for i, v := range m.cells {
		if !v.Equal(o.cells[i]) {
			return false
		}
	}

	return true
}

// Height returns the number of rows in m.
func (m *T) Height() int {
	return m.height
}

// Mul returns the matrix product m x o.
func (m *T) Mul(o *T) (*T, error) {
	if m.width != o.height {
		return nil, failure.New(
			failure.MatrixDimension,
			"cannot multiply %dx%d by %dx%d matrix",
			m.height, m.width, o.height, o.width,
		)
	}

	p := &matrix{
		width:  o.width,
		height: m.height,
		cells:  make([]imaginary.T, m.height*o.width),
	}

	for r := 0; r < m.height; r++ {
		for c := 0; c < o.width; c++ {
			sum := imaginary.T{}

			for k := 0; k < m.width; k++ {
				v, err := m.At(r, k).Mul(o.At(k, c))
				if err != nil {
					return nil, err
				}

				if sum, err = sum.Add(v); err != nil {
					return nil, err
				}
			}

			p.cells[r*p.width+c] = sum
		}
	}

	return p, nil
}

// Scale returns m with every element multiplied by v.
func (m *T) Scale(v imaginary.T) (*T, error) {
	s := &matrix{
		width:  m.width,
		height: m.height,
		cells:  make([]imaginary.T, len(m.cells)),
	}

	for i, c := range m.cells {
		p, err := c.Mul(v)
		if err != nil {
			return nil, err
		}

		s.cells[i] = p
	}

	return s, nil
}

// String returns the text of m, one row per line, with columns aligned.
func (m *T) String() string {
	text := make([]string, len(m.cells))
	widths := make([]int, m.width)

	for i, v := range m.cells {
		text[i] = v.String()
		if c := i % m.width; len(text[i]) > widths[c] {
			widths[c] = len(text[i])
		}
	}

	rows := make([]string, m.height)

	for r := range rows {
		cols := make([]string, m.width)
		for c := range cols {
			s := text[r*m.width+c]
			cols[c] = strings.Repeat(" ", widths[c]-len(s)) + s
		}

		rows[r] = "[ " + strings.Join(cols, " , ") + " ]"
	}

	return strings.Join(rows, "\n")
}

// Sub returns the elementwise difference of m and o.
func (m *T) Sub(o *T) (*T, error) {
	return m.elementwise(o, "subtract", imaginary.T.Sub)
}

// Width returns the number of columns in m.
func (m *T) Width() int {
	return m.width
}

func (m *T) elementwise(
	o *T, verb string, op func(a, b imaginary.T) (imaginary.T, error),
) (*T, error) {
	if m.width != o.width || m.height != o.height {
		return nil, failure.New(
			failure.MatrixDimension,
			"cannot %s %dx%d and %dx%d matrices",
			verb, m.height, m.width, o.height, o.width,
		)
	}

	r := &matrix{
		width:  m.width,
		height: m.height,
		cells:  make([]imaginary.T, len(m.cells)),
	}

	for i, v := range m.cells {
		c, err := op(v, o.cells[i])
		if err != nil {
			return nil, err
		}

		r.cells[i] = c
	}

	return r, nil
}
