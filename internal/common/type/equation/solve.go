// Released under an MIT license. See LICENSE.

package equation

import (
	"math"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/computor/internal/common/type/imaginary"
	"github.com/michaelmacinnis/computor/internal/common/type/rational"
)

// Outcome classifies the result of solving an equation.
type Outcome int

// Outcomes.
const (
	AnyValue Outcome = iota
	NoSolution
	OneRoot
	TwoRealRoots
	TwoComplexRoots
	DoubleRoot
	NegativePower
	ComplexCoefficient
	Unsupported
)

// Solution is the result of solving an equation for its unknown.
type Solution struct {
	Degree  int
	Outcome Outcome
	Reduced string
	Roots   []imaginary.T
	Unknown string
}

// Solve solves e = 0 for its unknown. Equations of degree greater than 2,
// with negative exponents or with non-real coefficients are reported as
// such and not solved.
func (e *T) Solve() (*Solution, error) {
	p := e.Prune()

	s := &Solution{
		Reduced: p.String(),
		Unknown: p.unknown,
	}

	for n := range p.terms {
		if n < 0 {
			s.Outcome = NegativePower

			return s, nil
		}
	}

	for _, c := range p.terms {
		if !c.IsReal() {
			s.Outcome = ComplexCoefficient

			return s, nil
		}
	}

	degree, ok := p.Degree()
	if !ok {
		s.Outcome = AnyValue

		return s, nil
	}

	s.Degree = degree

	c0 := p.terms[0].Real
	c1 := p.terms[1].Real
	c2 := p.terms[2].Real

	switch degree {
	case 0:
		s.Outcome = NoSolution
	case 1:
		return s, s.linear(c0, c1)
	case 2:
		return s, s.quadratic(c0, c1, c2)
	default:
		s.Outcome = Unsupported
	}

	return s, nil
}

// String returns the report for the solution s.
func (s *Solution) String() string {
	lines := []string{"Reduced form: " + s.Reduced + " = 0"}

	switch s.Outcome {
	case NegativePower:
		return join(lines, "The equation has a negative power of "+s.Unknown+", I can't solve.")
	case ComplexCoefficient:
		return join(lines, "The equation has a complex coefficient, I can't solve.")
	case AnyValue:
		return join(lines, "Any value of "+s.Unknown+" is a solution.")
	}

	lines = append(lines, "Polynomial degree: "+strconv.Itoa(s.Degree))

	switch s.Outcome {
	case NoSolution:
		lines = append(lines, "False.")
	case OneRoot:
		lines = append(lines, "Solution: "+s.root(0))
	case TwoRealRoots:
		lines = append(lines, "Delta is strictly positive, the two solutions are:", s.root(0), s.root(1))
	case TwoComplexRoots:
		lines = append(lines, "Delta is strictly negative, the two complex solutions are:", s.root(0), s.root(1))
	case DoubleRoot:
		lines = append(lines, "Delta is zero, the solution is:", s.root(0))
	case Unsupported:
		lines = append(lines, "The polynomial degree is strictly greater than 2, I can't solve.")
	}

	return strings.Join(lines, "\n")
}

func (s *Solution) linear(c0, c1 rational.T) error {
	x, err := c0.Neg().Div(c1)
	if err != nil {
		return err
	}

	s.Outcome = OneRoot
	s.Roots = []imaginary.T{imaginary.Real(x)}

	return nil
}

func (s *Solution) quadratic(c0, c1, c2 rational.T) error {
	// delta = c1^2 - 4*c2*c0
	square, err := c1.Mul(c1)
	if err != nil {
		return err
	}

	product, err := rational.Int(4).Mul(c2)
	if err == nil {
		product, err = product.Mul(c0)
	}

	if err != nil {
		return err
	}

	delta, err := square.Sub(product)
	if err != nil {
		return err
	}

	twice, err := rational.Int(2).Mul(c2)
	if err != nil {
		return err
	}

	// Real part shared by every root: -c1 / (2*c2).
	re, err := c1.Neg().Div(twice)
	if err != nil {
		return err
	}

	if delta.IsZero() {
		s.Outcome = DoubleRoot
		s.Roots = []imaginary.T{imaginary.Real(re)}

		return nil
	}

	root, ok := delta.Abs().Root()
	if !ok {
		return s.rounded(re, delta, twice)
	}

	offset, err := root.Div(twice)
	if err != nil {
		return err
	}

	return s.roots(re, offset, delta.Sign() < 0)
}

// rounded finds the roots when the square root of delta is irrational.
// Each root is computed in floating point and rounded once at the end.
func (s *Solution) rounded(re, delta, twice rational.T) error {
	offset := math.Sqrt(delta.Abs().Float64()) / twice.Float64()

	if delta.Sign() < 0 {
		im, err := rational.Float(offset)
		if err != nil {
			return err
		}

		return s.roots(re, im, true)
	}

	a, err := rational.Float(re.Float64() + offset)
	if err != nil {
		return err
	}

	b, err := rational.Float(re.Float64() - offset)
	if err != nil {
		return err
	}

	s.Outcome = TwoRealRoots
	s.Roots = []imaginary.T{imaginary.Real(a), imaginary.Real(b)}

	return nil
}

func (s *Solution) roots(re, offset rational.T, negative bool) error {
	if negative {
		s.Outcome = TwoComplexRoots
		s.Roots = []imaginary.T{
			{Real: re, Imag: offset},
			{Real: re, Imag: offset.Neg()},
		}

		return nil
	}

	a, err := re.Add(offset)
	if err != nil {
		return err
	}

	b, err := re.Sub(offset)
	if err != nil {
		return err
	}

	s.Outcome = TwoRealRoots
	s.Roots = []imaginary.T{imaginary.Real(a), imaginary.Real(b)}

	return nil
}

func (s *Solution) root(i int) string {
	return s.Unknown + " = " + s.Roots[i].String()
}

func join(lines []string, line string) string {
	return strings.Join(append(lines, line), "\n")
}
