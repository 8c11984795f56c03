// Released under an MIT license. See LICENSE.

// Package rational provides computor's exact rational number type.
//
// A rational is a sign, an unsigned numerator and an unsigned denominator
// kept in lowest terms. Arithmetic is exact. Anything that would overflow
// a 64-bit word is reported as an error instead of wrapping.
package rational

import (
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/computor/internal/common/failure"
)

// Digits is the number of fractional decimal digits kept when converting
// from a float or a decimal literal.
const Digits = 10

// T (rational) is an exact rational number. The zero value is 0.
type T struct {
	negative bool
	num      uint64
	den      uint64
}

type rational = T

// Int creates a rational from the integer i.
func Int(i int64) T {
	if i < 0 {
		return T{negative: true, num: uint64(-(i + 1)) + 1, den: 1}
	}

	return T{num: uint64(i), den: 1}
}

// Frac creates the rational n/d.
func Frac(n, d int64) (T, error) {
	if d == 0 {
		return T{}, divisionByZero()
	}

	a, b := Int(n), Int(d)

	return a.Div(b)
}

// Float creates a rational from f, keeping at most Digits fractional digits.
func Float(f float64) (T, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return T{}, failure.New(failure.Overflow, "overflow converting %v", f)
	}

	negative := f < 0
	f = math.Abs(f)

	for digits := Digits; digits >= 0; digits-- {
		scaled := math.Round(f * math.Pow10(digits))
		if scaled < math.MaxUint64 {
			return reduce(negative, uint64(scaled), pow10(digits))
		}
	}

	return T{}, failure.New(failure.Overflow, "overflow converting %v", f)
}

// Parse creates a rational from the decimal literal s.
// Fractional digits beyond Digits are rounded.
func Parse(s string) (T, error) {
	whole, fraction, _ := strings.Cut(s, ".")

	if whole == "" && fraction == "" {
		return T{}, failure.New(failure.Lexical, "invalid number %q", s)
	}

	round := false
	if len(fraction) > Digits {
		round = fraction[Digits] >= '5'
		fraction = fraction[:Digits]
	}

	num, err := digits(whole+fraction, s)
	if err != nil {
		return T{}, err
	}

	if round {
		num, err = add64(num, 1)
		if err != nil {
			return T{}, err
		}
	}

	return reduce(false, num, pow10(len(fraction)))
}

// Abs returns the absolute value of r.
func (r T) Abs() T {
	r.negative = false

	return r
}

// Add returns r + o.
func (r T) Add(o T) (T, error) {
	rn, on, den, err := common(r, o)
	if err != nil {
		return T{}, err
	}

	if r.negative == o.negative {
		num, err := add64(rn, on)
		if err != nil {
			return T{}, err
		}

		return reduce(r.negative, num, den)
	}

	if rn >= on {
		return reduce(r.negative, rn-on, den)
	}

	return reduce(o.negative, on-rn, den)
}

// Cmp compares r and o and returns -1, 0, or +1.
func (r T) Cmp(o T) int {
	switch {
	case r.Sign() < o.Sign():
		return -1
	case r.Sign() > o.Sign():
		return 1
	}

	// a/b <=> c/d is a*d <=> c*b. The products are compared as 128-bit values.
	ah, al := bits.Mul64(r.num, o.denominator())
	ch, cl := bits.Mul64(o.num, r.denominator())

	c := 0

	switch {
	case ah < ch || (ah == ch && al < cl):
		c = -1
	case ah > ch || (ah == ch && al > cl):
		c = 1
	}

	if r.negative {
		return -c
	}

	return c
}

// Den returns the denominator of r.
func (r T) Den() uint64 {
	return r.denominator()
}

// Div returns r / o.
func (r T) Div(o T) (T, error) {
	if o.IsZero() {
		return T{}, divisionByZero()
	}

	return r.Mul(T{negative: o.negative, num: o.denominator(), den: o.num})
}

// Equal returns true if r and o are the same number.
func (r T) Equal(o T) bool {
	return r.Cmp(o) == 0
}

// Float64 returns the nearest float64 value for r.
func (r T) Float64() float64 {
	f := float64(r.num) / float64(r.denominator())
	if r.negative {
		return -f
	}

	return f
}

// Int64 returns r as an int64 if r is an integer that fits.
func (r T) Int64() (int64, bool) {
	if !r.IsInteger() {
		return 0, false
	}

	if r.negative {
		if r.num > 1<<63 {
			return 0, false
		}

		return -int64(r.num - 1) - 1, true
	}

	if r.num > math.MaxInt64 {
		return 0, false
	}

	return int64(r.num), true
}

// IsInteger returns true if r has no fractional part.
func (r T) IsInteger() bool {
	return r.denominator() == 1
}

// IsZero returns true if r is 0.
func (r T) IsZero() bool {
	return r.num == 0
}

// Mul returns r * o.
func (r T) Mul(o T) (T, error) {
	if r.IsZero() || o.IsZero() {
		return T{}, nil
	}

	// Cross-reduce first to keep the intermediate products small.
	g1 := gcd(r.num, o.denominator())
	g2 := gcd(o.num, r.denominator())

	num, err := mul64(r.num/g1, o.num/g2)
	if err != nil {
		return T{}, err
	}

	den, err := mul64(r.denominator()/g2, o.denominator()/g1)
	if err != nil {
		return T{}, err
	}

	return reduce(r.negative != o.negative, num, den)
}

// Neg returns -r.
func (r T) Neg() T {
	if !r.IsZero() {
		r.negative = !r.negative
	}

	return r
}

// Num returns the absolute value of the numerator of r.
func (r T) Num() uint64 {
	return r.num
}

// Rem returns the remainder of r / o truncated toward zero.
func (r T) Rem(o T) (T, error) {
	q, err := r.Div(o)
	if err != nil {
		return T{}, err
	}

	q = q.Trunc()

	p, err := o.Mul(q)
	if err != nil {
		return T{}, err
	}

	return r.Sub(p)
}

// Sign returns -1, 0 or +1 depending on the sign of r.
func (r T) Sign() int {
	switch {
	case r.IsZero():
		return 0
	case r.negative:
		return -1
	}

	return 1
}

// Sqrt returns the square root of r. The result is exact when the
// numerator and denominator are perfect squares; otherwise it is rounded
// to Digits fractional digits.
func (r T) Sqrt() (T, error) {
	if r.negative {
		return T{}, failure.New(failure.BadPower, "square root of negative number %s", r)
	}

	if root, ok := r.Root(); ok {
		return root, nil
	}

	return Float(math.Sqrt(r.Float64()))
}

// Root returns the exact square root of r. It returns false when r is
// negative or its square root is irrational.
func (r T) Root() (T, bool) {
	if r.negative {
		return T{}, false
	}

	n, nok := isqrt(r.num)
	d, dok := isqrt(r.denominator())

	if !nok || !dok {
		return T{}, false
	}

	root, err := reduce(false, n, d)

	return root, err == nil
}

// String returns the text of r. Integers and terminating decimals are
// written in decimal notation, everything else as n/d.
func (r T) String() string {
	sign := ""
	if r.negative {
		sign = "-"
	}

	den := r.denominator()
	if den == 1 {
		return sign + strconv.FormatUint(r.num, 10)
	}

	if s, ok := decimal(r.num, den); ok {
		return sign + s
	}

	return sign + strconv.FormatUint(r.num, 10) + "/" + strconv.FormatUint(den, 10)
}

// Sub returns r - o.
func (r T) Sub(o T) (T, error) {
	return r.Add(o.Neg())
}

// Trunc returns the integer part of r.
func (r T) Trunc() T {
	t, _ := reduce(r.negative, r.num/r.denominator(), 1)

	return t
}

func (r T) denominator() uint64 {
	if r.den == 0 {
		return 1
	}

	return r.den
}

// Helper functions.

func add64(a, b uint64) (uint64, error) {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, overflow()
	}

	return s, nil
}

func common(a, b T) (uint64, uint64, uint64, error) {
	ad, bd := a.denominator(), b.denominator()

	g := gcd(ad, bd)

	den, err := mul64(ad/g, bd)
	if err != nil {
		return 0, 0, 0, err
	}

	an, err := mul64(a.num, bd/g)
	if err != nil {
		return 0, 0, 0, err
	}

	bn, err := mul64(b.num, ad/g)
	if err != nil {
		return 0, 0, 0, err
	}

	return an, bn, den, nil
}

func decimal(num, den uint64) (string, bool) {
	scale := 0

	for d := den; d != 1; scale++ {
		switch {
		case d%10 == 0:
			d /= 10
		case d%2 == 0:
			d /= 2
		case d%5 == 0:
			d /= 5
		default:
			return "", false
		}
	}

	if scale > 19 {
		return "", false
	}

	hi, lo := bits.Mul64(num, pow10(scale)/den)
	if hi != 0 {
		return "", false
	}

	s := strconv.FormatUint(lo, 10)
	if len(s) <= scale {
		s = strings.Repeat("0", scale-len(s)+1) + s
	}

	return strings.TrimRight(s[:len(s)-scale]+"."+s[len(s)-scale:], "0"), true
}

func digits(s, literal string) (uint64, error) {
	n := uint64(0)

	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, failure.New(failure.Lexical, "invalid number %q", literal)
		}

		var err error

		n, err = mul64(n, 10)
		if err == nil {
			n, err = add64(n, uint64(c-'0'))
		}

		if err != nil {
			return 0, failure.New(failure.Overflow, "overflow reading %s", literal)
		}
	}

	return n, nil
}

func divisionByZero() error {
	return failure.New(failure.DivisionByZero, "division by zero")
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	if a == 0 {
		return 1
	}

	return a
}

func isqrt(n uint64) (uint64, bool) {
	r := uint64(math.Sqrt(float64(n)))

	// Correct for float64 rounding near the top of the range.
	for r > 0 && (r > math.MaxUint32 || r*r > n) {
		r--
	}

	for r < math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}

	return r, r*r == n
}

func mul64(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, overflow()
	}

	return lo, nil
}

func overflow() error {
	return failure.New(failure.Overflow, "arithmetic overflow")
}

func pow10(n int) uint64 {
	p := uint64(1)
	for ; n > 0; n-- {
		p *= 10
	}

	return p
}

func reduce(negative bool, num, den uint64) (T, error) {
	if den == 0 {
		return T{}, divisionByZero()
	}

	if num == 0 {
		return T{den: 1}, nil
	}

	g := gcd(num, den)

	return T{negative: negative, num: num / g, den: den / g}, nil
}
