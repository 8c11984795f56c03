// Released under an MIT license. See LICENSE.

// Package failure provides computor's error type.
//
// Every error produced while reading, evaluating or solving an instruction
// carries a Kind. The REPL reports the error and moves on to the next
// instruction; nothing here is fatal.
package failure

import (
	"github.com/pkg/errors"
)

// Kind classifies an error.
type Kind int

// Error kinds.
const (
	Unknown Kind = iota

	Lexical
	MissingOperand
	TooManyEqualSigns
	ResolveMarker
	BadOperatorUse
	BadPower
	DivisionByZero
	DivideByEquation
	TooManyUnknowns
	MatrixInEquation
	MatrixOperation
	MatrixDimension
	UnknownVariable
	UnknownFunction
	WrongArgumentCount
	ReservedName
	BadDefinition
	RecursionLimit
	Overflow
)

//nolint:gochecknoglobals
var names = map[Kind]string{
	Unknown:            "unknown",
	Lexical:            "lexical",
	MissingOperand:     "missing operand",
	TooManyEqualSigns:  "too many equal signs",
	ResolveMarker:      "resolve marker",
	BadOperatorUse:     "bad operator use",
	BadPower:           "bad power",
	DivisionByZero:     "division by zero",
	DivideByEquation:   "divide by equation",
	TooManyUnknowns:    "too many unknowns",
	MatrixInEquation:   "matrix in equation",
	MatrixOperation:    "matrix operation",
	MatrixDimension:    "matrix dimension",
	UnknownVariable:    "unknown variable",
	UnknownFunction:    "unknown function",
	WrongArgumentCount: "wrong argument count",
	ReservedName:       "reserved name",
	BadDefinition:      "bad definition",
	RecursionLimit:     "recursion limit",
	Overflow:           "overflow",
}

// String returns a short description of the kind k.
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}

	return names[Unknown]
}

// T (failure) is an error with a kind.
type T struct {
	kind Kind
	err  error
}

type failure = T

// New creates an error of kind k with a formatted message.
func New(k Kind, format string, args ...interface{}) error {
	return &failure{
		kind: k,
		err:  errors.Errorf(format, args...),
	}
}

// Error returns the message for the failure f.
func (f *failure) Error() string {
	return f.err.Error()
}

// Kind returns the kind of the failure f.
func (f *failure) Kind() Kind {
	return f.kind
}

// Unwrap returns the underlying error.
func (f *failure) Unwrap() error {
	return f.err
}

// Is returns true if err, or any error it wraps, is a failure of kind k.
func Is(err error, k Kind) bool {
	return KindOf(err) == k
}

// KindOf returns the kind of err or Unknown if err is not a failure.
func KindOf(err error) Kind {
	var f *failure
	if errors.As(err, &f) {
		return f.kind
	}

	return Unknown
}

// Wrap annotates err with a formatted message while preserving its kind.
func Wrap(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
