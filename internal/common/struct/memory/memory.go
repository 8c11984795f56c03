// Released under an MIT license. See LICENSE.

// Package memory provides computor's variable and function table.
//
// A table lives for as long as a session. It is only changed by an explicit
// assignment or definition, never during the evaluation of an expression.
package memory

import (
	"sort"
	"strings"

	"github.com/michaelmacinnis/computor/internal/common/struct/tree"
	"github.com/michaelmacinnis/computor/internal/common/type/computed"
)

// Function is a user-defined function.
type Function struct {
	Params []string
	Body   tree.Node
}

// Expand returns the body of f with each parameter replaced by the
// corresponding argument tree.
func (f *Function) Expand(args []tree.Node) tree.Node {
	bindings := make(map[string]tree.Node, len(f.Params))

	for i, p := range f.Params {
		if i < len(args) {
			bindings[p] = args[i]
		}
	}

	return tree.Substitute(f.Body, bindings)
}

// String returns the text of the body of f.
func (f *Function) String() string {
	return tree.String(f.Body)
}

// T (memory) maps names to variables and functions.
type T struct {
	functions map[string]*Function
	variables map[string]computed.T
}

type memory = T

// New creates an empty table.
func New() *T {
	return &memory{
		functions: map[string]*Function{},
		variables: map[string]computed.T{},
	}
}

// Assign sets the variable name to the concrete value v.
func (m *memory) Assign(name string, v computed.T) {
	m.variables[name] = computed.Unbind(v)
}

// Define sets the function name to f.
func (m *memory) Define(name string, f *Function) {
	m.functions[name] = f
}

// Function returns the function called name, if any.
func (m *memory) Function(name string) (*Function, bool) {
	f, ok := m.functions[name]

	return f, ok
}

// Functions returns the names of all defined functions in order.
func (m *memory) Functions() []string {
	return keys(m.functions)
}

// Signature returns the text "name(params)" for the function called name.
func (m *memory) Signature(name string) string {
	f, ok := m.functions[name]
	if !ok {
		return name
	}

	return name + "(" + strings.Join(f.Params, ", ") + ")"
}

// Variable returns the value of the variable name, if any.
func (m *memory) Variable(name string) (computed.T, bool) {
	v, ok := m.variables[name]

	return v, ok
}

// Variables returns the names of all assigned variables in order.
func (m *memory) Variables() []string {
	return keys(m.variables)
}

func keys[V any](m map[string]V) []string {
	k := make([]string, 0, len(m))
	for n := range m {
		k = append(k, n)
	}

	sort.Strings(k)

	return k
}
