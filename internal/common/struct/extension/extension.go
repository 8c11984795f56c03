// Released under an MIT license. See LICENSE.

// Package extension provides the bindings used to evaluate a function body.
//
// An extension is an immutable chain of name/value pairs. Adding a binding
// returns a new extension that shares everything already bound, so the
// same extension can be handed to any number of subtrees without copying.
// The nil extension has no bindings.
package extension

import (
	"github.com/michaelmacinnis/computor/internal/common/type/computed"
)

// T (extension) binds one name and links to the bindings made before it.
type T struct {
	name     string
	previous *extension
	value    computed.T
}

type extension = T

// Bind returns a new extension binding each name to the matching value.
func Bind(names []string, values []computed.T) *T {
	var x *extension

	for i, n := range names {
		x = x.With(n, values[i])
	}

	return x
}

// Lookup returns the value bound to name, if any.
func (x *extension) Lookup(name string) (computed.T, bool) {
	for ; x != nil; x = x.previous {
		if x.name == name {
			return x.value, true
		}
	}

	return nil, false
}

// With returns a new extension that adds name = v to x.
func (x *extension) With(name string, v computed.T) *T {
	return &extension{name: name, previous: x, value: v}
}
