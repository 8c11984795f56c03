// Released under an MIT license. See LICENSE.

// Package terminal reports the size of the controlling terminal.
package terminal

// Columns is used when the width of the terminal cannot be determined.
const Columns = 80

// Width returns the number of columns of the terminal open on fd.
func Width(fd uintptr) int {
	if w := width(fd); w > 0 {
		return w
	}

	return Columns
}
