// Released under an MIT license. See LICENSE.

// Package validate checks argument counts for functions and commands.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/computor/internal/common/failure"
)

// Count returns n followed by label, pluralized with p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// Fixed returns an error unless min <= passed <= max.
func Fixed(name string, passed, min, max int) error {
	if passed < min || passed > max {
		return failure.New(
			failure.WrongArgumentCount,
			"%s expected %s, passed %d",
			name, expected(min, max), passed,
		)
	}

	return nil
}

func expected(min, max int) string {
	if min == max {
		return Count(max, "argument", "s")
	}

	return fmt.Sprintf("%d to %s", min, Count(max, "argument", "s"))
}
