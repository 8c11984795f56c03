// Released under an MIT license. See LICENSE.

package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/computor/internal/common/failure"
)

func TestCount(t *testing.T) {
	require.Equal(t, "1 argument", Count(1, "argument", "s"))
	require.Equal(t, "0 arguments", Count(0, "argument", "s"))
	require.Equal(t, "2 arguments", Count(2, "argument", "s"))
}

func TestFixed(t *testing.T) {
	require.NoError(t, Fixed("f(x)", 1, 1, 1))
	require.NoError(t, Fixed(":vars", 0, 0, 1))

	err := Fixed("f(x)", 2, 1, 1)
	require.True(t, failure.Is(err, failure.WrongArgumentCount))
	require.EqualError(t, err, "f(x) expected 1 argument, passed 2")

	err = Fixed(":vars", 2, 0, 1)
	require.EqualError(t, err, ":vars expected 0 to 1 argument, passed 2")

	err = Fixed("g(a, b)", 0, 2, 2)
	require.EqualError(t, err, "g(a, b) expected 2 arguments, passed 0")
}
