// Released under an MIT license. See LICENSE.

package terminal

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWidthOfFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "width")
	require.NoError(t, err)

	defer f.Close()

	require.Equal(t, Columns, Width(f.Fd()))
}
