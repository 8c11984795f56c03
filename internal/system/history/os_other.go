// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package history

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Name is the name of the history file in the user's home directory.
const Name = ".computor_history"

func file(op func(string) (*os.File, error)) (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "finding home directory")
	}

	return op(filepath.Join(home, Name))
}
