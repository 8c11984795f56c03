// Released under an MIT license. See LICENSE.

// Package history loads and saves the line-editing history.
package history

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Load calls read with the history file, if there is one.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return nil
		}

		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return errors.Wrap(err, "reading history")
	}

	return f.Close()
}

// Save calls write with a newly created history file.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return errors.Wrap(err, "writing history")
	}

	return f.Close()
}
