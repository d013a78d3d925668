// Released under an MIT license. See LICENSE.

// Package history loads and saves the REPL's line history.
package history

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// Load passes the history file at path to read.
// A missing history file is not an error.
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}
	defer f.Close()

	_, err = read(f)

	return err
}

// Save passes a truncated history file at path to write.
func Save(path string, write func(w io.Writer) (int, error)) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
