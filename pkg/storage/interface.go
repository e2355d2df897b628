package storage

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/afero"
)

// ErrFileNotFound is returned by Open when the named file is not present
// in the store.
var ErrFileNotFound = errors.New("file not found")

type Storage interface {
	Save(filename string, reader io.Reader) (string, error)
	Open(filename string) (afero.File, os.FileInfo, error)
	Exists(filename string) (bool, error)
}
