package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

type LocalStorage struct {
	fs         afero.Fs
	basePath   string
	publicPath string
}

// NewLocalStorage returns a store rooted at basePath. The store is usable
// even when the directory cannot be created up front: the error is returned
// alongside it so callers can log and keep serving, and Save retries the
// mkdir on every write.
func NewLocalStorage(fs afero.Fs, basePath, publicPath string) (*LocalStorage, error) {
	store := &LocalStorage{
		fs:         fs,
		basePath:   basePath,
		publicPath: strings.TrimRight(publicPath, "/"),
	}

	if err := fs.MkdirAll(basePath, 0755); err != nil {
		return store, fmt.Errorf("failed to create base path: %w", err)
	}

	return store, nil
}

// Save writes the reader to basePath/<filename> and returns the public URL
// path of the stored file. Any directory component in filename is stripped.
func (l *LocalStorage) Save(filename string, reader io.Reader) (string, error) {
	if err := l.fs.MkdirAll(l.basePath, 0755); err != nil {
		return "", fmt.Errorf("failed to create base path: %w", err)
	}

	name := filepath.Base(filename)

	file, err := l.fs.Create(filepath.Join(l.basePath, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return l.publicPath + "/" + name, nil
}

// Open returns the stored file and its info. The caller owns the file handle.
func (l *LocalStorage) Open(filename string) (afero.File, os.FileInfo, error) {
	filePath := filepath.Join(l.basePath, filepath.Base(filename))

	file, err := l.fs.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, fmt.Errorf("failed to get file info: %w", err)
	}

	return file, stat, nil
}

func (l *LocalStorage) Exists(filename string) (bool, error) {
	filePath := filepath.Join(l.basePath, filepath.Base(filename))

	_, err := l.fs.Stat(filePath)
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}
