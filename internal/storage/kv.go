package storage

import (
	"errors"
	"os"
	"path/filepath"
)

// KV stores opaque values by key.
type KV interface {
	// Get returns the value for key; ok is false when nothing is stored.
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}

// FileKV keeps one file per key in a directory.
type FileKV struct {
	basePath string
}

// NewFileKV creates a store rooted at basePath. The directory is created on
// first write.
func NewFileKV(basePath string) *FileKV {
	return &FileKV{basePath: basePath}
}

// FilePath returns the file backing key.
func (f *FileKV) FilePath(key string) string {
	return filepath.Join(f.basePath, key+".json")
}

// Get implements KV.
func (f *FileKV) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.FilePath(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set implements KV. The value is written to a temporary file and renamed
// into place.
func (f *FileKV) Set(key string, value []byte) error {
	if err := os.MkdirAll(f.basePath, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(f.basePath, key+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.FilePath(key))
}
