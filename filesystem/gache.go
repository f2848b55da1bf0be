package filesystem

import (
	"io"
	"os"
)

// GacheFs lets gache store the response cache on the current backend,
// so cached Jikan pages land in memory during tests.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
