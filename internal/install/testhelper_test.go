package install

import (
	"os"
	"path/filepath"
)

// faultSystem is a test helper that allows deterministic error injection for the
// installer System interface without chmod-based permission tricks.
type faultSystem struct {
	base      System
	statErrs  map[string]error
	lstatErrs map[string]error
	mkdirErrs map[string]error
	writeErrs map[string]error
	writes    []string
}

func newFaultSystem(base System) *faultSystem {
	return &faultSystem{
		base:      base,
		statErrs:  map[string]error{},
		lstatErrs: map[string]error{},
		mkdirErrs: map[string]error{},
		writeErrs: map[string]error{},
	}
}

func normalizePath(path string) string {
	return filepath.Clean(path)
}

func (f *faultSystem) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Stat(name)
}

func (f *faultSystem) Lstat(name string) (os.FileInfo, error) {
	if err, ok := f.lstatErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Lstat(name)
}

func (f *faultSystem) MkdirAll(path string, perm os.FileMode) error {
	if err, ok := f.mkdirErrs[normalizePath(path)]; ok {
		return err
	}
	return f.base.MkdirAll(path, perm)
}

func (f *faultSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	if err, ok := f.writeErrs[normalizePath(filename)]; ok {
		return err
	}
	f.writes = append(f.writes, normalizePath(filename))
	return f.base.WriteFileAtomic(filename, data, perm)
}
