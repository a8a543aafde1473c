package xattr

import (
	"fmt"
	"os"
)

// File addresses a file system object through an open descriptor.
// The *os.File remains owned by the caller and must stay open for the
// duration of each operation.
type File struct {
	f *os.File
}

// NewFile returns a handle that reads and writes attributes through f.
func NewFile(f *os.File) *File {
	return &File{f: f}
}

func (f *File) fd() int { return int(f.f.Fd()) }

func (f *File) name() string { return f.f.Name() }

// List returns the attribute names present on the object.
func (f *File) List(opts Options) ([]string, error) {
	f.mustBeUsable()
	return listAttrs(f.name(), f.sysList, opts)
}

// Get returns the value of the named attribute.
func (f *File) Get(name string, opts Options) ([]byte, error) {
	f.mustBeUsable()
	return getAttr(f.name(), f.sysGet, name, opts)
}

// Set stores value under the named attribute.
func (f *File) Set(name string, value []byte, opts Options) error {
	f.mustBeUsable()
	return setAttr(f.name(), f.sysSet, name, value, opts)
}

// Remove deletes the named attribute.
func (f *File) Remove(name string, opts Options) error {
	f.mustBeUsable()
	return removeAttr(f.name(), f.sysRemove, name, opts)
}

// mustBeUsable panics unless the descriptor refers to a regular file,
// directory, or symbolic link. Anything else is caller misuse.
func (f *File) mustBeUsable() {
	if f == nil || f.f == nil {
		panic("xattr: operation on nil file handle")
	}
	fi, err := f.f.Stat()
	if err != nil {
		panic("xattr: file handle is not usable: " + err.Error())
	}
	if m := fi.Mode(); !m.IsRegular() && !m.IsDir() && m&os.ModeSymlink == 0 {
		panic(fmt.Sprintf("xattr: unsupported file type %v for %s", m, f.name()))
	}
}
