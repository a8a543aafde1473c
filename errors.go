package xattr

import (
	"errors"
	"fmt"
	"syscall"
)

// Error is an attribute operation that failed in the operating
// system. Err holds the raw errno; Name is set when the failure
// concerns a single attribute.
type Error struct {
	Op   string
	Path string
	Name string
	Err  error
}

func (e *Error) Error() string {
	if e.Name == "" {
		return e.Op + " " + e.Path + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + " " + e.Name + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Errno returns the numeric error code reported by the OS, or 0 if
// the underlying error was not an errno.
func (e *Error) Errno() syscall.Errno {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return errno
	}
	return 0
}

// DecodeError is an attribute name list that could not be decoded as
// UTF-8 text. No error code applies; the syscalls themselves
// succeeded.
type DecodeError struct {
	Path string
	Raw  []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("xattr: attribute name list for %s is not valid utf-8", e.Path)
}

// IsNotExist returns true if err indicates that the named attribute
// does not exist on the target.
func IsNotExist(err error) bool {
	return errors.Is(err, ENOATTR)
}
