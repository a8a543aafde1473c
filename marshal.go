package xattr

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// The concrete OS entry points are passed to the marshaling functions
// as values, so the size-probe/fill protocol is written once and
// shared by the path and descriptor bindings.
type (
	listFunc   func(dest []byte, opts Options) (int, error)
	getFunc    func(name string, dest []byte, opts Options) (int, error)
	setFunc    func(name string, value []byte, opts Options) error
	removeFunc func(name string, opts Options) error
)

func listAttrs(target string, list listFunc, opts Options) ([]string, error) {
	opts.mustBeValid("list", listOpts)

	// Probe with no buffer to learn the size of the name list.
	size, err := list(nil, opts)
	if err != nil {
		return nil, &Error{Op: "listxattr", Path: target, Err: err}
	}
	if size == 0 {
		return []string{}, nil
	}

	buf := make([]byte, size)
	n, err := list(buf, opts)
	if err != nil {
		return nil, &Error{Op: "listxattr", Path: target, Err: err}
	}
	return splitNames(target, buf[:n])
}

// splitNames decodes a raw name list into individual attribute names.
// Entries are NUL terminated; empty entries are dropped so the final
// terminator does not turn into a spurious empty name.
func splitNames(target string, buf []byte) ([]string, error) {
	if !utf8.Valid(buf) {
		return nil, &DecodeError{Path: target, Raw: buf}
	}
	names := []string{}
	for _, name := range bytes.Split(buf, []byte{0}) {
		if len(name) > 0 {
			names = append(names, string(name))
		}
	}
	return names, nil
}

func getAttr(target string, get getFunc, name string, opts Options) ([]byte, error) {
	opts.mustBeValid("get", getOpts)

	size, err := get(name, nil, opts)
	if err != nil {
		return nil, &Error{Op: "getxattr", Path: target, Name: name, Err: err}
	}
	if size == 0 {
		// The attribute exists but holds no data.
		return []byte{}, nil
	}

	buf := make([]byte, size)
	n, err := get(name, buf, opts)
	if err != nil {
		return nil, &Error{Op: "getxattr", Path: target, Name: name, Err: err}
	}
	return buf[:n], nil
}

func setAttr(target string, set setFunc, name string, value []byte, opts Options) error {
	opts.mustBeValid("set", setOpts)

	// A name that is empty, or is nothing but NUL bytes, has always
	// been accepted as a no-op and callers depend on that.
	if strings.Trim(name, "\x00") == "" {
		return nil
	}

	if err := set(name, value, opts); err != nil {
		return &Error{Op: "setxattr", Path: target, Name: name, Err: err}
	}
	return nil
}

func removeAttr(target string, remove removeFunc, name string, opts Options) error {
	opts.mustBeValid("remove", removeOpts)

	if err := remove(name, opts); err != nil {
		return &Error{Op: "removexattr", Path: target, Name: name, Err: err}
	}
	return nil
}
