// Package xattr provides access to the extended attributes of files
// and directories, addressed either by path or through an open
// *os.File.
//
// Attribute values are opaque byte sequences. Attribute names are
// text; the OS reports them as a NUL separated list, which this
// package decodes for the caller.
package xattr

// Handle is a file system object whose extended attributes can be
// read and modified. Path and File are the two implementations; both
// expose the same operations and differ only in how the object is
// addressed.
type Handle interface {
	// List returns the attribute names present on the target, in
	// the order the OS reports them.
	List(opts Options) ([]string, error)

	// Get returns the value of the named attribute. The value may
	// be empty.
	Get(name string, opts Options) ([]byte, error)

	// Set stores value under the named attribute, replacing any
	// previous value. A name that is empty or all NUL bytes is
	// silently ignored.
	Set(name string, value []byte, opts Options) error

	// Remove deletes the named attribute. Removing an attribute
	// that does not exist is an error.
	Remove(name string, opts Options) error
}

var (
	_ Handle = Path("")
	_ Handle = (*File)(nil)
)
