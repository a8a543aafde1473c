package xattr

import (
	"fmt"
	"strings"
)

// Options is a set of flags modifying how an attribute operation
// behaves. Flags combine with the | operator. Each operation accepts
// only a subset of the flags; passing a flag outside that subset is a
// programming error and panics.
type Options uint32

const (
	// NoFollow operates on a symbolic link itself instead of the
	// file it points to.
	NoFollow Options = 1 << iota

	// CreateOnly fails a set if the attribute already exists.
	CreateOnly

	// ReplaceOnly fails a set unless the attribute already exists.
	ReplaceOnly

	// ShowCompression exposes the compression attributes the OS
	// normally hides. Only meaningful on Darwin; accepted but inert
	// elsewhere.
	ShowCompression
)

// Legal flag subsets per operation. CreateOnly and ReplaceOnly are
// mutually exclusive but that is left to the OS to reject.
const (
	listOpts   = NoFollow | ShowCompression
	getOpts    = NoFollow | ShowCompression
	setOpts    = NoFollow | CreateOnly | ReplaceOnly
	removeOpts = NoFollow | ShowCompression
)

var optionNames = []struct {
	opt  Options
	name string
}{
	{NoFollow, "NoFollow"},
	{CreateOnly, "CreateOnly"},
	{ReplaceOnly, "ReplaceOnly"},
	{ShowCompression, "ShowCompression"},
}

// Has returns true if every flag in flags is present in o.
func (o Options) Has(flags Options) bool {
	return o&flags == flags
}

// IsEmpty returns true if no flags are set.
func (o Options) IsEmpty() bool {
	return o == 0
}

func (o Options) String() string {
	if o == 0 {
		return "0"
	}
	var parts []string
	for _, f := range optionNames {
		if o&f.opt != 0 {
			parts = append(parts, f.name)
			o &^= f.opt
		}
	}
	if o != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint32(o)))
	}
	return strings.Join(parts, "|")
}

// mustBeValid panics if o holds flags outside allowed. A bad option
// set is caller misuse, not a runtime condition, so it is not
// reported through the error return.
func (o Options) mustBeValid(op string, allowed Options) {
	if bad := o &^ allowed; bad != 0 {
		panic(fmt.Sprintf("xattr: option %s is not valid for %s", bad, op))
	}
}
