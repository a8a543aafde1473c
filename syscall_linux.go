package xattr

import "golang.org/x/sys/unix"

// ENOATTR is the errno returned when the named attribute does not
// exist. Linux reports this condition as ENODATA.
const ENOATTR = unix.ENODATA

// sysFlags converts the option set to the flag word accepted by the
// setxattr family. NoFollow selects the l-variant entry points rather
// than a flag, and ShowCompression has no Linux counterpart.
func (o Options) sysFlags() int {
	var flags int
	if o.Has(CreateOnly) {
		flags |= unix.XATTR_CREATE
	}
	if o.Has(ReplaceOnly) {
		flags |= unix.XATTR_REPLACE
	}
	return flags
}

func (p Path) sysList(dest []byte, opts Options) (int, error) {
	if opts.Has(NoFollow) {
		return unix.Llistxattr(string(p), dest)
	}
	return unix.Listxattr(string(p), dest)
}

func (p Path) sysGet(name string, dest []byte, opts Options) (int, error) {
	if opts.Has(NoFollow) {
		return unix.Lgetxattr(string(p), name, dest)
	}
	return unix.Getxattr(string(p), name, dest)
}

func (p Path) sysSet(name string, value []byte, opts Options) error {
	if opts.Has(NoFollow) {
		return unix.Lsetxattr(string(p), name, value, opts.sysFlags())
	}
	return unix.Setxattr(string(p), name, value, opts.sysFlags())
}

func (p Path) sysRemove(name string, opts Options) error {
	if opts.Has(NoFollow) {
		return unix.Lremovexattr(string(p), name)
	}
	return unix.Removexattr(string(p), name)
}

// The descriptor already names one object, so NoFollow has nothing to
// do here.

func (f *File) sysList(dest []byte, opts Options) (int, error) {
	return unix.Flistxattr(f.fd(), dest)
}

func (f *File) sysGet(name string, dest []byte, opts Options) (int, error) {
	return unix.Fgetxattr(f.fd(), name, dest)
}

func (f *File) sysSet(name string, value []byte, opts Options) error {
	return unix.Fsetxattr(f.fd(), name, value, opts.sysFlags())
}

func (f *File) sysRemove(name string, opts Options) error {
	return unix.Fremovexattr(f.fd(), name)
}
