package xattr

import (
	"syscall"
	"unsafe"
)

// ENOATTR is the errno returned when the named attribute does not
// exist.
const ENOATTR = syscall.ENOATTR

var _zero uintptr

// sysFlags converts the option set to the options argument shared by
// the whole xattr syscall family on Darwin.
func (o Options) sysFlags() int {
	var flags int
	if o.Has(NoFollow) {
		flags |= syscall.XATTR_NOFOLLOW
	}
	if o.Has(CreateOnly) {
		flags |= syscall.XATTR_CREATE
	}
	if o.Has(ReplaceOnly) {
		flags |= syscall.XATTR_REPLACE
	}
	if o.Has(ShowCompression) {
		flags |= syscall.XATTR_SHOWCOMPRESSION
	}
	return flags
}

func bufPtr(b []byte) unsafe.Pointer {
	if len(b) > 0 {
		return unsafe.Pointer(&b[0])
	}
	return unsafe.Pointer(&_zero)
}

func listxattr(path string, dest []byte, flags int) (int, error) {
	pathBuf, err := syscall.BytePtrFromString(path)
	if err != nil {
		return -1, err
	}

	rc, _, errno := syscall.Syscall6(syscall.SYS_LISTXATTR,
		uintptr(unsafe.Pointer(pathBuf)),
		uintptr(bufPtr(dest)),
		uintptr(len(dest)),
		uintptr(flags),
		0, 0)
	if errno != 0 {
		return -1, errno
	}
	return int(rc), nil
}

func flistxattr(fd int, dest []byte, flags int) (int, error) {
	rc, _, errno := syscall.Syscall6(syscall.SYS_FLISTXATTR,
		uintptr(fd),
		uintptr(bufPtr(dest)),
		uintptr(len(dest)),
		uintptr(flags),
		0, 0)
	if errno != 0 {
		return -1, errno
	}
	return int(rc), nil
}

func getxattr(path, attr string, dest []byte, flags int) (int, error) {
	pathBuf, err := syscall.BytePtrFromString(path)
	if err != nil {
		return -1, err
	}
	attrBuf, err := syscall.BytePtrFromString(attr)
	if err != nil {
		return -1, err
	}

	rc, _, errno := syscall.Syscall6(syscall.SYS_GETXATTR,
		uintptr(unsafe.Pointer(pathBuf)),
		uintptr(unsafe.Pointer(attrBuf)),
		uintptr(bufPtr(dest)),
		uintptr(len(dest)),
		0, // position, only used for resource forks
		uintptr(flags))
	if errno != 0 {
		return -1, errno
	}
	return int(rc), nil
}

func fgetxattr(fd int, attr string, dest []byte, flags int) (int, error) {
	attrBuf, err := syscall.BytePtrFromString(attr)
	if err != nil {
		return -1, err
	}

	rc, _, errno := syscall.Syscall6(syscall.SYS_FGETXATTR,
		uintptr(fd),
		uintptr(unsafe.Pointer(attrBuf)),
		uintptr(bufPtr(dest)),
		uintptr(len(dest)),
		0,
		uintptr(flags))
	if errno != 0 {
		return -1, errno
	}
	return int(rc), nil
}

func setxattr(path, attr string, value []byte, flags int) error {
	pathBuf, err := syscall.BytePtrFromString(path)
	if err != nil {
		return err
	}
	attrBuf, err := syscall.BytePtrFromString(attr)
	if err != nil {
		return err
	}

	_, _, errno := syscall.Syscall6(syscall.SYS_SETXATTR,
		uintptr(unsafe.Pointer(pathBuf)),
		uintptr(unsafe.Pointer(attrBuf)),
		uintptr(bufPtr(value)),
		uintptr(len(value)),
		0,
		uintptr(flags))
	if errno != 0 {
		return errno
	}
	return nil
}

func fsetxattr(fd int, attr string, value []byte, flags int) error {
	attrBuf, err := syscall.BytePtrFromString(attr)
	if err != nil {
		return err
	}

	_, _, errno := syscall.Syscall6(syscall.SYS_FSETXATTR,
		uintptr(fd),
		uintptr(unsafe.Pointer(attrBuf)),
		uintptr(bufPtr(value)),
		uintptr(len(value)),
		0,
		uintptr(flags))
	if errno != 0 {
		return errno
	}
	return nil
}

func removexattr(path, attr string, flags int) error {
	pathBuf, err := syscall.BytePtrFromString(path)
	if err != nil {
		return err
	}
	attrBuf, err := syscall.BytePtrFromString(attr)
	if err != nil {
		return err
	}

	_, _, errno := syscall.Syscall(syscall.SYS_REMOVEXATTR,
		uintptr(unsafe.Pointer(pathBuf)),
		uintptr(unsafe.Pointer(attrBuf)),
		uintptr(flags))
	if errno != 0 {
		return errno
	}
	return nil
}

func fremovexattr(fd int, attr string, flags int) error {
	attrBuf, err := syscall.BytePtrFromString(attr)
	if err != nil {
		return err
	}

	_, _, errno := syscall.Syscall(syscall.SYS_FREMOVEXATTR,
		uintptr(fd),
		uintptr(unsafe.Pointer(attrBuf)),
		uintptr(flags))
	if errno != 0 {
		return errno
	}
	return nil
}

func (p Path) sysList(dest []byte, opts Options) (int, error) {
	return listxattr(string(p), dest, opts.sysFlags())
}

func (p Path) sysGet(name string, dest []byte, opts Options) (int, error) {
	return getxattr(string(p), name, dest, opts.sysFlags())
}

func (p Path) sysSet(name string, value []byte, opts Options) error {
	return setxattr(string(p), name, value, opts.sysFlags())
}

func (p Path) sysRemove(name string, opts Options) error {
	return removexattr(string(p), name, opts.sysFlags())
}

func (f *File) sysList(dest []byte, opts Options) (int, error) {
	return flistxattr(f.fd(), dest, opts.sysFlags())
}

func (f *File) sysGet(name string, dest []byte, opts Options) (int, error) {
	return fgetxattr(f.fd(), name, dest, opts.sysFlags())
}

func (f *File) sysSet(name string, value []byte, opts Options) error {
	return fsetxattr(f.fd(), name, value, opts.sysFlags())
}

func (f *File) sysRemove(name string, opts Options) error {
	return fremovexattr(f.fd(), name, opts.sysFlags())
}
