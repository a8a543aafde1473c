package xattr

// Path addresses a file system object by name. Attributes live on the
// object itself, so any Path resolving to the same object sees the
// same attributes.
type Path string

// List returns the attribute names present on the object.
func (p Path) List(opts Options) ([]string, error) {
	p.mustBeUsable()
	return listAttrs(string(p), p.sysList, opts)
}

// Get returns the value of the named attribute.
func (p Path) Get(name string, opts Options) ([]byte, error) {
	p.mustBeUsable()
	return getAttr(string(p), p.sysGet, name, opts)
}

// Set stores value under the named attribute.
func (p Path) Set(name string, value []byte, opts Options) error {
	p.mustBeUsable()
	return setAttr(string(p), p.sysSet, name, value, opts)
}

// Remove deletes the named attribute.
func (p Path) Remove(name string, opts Options) error {
	p.mustBeUsable()
	return removeAttr(string(p), p.sysRemove, name, opts)
}

// mustBeUsable panics if the path cannot address a file system
// object. An empty path is caller misuse, not a runtime error.
func (p Path) mustBeUsable() {
	if p == "" {
		panic("xattr: operation on empty path")
	}
}
