package xattr

// Batch operations are plain functions over Handle so both bindings
// share one implementation. None of them is atomic: a concurrent
// writer can add or remove attributes while a batch runs, which is
// why an attribute vanishing between enumeration and access is
// tolerated rather than fatal.

// GetAll fetches the values of the named attributes from h. A nil
// names slice fetches every attribute on the target. An attribute
// that disappears before it can be read is left out of the result;
// any other failure aborts the batch.
func GetAll(h Handle, names []string, opts Options) (map[string][]byte, error) {
	if names == nil {
		var err error
		if names, err = h.List(opts); err != nil {
			return nil, err
		}
	}

	attrs := make(map[string][]byte, len(names))
	for _, name := range names {
		value, err := h.Get(name, opts)
		if err != nil {
			if IsNotExist(err) {
				continue
			}
			return nil, err
		}
		attrs[name] = value
	}
	return attrs, nil
}

// SetAll stores every attribute in attrs on h. The first failure
// stops the remaining writes; attributes already written are left in
// place. Iteration order over the map is unspecified.
func SetAll(h Handle, attrs map[string][]byte, opts Options) error {
	for name, value := range attrs {
		if err := h.Set(name, value, opts); err != nil {
			return err
		}
	}
	return nil
}

// RemoveAll deletes the named attributes from h. A nil names slice
// deletes every attribute on the target. Attributes that are already
// gone are skipped; any other failure aborts the batch.
func RemoveAll(h Handle, names []string, opts Options) error {
	if names == nil {
		var err error
		if names, err = h.List(opts); err != nil {
			return err
		}
	}

	for _, name := range names {
		if err := h.Remove(name, opts); err != nil && !IsNotExist(err) {
			return err
		}
	}
	return nil
}
