package dynlib

import "fmt"

// Loader is the set of platform primitives a Library is built on. Handles
// are opaque: zero is never a valid open handle.
type Loader interface {
	// Open maps the module at path into the process.
	Open(path string) (uintptr, error)
	// Lookup resolves an exported symbol to its address.
	Lookup(handle uintptr, name string) (uintptr, error)
	// Bind points *fnPtr at the native function located at addr.
	Bind(fnPtr any, addr uintptr)
	// Close releases the module.
	Close(handle uintptr) error
}

// Symbol names a required export and the func pointer it is bound to.
// Fn must be a non-nil pointer to a func variable.
type Symbol struct {
	Name string
	Fn   any
}

// Library is an opened module whose required symbols are all bound.
type Library struct {
	loader Loader
	path   string
	handle uintptr
	closed bool
}

// Open loads path with loader and binds every symbol in order. If any symbol
// cannot be resolved the module is closed before the error is returned, so a
// failed Open never leaves a handle behind.
func Open(loader Loader, path string, symbols ...Symbol) (*Library, error) {
	if loader == nil {
		loader = Platform()
	}
	if path == "" {
		return nil, &Error{Kind: KindLibraryNotFound, Diagnostic: "empty library path"}
	}

	h, err := loader.Open(path)
	if err != nil {
		return nil, newError(KindLibraryNotFound, path, "", err)
	}
	if h == 0 {
		return nil, &Error{Kind: KindLibraryNotFound, Path: path, Diagnostic: "loader returned a null handle"}
	}

	for _, s := range symbols {
		if err := bind(loader, h, s); err != nil {
			// The close error is dropped: the resolution failure is the
			// one the caller needs to see.
			_ = loader.Close(h)
			return nil, newError(KindSymbolNotFound, path, s.Name, err)
		}
	}

	return &Library{loader: loader, path: path, handle: h}, nil
}

func bind(loader Loader, h uintptr, s Symbol) error {
	addr, err := loader.Lookup(h, s.Name)
	if err != nil {
		return err
	}
	if addr == 0 {
		return fmt.Errorf("%s resolved to a null address", s.Name)
	}
	loader.Bind(s.Fn, addr)
	return nil
}

// Path returns the path the library was opened from.
func (l *Library) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Closed reports whether Close has been called.
func (l *Library) Closed() bool {
	return l == nil || l.closed
}

// Close releases the platform handle. The handle is released at most once:
// a second call returns ErrLibraryClosed, and a failed release is not
// retried. Func values bound from the library must not be called after Close.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}
	if l.closed {
		return ErrLibraryClosed
	}

	h := l.handle
	l.closed = true
	l.handle = 0

	if err := l.loader.Close(h); err != nil {
		return newError(KindUnloadFailed, l.path, "", err)
	}
	return nil
}
