// Package fakelib is an in-memory dynlib.Loader. Libraries are symbol tables
// of Go funcs registered under a path; opens and closes are counted per path
// so tests can assert that every handle is released exactly once.
package fakelib

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// Lib describes one fake shared object.
type Lib struct {
	// Symbols maps export names to Go funcs. The func type must match the
	// variable the caller binds it to.
	Symbols map[string]any

	// CloseErr, when set, is returned by every Close of this library.
	CloseErr error
}

type module struct {
	path string
	lib  *Lib
}

// Loader implements dynlib.Loader without touching the platform loader.
type Loader struct {
	mu       sync.Mutex
	libs     map[string]*Lib
	open     map[uintptr]module
	funcs    map[uintptr]any
	nextAddr uintptr
	opens    map[string]int
	closes   map[string]int
}

func New() *Loader {
	return &Loader{
		libs:     make(map[string]*Lib),
		open:     make(map[uintptr]module),
		funcs:    make(map[uintptr]any),
		nextAddr: 0x1000,
		opens:    make(map[string]int),
		closes:   make(map[string]int),
	}
}

// Add registers lib under path, replacing any previous registration.
func (l *Loader) Add(path string, lib Lib) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.libs[path] = &lib
}

func (l *Loader) alloc(v any) uintptr {
	l.nextAddr += 0x10
	l.funcs[l.nextAddr] = v
	return l.nextAddr
}

func (l *Loader) Open(path string) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lib, ok := l.libs[path]
	if !ok {
		return 0, fmt.Errorf("%s: cannot open shared object file: No such file or directory", path)
	}
	h := l.alloc(nil)
	l.open[h] = module{path: path, lib: lib}
	l.opens[path]++
	return h, nil
}

func (l *Loader) Lookup(handle uintptr, name string) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.open[handle]
	if !ok {
		return 0, errors.New("invalid handle")
	}
	fn, ok := m.lib.Symbols[name]
	if !ok || fn == nil {
		return 0, fmt.Errorf("%s: undefined symbol: %s", m.path, name)
	}
	return l.alloc(fn), nil
}

// Bind panics on a mismatched func type, as purego.RegisterFunc does for a
// bad signature.
func (l *Loader) Bind(fnPtr any, addr uintptr) {
	l.mu.Lock()
	fn, ok := l.funcs[addr]
	l.mu.Unlock()
	if !ok {
		panic(fmt.Sprintf("fakelib: bind to unknown address %#x", addr))
	}

	dst := reflect.ValueOf(fnPtr)
	if dst.Kind() != reflect.Pointer || dst.Elem().Kind() != reflect.Func {
		panic("fakelib: bind target must be a pointer to a func")
	}
	src := reflect.ValueOf(fn)
	if !src.Type().AssignableTo(dst.Elem().Type()) {
		panic(fmt.Sprintf("fakelib: cannot bind %s to %s", src.Type(), dst.Elem().Type()))
	}
	dst.Elem().Set(src)
}

func (l *Loader) Close(handle uintptr) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.open[handle]
	if !ok {
		return errors.New("invalid handle")
	}
	delete(l.open, handle)
	l.closes[m.path]++
	return m.lib.CloseErr
}

// Opens reports how many times path was opened successfully.
func (l *Loader) Opens(path string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.opens[path]
}

// Closes reports how many times a handle for path was released.
func (l *Loader) Closes(path string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closes[path]
}

// OpenHandles reports how many handles are currently open across all paths.
func (l *Loader) OpenHandles() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.open)
}
