package dynlib

import (
	"errors"
	"strings"
)

// Kind classifies a dynamic-loading failure.
type Kind int

const (
	// KindLibraryNotFound reports that the platform loader could not open
	// the requested path.
	KindLibraryNotFound Kind = iota + 1
	// KindSymbolNotFound reports that the module opened but a required
	// symbol is missing.
	KindSymbolNotFound
	// KindUnloadFailed reports that the platform could not release a module.
	KindUnloadFailed
)

func (k Kind) String() string {
	switch k {
	case KindLibraryNotFound:
		return "library not found"
	case KindSymbolNotFound:
		return "symbol not found"
	case KindUnloadFailed:
		return "unload failed"
	default:
		return "unknown dynlib error"
	}
}

var (
	// ErrLibraryNotFound matches every *Error of KindLibraryNotFound.
	ErrLibraryNotFound = errors.New("dynlib: library not found")

	// ErrSymbolNotFound matches every *Error of KindSymbolNotFound.
	ErrSymbolNotFound = errors.New("dynlib: symbol not found")

	// ErrUnloadFailed matches every *Error of KindUnloadFailed.
	ErrUnloadFailed = errors.New("dynlib: unload failed")

	// ErrLibraryClosed is returned by Close when the handle was already
	// released.
	ErrLibraryClosed = errors.New("dynlib: library already closed")

	// ErrUnsupportedPlatform signals that this build has no native loader.
	ErrUnsupportedPlatform = errors.New("dynlib: dynamic loading not supported on this platform")
)

// Error describes a failed load, resolve or release step. Diagnostic holds
// the platform's own message and is never rewritten.
type Error struct {
	Kind       Kind
	Path       string
	Symbol     string
	Diagnostic string
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Symbol != "" {
		b.WriteString(" ")
		b.WriteString(e.Symbol)
	}
	if e.Path != "" {
		b.WriteString(" (")
		b.WriteString(e.Path)
		b.WriteString(")")
	}
	if e.Diagnostic != "" {
		b.WriteString(": ")
		b.WriteString(e.Diagnostic)
	}
	return b.String()
}

// Unwrap exposes the underlying platform error, if any.
func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match an *Error against the kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrLibraryNotFound:
		return e.Kind == KindLibraryNotFound
	case ErrSymbolNotFound:
		return e.Kind == KindSymbolNotFound
	case ErrUnloadFailed:
		return e.Kind == KindUnloadFailed
	}
	return false
}

func newError(kind Kind, path, symbol string, err error) *Error {
	e := &Error{Kind: kind, Path: path, Symbol: symbol, Err: err}
	if err != nil {
		e.Diagnostic = err.Error()
	}
	return e
}
