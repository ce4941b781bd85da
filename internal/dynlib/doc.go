// Package dynlib opens native shared libraries at runtime and binds their
// exported functions to typed Go func values.
//
// # Design Principles
//
//  1. Isolation: ALL dynamic-loading code lives in this package. No other
//     package should import purego, unsafe or golang.org/x/sys.
//
//  2. All or nothing: Open either returns a Library with every requested
//     symbol bound, or an error. A module that fails symbol resolution is
//     released before Open returns.
//
//  3. Error Handling: platform diagnostics (dlerror text, Win32 messages) are
//     carried verbatim inside *Error values. Callers match on kind with
//     errors.Is against ErrLibraryNotFound, ErrSymbolNotFound and
//     ErrUnloadFailed.
//
//  4. Single release: Close releases the platform handle once. Later calls
//     report ErrLibraryClosed and never reach the loader.
//
// # Loaders
//
// The platform primitives sit behind the Loader interface. Platform returns
// the native implementation (purego on darwin, freebsd, linux and netbsd;
// x/sys/windows on windows). Tests substitute fakelib.
//
// # Threading
//
// A Library is owned by the goroutine that opened it. Concurrent Opens of
// distinct Library values are independent; the thread safety of opening the
// same path twice at once is whatever the platform loader documents.
package dynlib
