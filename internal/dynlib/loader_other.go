//go:build !darwin && !freebsd && !linux && !netbsd && !windows

package dynlib

import "unsafe"

type platformLoader struct{}

// Platform returns a loader that fails every Open with
// ErrUnsupportedPlatform.
func Platform() Loader { return platformLoader{} }

func (platformLoader) Open(string) (uintptr, error) { return 0, ErrUnsupportedPlatform }

func (platformLoader) Lookup(uintptr, string) (uintptr, error) { return 0, ErrUnsupportedPlatform }

func (platformLoader) Bind(any, uintptr) {}

func (platformLoader) Close(uintptr) error { return ErrUnsupportedPlatform }

// GoString copies the NUL-terminated string at p into Go memory.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
