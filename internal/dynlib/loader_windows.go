//go:build windows

package dynlib

import (
	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

type platformLoader struct{}

// Platform returns the native loader for this build.
func Platform() Loader { return platformLoader{} }

func (platformLoader) Open(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func (platformLoader) Lookup(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func (platformLoader) Bind(fnPtr any, addr uintptr) {
	purego.RegisterFunc(fnPtr, addr)
}

func (platformLoader) Close(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}

// GoString copies the NUL-terminated string at p into Go memory. The result
// stays valid after the owning library is unloaded.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	return windows.BytePtrToString(p)
}
