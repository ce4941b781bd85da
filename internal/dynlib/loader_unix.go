//go:build darwin || freebsd || linux || netbsd

package dynlib

import (
	"github.com/ebitengine/purego"
	"golang.org/x/sys/unix"
)

// RTLD_NOW surfaces unresolved dependencies at open time rather than at the
// first call; RTLD_LOCAL keeps the module's symbols out of the global
// namespace.
const openMode = purego.RTLD_NOW | purego.RTLD_LOCAL

type platformLoader struct{}

// Platform returns the native loader for this build.
func Platform() Loader { return platformLoader{} }

func (platformLoader) Open(path string) (uintptr, error) {
	return purego.Dlopen(path, openMode)
}

func (platformLoader) Lookup(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func (platformLoader) Bind(fnPtr any, addr uintptr) {
	purego.RegisterFunc(fnPtr, addr)
}

func (platformLoader) Close(handle uintptr) error {
	return purego.Dlclose(handle)
}

// GoString copies the NUL-terminated string at p into Go memory. The result
// stays valid after the owning library is unloaded.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	return unix.BytePtrToString(p)
}
