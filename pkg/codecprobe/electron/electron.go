// Package electron locates the libffmpeg shared library bundled with an
// Electron distribution and lists its codecs.
package electron

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/codecprobe/codecprobe-go/pkg/codecprobe"
)

var (
	// ErrUnsupportedPlatform is returned for platforms Electron does not
	// ship a libffmpeg layout for.
	ErrUnsupportedPlatform = errors.New("electron: unsupported platform")

	// ErrDistNotFound is returned when no node_modules/electron/dist
	// directory is found above the start directory.
	ErrDistNotFound = errors.New("electron: electron dist directory not found")
)

// File is the location of libffmpeg relative to the Electron dist directory.
type File struct {
	Name   string
	Folder string
}

// Location returns where libffmpeg sits inside an Electron build for
// platform. Both Go ("windows") and Node ("win32") names are accepted; the
// empty string means runtime.GOOS.
func Location(platform string) (File, error) {
	if platform == "" {
		platform = runtime.GOOS
	}
	switch platform {
	case "darwin":
		return File{
			Name:   "libffmpeg.dylib",
			Folder: "Electron.app/Contents/Frameworks/Electron Framework.framework/Libraries/",
		}, nil
	case "windows", "win32":
		return File{Name: "ffmpeg.dll"}, nil
	case "linux":
		return File{Name: "libffmpeg.so"}, nil
	}
	return File{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, platform)
}

// RelativePath returns Folder followed by Name, using forward slashes.
func RelativePath(platform string) (string, error) {
	f, err := Location(platform)
	if err != nil {
		return "", err
	}
	return f.Folder + f.Name, nil
}

// AbsolutePath joins dist with the relative libffmpeg path. An empty dist is
// looked up with DefaultDist from the working directory.
func AbsolutePath(platform, dist string) (string, error) {
	rel, err := RelativePath(platform)
	if err != nil {
		return "", err
	}
	if dist == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		if dist, err = DefaultDist(wd); err != nil {
			return "", err
		}
	}
	return filepath.Join(dist, filepath.FromSlash(rel)), nil
}

// DefaultDist walks from start towards the filesystem root and returns the
// first node_modules/electron/dist directory it finds, mirroring how Node
// resolves the electron package.
func DefaultDist(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, "node_modules", "electron", "dist")
		if fi, err := os.Stat(candidate); err == nil && fi.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (searched from %s)", ErrDistNotFound, start)
		}
		dir = parent
	}
}

// Codecs lists the codecs of the libffmpeg found in dist for platform.
func Codecs(platform, dist string, opts ...codecprobe.Option) ([]codecprobe.Codec, error) {
	path, err := AbsolutePath(platform, dist)
	if err != nil {
		return nil, err
	}
	return codecprobe.ListCodecs(path, opts...)
}
