package dynlib_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecprobe/codecprobe-go/internal/dynlib"
	"github.com/codecprobe/codecprobe-go/internal/dynlib/fakelib"
)

var _ dynlib.Loader = (*fakelib.Loader)(nil)

const libPath = "/opt/lib/libtest.so"

func newLoader() *fakelib.Loader {
	l := fakelib.New()
	l.Add(libPath, fakelib.Lib{Symbols: map[string]any{
		"answer": func() int32 { return 42 },
		"twice":  func(v int32) int32 { return v * 2 },
	}})
	return l
}

func TestOpenBindsEverySymbol(t *testing.T) {
	loader := newLoader()

	var answer func() int32
	var twice func(int32) int32
	lib, err := dynlib.Open(loader, libPath,
		dynlib.Symbol{Name: "answer", Fn: &answer},
		dynlib.Symbol{Name: "twice", Fn: &twice},
	)
	require.NoError(t, err)
	require.NotNil(t, lib)

	assert.Equal(t, libPath, lib.Path())
	assert.Equal(t, int32(42), answer())
	assert.Equal(t, int32(14), twice(7))

	require.NoError(t, lib.Close())
	assert.Equal(t, 1, loader.Closes(libPath))
	assert.Zero(t, loader.OpenHandles())
}

func TestOpenMissingLibrary(t *testing.T) {
	loader := newLoader()

	lib, err := dynlib.Open(loader, "/nonexistent")
	require.Error(t, err)
	assert.Nil(t, lib)
	assert.ErrorIs(t, err, dynlib.ErrLibraryNotFound)
	assert.NotErrorIs(t, err, dynlib.ErrSymbolNotFound)

	var derr *dynlib.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, dynlib.KindLibraryNotFound, derr.Kind)
	assert.Equal(t, "/nonexistent", derr.Path)
	assert.Contains(t, derr.Diagnostic, "No such file or directory")
	assert.Zero(t, loader.OpenHandles())
}

func TestOpenEmptyPath(t *testing.T) {
	loader := newLoader()

	_, err := dynlib.Open(loader, "")
	assert.ErrorIs(t, err, dynlib.ErrLibraryNotFound)
	assert.Zero(t, loader.Opens(""))
}

func TestOpenMissingSymbolReleasesHandle(t *testing.T) {
	tests := []struct {
		name    string
		symbols []string
		missing string
	}{
		{name: "first", symbols: []string{"absent", "answer"}, missing: "absent"},
		{name: "last", symbols: []string{"answer", "absent"}, missing: "absent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newLoader()

			syms := make([]dynlib.Symbol, 0, len(tt.symbols))
			for _, name := range tt.symbols {
				var fn func() int32
				syms = append(syms, dynlib.Symbol{Name: name, Fn: &fn})
			}

			lib, err := dynlib.Open(loader, libPath, syms...)
			require.Error(t, err)
			assert.Nil(t, lib)
			assert.ErrorIs(t, err, dynlib.ErrSymbolNotFound)

			var derr *dynlib.Error
			require.True(t, errors.As(err, &derr))
			assert.Equal(t, tt.missing, derr.Symbol)
			assert.Contains(t, derr.Diagnostic, "undefined symbol")
			assert.Contains(t, err.Error(), "symbol not found absent")

			assert.Equal(t, 1, loader.Opens(libPath))
			assert.Equal(t, 1, loader.Closes(libPath))
			assert.Zero(t, loader.OpenHandles())
		})
	}
}

func TestCloseTwice(t *testing.T) {
	loader := newLoader()

	lib, err := dynlib.Open(loader, libPath)
	require.NoError(t, err)
	assert.False(t, lib.Closed())

	require.NoError(t, lib.Close())
	assert.True(t, lib.Closed())
	assert.ErrorIs(t, lib.Close(), dynlib.ErrLibraryClosed)
	assert.Equal(t, 1, loader.Closes(libPath))
}

func TestCloseFailure(t *testing.T) {
	loader := fakelib.New()
	loader.Add(libPath, fakelib.Lib{CloseErr: errors.New("shared object still referenced")})

	lib, err := dynlib.Open(loader, libPath)
	require.NoError(t, err)

	err = lib.Close()
	require.Error(t, err)
	assert.ErrorIs(t, err, dynlib.ErrUnloadFailed)
	assert.Contains(t, err.Error(), "shared object still referenced")

	// A failed release is not retried.
	assert.ErrorIs(t, lib.Close(), dynlib.ErrLibraryClosed)
	assert.Equal(t, 1, loader.Closes(libPath))
}

func TestNilLibrary(t *testing.T) {
	var lib *dynlib.Library
	assert.NoError(t, lib.Close())
	assert.True(t, lib.Closed())
	assert.Empty(t, lib.Path())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "library not found", dynlib.KindLibraryNotFound.String())
	assert.Equal(t, "symbol not found", dynlib.KindSymbolNotFound.String())
	assert.Equal(t, "unload failed", dynlib.KindUnloadFailed.String())
	assert.Equal(t, "unknown dynlib error", dynlib.Kind(0).String())
}

func TestGoString(t *testing.T) {
	b := []byte("h264\x00trailing")
	assert.Equal(t, "h264", dynlib.GoString(&b[0]))
	assert.Empty(t, dynlib.GoString(nil))
}
