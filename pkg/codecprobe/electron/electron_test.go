package electron

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecprobe/codecprobe-go/internal/avcodec/avcodectest"
	"github.com/codecprobe/codecprobe-go/internal/dynlib/fakelib"
	"github.com/codecprobe/codecprobe-go/pkg/codecprobe"
)

func TestLocation(t *testing.T) {
	tests := []struct {
		platform string
		want     File
	}{
		{"darwin", File{Name: "libffmpeg.dylib", Folder: "Electron.app/Contents/Frameworks/Electron Framework.framework/Libraries/"}},
		{"win32", File{Name: "ffmpeg.dll"}},
		{"windows", File{Name: "ffmpeg.dll"}},
		{"linux", File{Name: "libffmpeg.so"}},
	}
	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			got, err := Location(tt.platform)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Location("plan9")
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
	assert.Contains(t, err.Error(), "plan9")
}

func TestLocationDefaultsToGOOS(t *testing.T) {
	want, wantErr := Location(runtime.GOOS)
	got, err := Location("")
	assert.Equal(t, want, got)
	assert.Equal(t, wantErr, err)
}

func TestRelativePath(t *testing.T) {
	rel, err := RelativePath("darwin")
	require.NoError(t, err)
	assert.Equal(t, "Electron.app/Contents/Frameworks/Electron Framework.framework/Libraries/libffmpeg.dylib", rel)

	rel, err = RelativePath("linux")
	require.NoError(t, err)
	assert.Equal(t, "libffmpeg.so", rel)
}

func TestAbsolutePath(t *testing.T) {
	dist := t.TempDir()
	got, err := AbsolutePath("linux", dist)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dist, "libffmpeg.so"), got)

	_, err = AbsolutePath("aix", dist)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestDefaultDist(t *testing.T) {
	root := t.TempDir()
	dist := filepath.Join(root, "node_modules", "electron", "dist")
	require.NoError(t, os.MkdirAll(dist, 0o755))
	nested := filepath.Join(root, "packages", "app", "lib")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := DefaultDist(nested)
	require.NoError(t, err)
	assert.Equal(t, dist, got)

	_, err = DefaultDist(t.TempDir())
	assert.ErrorIs(t, err, ErrDistNotFound)
}

func TestCodecs(t *testing.T) {
	dist := t.TempDir()
	path := filepath.Join(dist, "libffmpeg.so")

	loader := fakelib.New()
	avcodectest.New(
		avcodectest.Codec{ID: 27, Name: "h264", LongName: "H.264 / AVC / MPEG-4 AVC / MPEG-4 part 10"},
		avcodectest.Codec{ID: 167, Name: "vp9", LongName: "Google VP9"},
	).Install(loader, path)

	codecs, err := Codecs("linux", dist, codecprobe.WithLoader(loader))
	require.NoError(t, err)
	assert.Equal(t, []codecprobe.Codec{
		{ID: 27, Name: "h264", LongName: "H.264 / AVC / MPEG-4 AVC / MPEG-4 part 10"},
		{ID: 167, Name: "vp9", LongName: "Google VP9"},
	}, codecs)
	assert.Equal(t, 1, loader.Closes(path))
}
