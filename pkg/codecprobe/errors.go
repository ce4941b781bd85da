package codecprobe

import (
	"github.com/codecprobe/codecprobe-go/internal/avcodec"
	"github.com/codecprobe/codecprobe-go/internal/dynlib"
)

// Error carries the failure kind, the library path, the missing symbol (if
// any) and the platform's own diagnostic text.
type Error = dynlib.Error

// Kind classifies an Error.
type Kind = dynlib.Kind

// Error kinds.
const (
	KindLibraryNotFound = dynlib.KindLibraryNotFound
	KindSymbolNotFound  = dynlib.KindSymbolNotFound
	KindUnloadFailed    = dynlib.KindUnloadFailed
)

var (
	// ErrLibraryNotFound reports that the path could not be opened as a
	// shared library.
	ErrLibraryNotFound = dynlib.ErrLibraryNotFound

	// ErrSymbolNotFound reports that the library lacks avcodec_register_all
	// or av_codec_next. The library has already been unloaded.
	ErrSymbolNotFound = dynlib.ErrSymbolNotFound

	// ErrUnloadFailed reports that the operating system refused to unload
	// the library. Results obtained before the unload remain valid.
	ErrUnloadFailed = dynlib.ErrUnloadFailed

	// ErrLibraryClosed is returned when a closed Library is used or closed
	// again.
	ErrLibraryClosed = dynlib.ErrLibraryClosed

	// ErrIterationLimit is returned when a library yields more codecs than
	// allowed by WithMaxCodecs.
	ErrIterationLimit = avcodec.ErrIterationLimit
)
