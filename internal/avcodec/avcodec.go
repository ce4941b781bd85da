// Package avcodec binds the two libavcodec entry points needed to list the
// codecs a build of FFmpeg was compiled with.
package avcodec

import (
	"errors"
	"fmt"

	"github.com/codecprobe/codecprobe-go/internal/dynlib"
)

// Exported names resolved from the library.
const (
	SymbolRegisterAll = "avcodec_register_all"
	SymbolCodecNext   = "av_codec_next"
)

// ErrIterationLimit is returned by Codecs when the library yields more
// records than the configured limit.
var ErrIterationLimit = errors.New("avcodec: codec iteration limit exceeded")

// Record mirrors the leading fields of FFmpeg's AVCodec struct. Only these
// four fields are read; the rest of the native struct is never touched. The
// layout is dictated by the library ABI and must track the FFmpeg version
// being probed.
type Record struct {
	Name      *byte
	LongName  *byte
	MediaType int32
	ID        int32
}

// Codec is a copy of one Record with its strings moved into Go memory.
type Codec struct {
	ID       int
	Name     string
	LongName string
}

// Library is an opened libavcodec with both entry points bound.
type Library struct {
	lib         *dynlib.Library
	registerAll func()
	codecNext   func(prev *Record) *Record
}

// Open loads path through loader (nil means the platform loader) and binds
// avcodec_register_all and av_codec_next. Either symbol missing fails the
// whole open and releases the module.
func Open(loader dynlib.Loader, path string) (*Library, error) {
	l := &Library{}
	lib, err := dynlib.Open(loader, path,
		dynlib.Symbol{Name: SymbolRegisterAll, Fn: &l.registerAll},
		dynlib.Symbol{Name: SymbolCodecNext, Fn: &l.codecNext},
	)
	if err != nil {
		return nil, err
	}
	l.lib = lib
	return l, nil
}

// Path returns the path the library was opened from.
func (l *Library) Path() string { return l.lib.Path() }

// Codecs registers all codecs and walks av_codec_next from the start of the
// list until it returns NULL. Records are copied in library order, without
// sorting or deduplication.
//
// limit bounds the walk; zero means unbounded, in which case a library whose
// list never terminates makes Codecs loop forever.
func (l *Library) Codecs(limit int) ([]Codec, error) {
	if l.lib.Closed() {
		return nil, dynlib.ErrLibraryClosed
	}

	l.registerAll()

	codecs := []Codec{}
	for rec := l.codecNext(nil); rec != nil; rec = l.codecNext(rec) {
		if limit > 0 && len(codecs) == limit {
			return nil, fmt.Errorf("%w: more than %d codecs", ErrIterationLimit, limit)
		}
		codecs = append(codecs, Codec{
			ID:       int(rec.ID),
			Name:     dynlib.GoString(rec.Name),
			LongName: dynlib.GoString(rec.LongName),
		})
	}
	return codecs, nil
}

// Close unloads the library. See dynlib.Library.Close.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}
	return l.lib.Close()
}
