// Package avcodectest builds fake libavcodec symbol tables for fakelib.
package avcodectest

import (
	"github.com/codecprobe/codecprobe-go/internal/avcodec"
	"github.com/codecprobe/codecprobe-go/internal/dynlib/fakelib"
)

// Codec describes one entry of a fake codec list.
type Codec struct {
	ID        int32
	Name      string
	LongName  string
	MediaType int32
}

// Lib is a fake libavcodec. Like older FFmpeg builds, its list is empty until
// avcodec_register_all has been called.
type Lib struct {
	records    []avcodec.Record
	registered bool

	// Registers counts avcodec_register_all calls.
	Registers int
	// Nexts counts av_codec_next calls.
	Nexts int
}

// New returns a fake library exposing codecs in order.
func New(codecs ...Codec) *Lib {
	recs := make([]avcodec.Record, len(codecs))
	for i, c := range codecs {
		recs[i] = avcodec.Record{
			Name:      cString(c.Name),
			LongName:  cString(c.LongName),
			MediaType: c.MediaType,
			ID:        c.ID,
		}
	}
	return &Lib{records: recs}
}

func cString(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}

func (l *Lib) registerAll() {
	l.Registers++
	l.registered = true
}

func (l *Lib) codecNext(prev *avcodec.Record) *avcodec.Record {
	l.Nexts++
	if !l.registered || len(l.records) == 0 {
		return nil
	}
	if prev == nil {
		return &l.records[0]
	}
	for i := range l.records {
		if &l.records[i] == prev {
			if i+1 < len(l.records) {
				return &l.records[i+1]
			}
			return nil
		}
	}
	return nil
}

// Symbols returns the full symbol table.
func (l *Lib) Symbols() map[string]any {
	return map[string]any{
		avcodec.SymbolRegisterAll: l.registerAll,
		avcodec.SymbolCodecNext:   l.codecNext,
	}
}

// Without returns the symbol table minus the named exports.
func (l *Lib) Without(names ...string) map[string]any {
	syms := l.Symbols()
	for _, n := range names {
		delete(syms, n)
	}
	return syms
}

// Install registers the fake under path in loader.
func (l *Lib) Install(loader *fakelib.Loader, path string) {
	loader.Add(path, fakelib.Lib{Symbols: l.Symbols()})
}

// Looping returns symbols whose av_codec_next never reaches the end of the
// list, cycling over a single record.
func Looping(c Codec) map[string]any {
	rec := &avcodec.Record{Name: cString(c.Name), LongName: cString(c.LongName), MediaType: c.MediaType, ID: c.ID}
	return map[string]any{
		avcodec.SymbolRegisterAll: func() {},
		avcodec.SymbolCodecNext:   func(*avcodec.Record) *avcodec.Record { return rec },
	}
}
