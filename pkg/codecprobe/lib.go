package codecprobe

import (
	"errors"

	"github.com/codecprobe/codecprobe-go/internal/avcodec"
	"github.com/codecprobe/codecprobe-go/pkg/codecprobe/logging"
)

// Codec describes one codec known to the library. Strings are copies and
// stay valid after the library is closed.
type Codec struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	LongName string `json:"longName"`
}

// Library represents an opened libavcodec. It is not safe for concurrent use.
type Library struct {
	path string
	lib  *avcodec.Library
	opts options
	log  logging.Logger
}

// Open loads the shared library at path and resolves its codec entry points.
// On error no handle is left open.
func Open(path string, opts ...Option) (*Library, error) {
	o := newOptions(opts)
	log := o.logger.With(logging.Path(path))

	lib, err := avcodec.Open(o.loader, path)
	if err != nil {
		var perr *Error
		if errors.As(err, &perr) && perr.Symbol != "" {
			log.Debug(o.ctx, "symbol bind failed", logging.Symbol(perr.Symbol), "error", err)
			return nil, err
		}
		log.Debug(o.ctx, "open failed", "error", err)
		return nil, err
	}
	log.Debug(o.ctx, "library opened")
	for _, name := range []string{avcodec.SymbolRegisterAll, avcodec.SymbolCodecNext} {
		log.Debug(o.ctx, "symbol bound", logging.Symbol(name))
	}

	return &Library{path: path, lib: lib, opts: o, log: log}, nil
}

// Path returns the path the library was opened from.
func (l *Library) Path() string { return l.path }

// Codecs registers the library's codecs and returns them in library order.
// Each call registers again and walks the full list.
func (l *Library) Codecs() ([]Codec, error) {
	raw, err := l.lib.Codecs(l.opts.maxCodecs)
	if err != nil {
		l.log.Debug(l.opts.ctx, "enumeration failed", "error", err)
		return nil, err
	}

	codecs := make([]Codec, len(raw))
	for i, c := range raw {
		codecs[i] = Codec{ID: c.ID, Name: c.Name, LongName: c.LongName}
	}
	l.log.Debug(l.opts.ctx, "codecs enumerated", "count", len(codecs))
	return codecs, nil
}

// Close unloads the library. The method is idempotent, returning
// ErrLibraryClosed when called twice.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}

	err := l.lib.Close()
	switch {
	case err == nil:
		l.log.Debug(l.opts.ctx, "library closed")
	case errors.Is(err, ErrLibraryClosed):
	default:
		l.log.Warn(l.opts.ctx, "library unload failed", "error", err)
	}
	return err
}
