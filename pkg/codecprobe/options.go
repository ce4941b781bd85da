package codecprobe

import (
	"context"

	"github.com/codecprobe/codecprobe-go/internal/dynlib"
	"github.com/codecprobe/codecprobe-go/pkg/codecprobe/logging"
)

// Option configures Open and ListCodecs.
type Option func(*options)

type options struct {
	ctx       context.Context
	logger    logging.Logger
	loader    Loader
	maxCodecs int
}

func newOptions(opts []Option) options {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = logging.Discard()
	}
	if o.loader == nil {
		o.loader = dynlib.Platform()
	}
	return o
}

// WithLogger routes library events to logger. By default nothing is logged.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMaxCodecs caps the number of codecs read from a library. Zero, the
// default, reads until the library reports the end of its list, which never
// happens if the library's list is corrupt.
func WithMaxCodecs(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxCodecs = n
	}
}

// Loader is the set of platform primitives used to open a library, resolve
// its symbols, bind them to Go funcs and release it.
type Loader = dynlib.Loader

// WithLoader replaces the platform loader. It lets callers route loading
// through their own primitives, such as an in-memory fake in tests or a
// loader that applies custom dlopen flags.
func WithLoader(loader Loader) Option {
	return func(o *options) { o.loader = loader }
}

func withContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}
