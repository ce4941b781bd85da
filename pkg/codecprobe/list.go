package codecprobe

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ListCodecs opens the library at path, lists its codecs and unloads it.
//
// On success the full list is returned. If only the unload fails, the full
// list is returned together with an error matching ErrUnloadFailed. Every
// other failure returns a nil list.
func ListCodecs(path string, opts ...Option) (codecs []Codec, err error) {
	lib, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	defer func() {
		cerr := lib.Close()
		if cerr == nil {
			return
		}
		if err != nil {
			err = errors.Join(err, cerr)
			return
		}
		err = cerr
	}()

	return lib.Codecs()
}

// Result pairs a library path with its codec list.
type Result struct {
	Path   string  `json:"path"`
	Codecs []Codec `json:"codecs"`
}

// ListCodecsMany runs ListCodecs for every path concurrently. Each path gets
// its own open, enumerate and close cycle; handles are never shared. Results
// are returned in the order of paths. The first error aborts the whole call
// and no results are returned. Probes that have already started run to
// completion; ctx only prevents new ones from starting.
func ListCodecsMany(ctx context.Context, paths []string, opts ...Option) ([]Result, error) {
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			codecs, err := ListCodecs(path, append(opts[:len(opts):len(opts)], withContext(ctx))...)
			if err != nil {
				return err
			}
			results[i] = Result{Path: path, Codecs: codecs}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
