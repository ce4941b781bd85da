// Package logging provides the logging facade used by codecprobe.
//
// Logger wraps the subset of log/slog that the library needs. Applications
// can pass their own implementation to route library events elsewhere or to
// silence them.
//
// # Default Implementation
//
//	// Use slog.Default()
//	logger := logging.New(nil)
//
//	// Use a custom handler
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
//	codecs, err := codecprobe.ListCodecs(path, codecprobe.WithLogger(logger))
//
// # Events
//
// Opening, binding, enumerating and closing a library are logged at Debug.
// A failed unload is logged at Warn. The library never writes to stdout.
//
// Attribute helpers keep keys consistent across call sites:
//
//	logger.Debug(ctx, "library opened", logging.Path(path))
package logging
