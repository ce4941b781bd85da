// Command codecprobe prints the codecs compiled into an FFmpeg shared
// library.
//
// Usage:
//
//	codecprobe [flags] [library ...]
//
// With no library arguments the path comes from -library, the config file,
// $CODECPROBE_LIBRARY, or the Electron dist directory, in that order.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/codecprobe/codecprobe-go/pkg/codecprobe"
	"github.com/codecprobe/codecprobe-go/pkg/codecprobe/electron"
	"github.com/codecprobe/codecprobe-go/pkg/codecprobe/logging"
)

const envLibrary = "CODECPROBE_LIBRARY"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type flags struct {
	config       string
	library      string
	electronDist string
	platform     string
	maxCodecs    int
	format       string
	verbose      bool
	version      bool
}

func parseFlags(args []string, stderr io.Writer) (flags, []string, error) {
	var f flags
	fs := flag.NewFlagSet("codecprobe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", "", "path to a codecprobe.toml config file")
	fs.StringVar(&f.library, "library", "", "path to the libavcodec / libffmpeg shared library")
	fs.StringVar(&f.electronDist, "electron-dist", "", "Electron dist directory holding the bundled libffmpeg")
	fs.StringVar(&f.platform, "platform", "", "Electron platform layout (darwin, linux, win32); default is this platform")
	fs.IntVar(&f.maxCodecs, "max-codecs", 0, "fail if the library reports more codecs than this (0 = no limit)")
	fs.StringVar(&f.format, "format", "json", "output format: json or table")
	fs.BoolVar(&f.verbose, "v", false, "log library events to stderr")
	fs.BoolVar(&f.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return flags{}, nil, err
	}
	if f.format != "json" && f.format != "table" {
		return flags{}, nil, fmt.Errorf("unknown format %q", f.format)
	}
	return f, fs.Args(), nil
}

func run(args []string, stdout, stderr io.Writer) int {
	f, paths, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "codecprobe: %v\n", err)
		return 2
	}
	if f.version {
		fmt.Fprintf(stdout, "codecprobe %s\n", codecprobe.WrapperVersion())
		return 0
	}

	cfg, err := loadConfig(f)
	if err != nil {
		fmt.Fprintf(stderr, "codecprobe: %v\n", err)
		return 1
	}

	level := cfg.Level()
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	opts := append(cfg.Options(), codecprobe.WithLogger(logger))

	if len(paths) == 0 {
		path, err := resolveLibrary(cfg)
		if err != nil {
			fmt.Fprintf(stderr, "codecprobe: %v\n", err)
			return 1
		}
		paths = []string{path}
	}

	if len(paths) == 1 {
		codecs, err := codecprobe.ListCodecs(paths[0], opts...)
		if err != nil && !(errors.Is(err, codecprobe.ErrUnloadFailed) && codecs != nil) {
			fmt.Fprintf(stderr, "codecprobe: %v\n", err)
			return 1
		}
		if err != nil {
			fmt.Fprintf(stderr, "codecprobe: warning: %v\n", err)
		}
		if werr := writeCodecs(stdout, f.format, codecs); werr != nil {
			fmt.Fprintf(stderr, "codecprobe: %v\n", werr)
			return 1
		}
		return 0
	}

	results, err := codecprobe.ListCodecsMany(context.Background(), paths, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "codecprobe: %v\n", err)
		return 1
	}
	if err := writeResults(stdout, f.format, results); err != nil {
		fmt.Fprintf(stderr, "codecprobe: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig merges the config file with command line flags; flags win.
func loadConfig(f flags) (codecprobe.Config, error) {
	var cfg codecprobe.Config
	if f.config != "" {
		var err error
		if cfg, err = codecprobe.LoadConfig(f.config); err != nil {
			return codecprobe.Config{}, err
		}
	}
	if f.library != "" {
		cfg.Library = f.library
	}
	if f.electronDist != "" {
		cfg.ElectronDist = f.electronDist
	}
	if f.platform != "" {
		cfg.Platform = f.platform
	}
	if f.maxCodecs != 0 {
		cfg.MaxCodecs = f.maxCodecs
	}
	return cfg, cfg.Validate()
}

func resolveLibrary(cfg codecprobe.Config) (string, error) {
	if cfg.Library != "" {
		return cfg.Library, nil
	}
	if env := os.Getenv(envLibrary); env != "" {
		return env, nil
	}
	return electron.AbsolutePath(cfg.Platform, cfg.ElectronDist)
}

func writeCodecs(w io.Writer, format string, codecs []codecprobe.Codec) error {
	if format == "table" {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tLONG NAME")
		for _, c := range codecs {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.Name, c.LongName)
		}
		return tw.Flush()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(codecs)
}

func writeResults(w io.Writer, format string, results []codecprobe.Result) error {
	if format == "table" {
		for i, r := range results {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s:\n", r.Path)
			if err := writeCodecs(w, format, r.Codecs); err != nil {
				return err
			}
		}
		return nil
	}
	byPath := make(map[string][]codecprobe.Codec, len(results))
	for _, r := range results {
		byPath[r.Path] = r.Codecs
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(byPath)
}
