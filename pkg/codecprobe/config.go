package codecprobe

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/codecprobe/codecprobe-go/pkg/codecprobe/logging"
)

// Config is the codecprobe.toml file read by the command line tool.
//
//	library       = "/usr/lib/x86_64-linux-gnu/libavcodec.so.58"
//	electron_dist = "node_modules/electron/dist"
//	platform      = "linux"
//	max_codecs    = 4096
//	log_level     = "debug"
type Config struct {
	// Library is the path of the shared library to probe. When empty the
	// Electron bundled libffmpeg is located from ElectronDist and Platform.
	Library string `toml:"library"`

	// ElectronDist is the Electron distribution directory.
	ElectronDist string `toml:"electron_dist"`

	// Platform selects the Electron library layout. Empty means the
	// platform this binary runs on.
	Platform string `toml:"platform"`

	// MaxCodecs caps enumeration; zero is unbounded.
	MaxCodecs int `toml:"max_codecs"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level"`
}

// LoadConfig reads a TOML config file. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("codecprobe: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML config data. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("codecprobe: config: %s", strict.String())
		}
		return Config{}, fmt.Errorf("codecprobe: config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.MaxCodecs < 0 {
		return fmt.Errorf("codecprobe: config: max_codecs must not be negative, got %d", c.MaxCodecs)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("codecprobe: config: %w", err)
	}
	return nil
}

// Level returns the configured log level, defaulting to info.
func (c Config) Level() slog.Level {
	lvl, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Options converts the config into Open options.
func (c Config) Options() []Option {
	return []Option{WithMaxCodecs(c.MaxCodecs)}
}
