// Package config loads prismview settings from a TOML file.
//
// Settings are resolved in three layers: built-in defaults, then the
// config file, then command-line flags (applied by the caller). The file
// lives at $XDG_CONFIG_HOME/prismview/config.toml unless --config names
// another path.
//
//	[viewport]
//	width = 800.0
//	height = 600.0
//
//	[render]
//	formats = ["svg"]
//	scale = 1.0
//	metric = "truncated"
//
//	[cache]
//	backend = "file"
//	ttl = "168h0m0s"
//
//	[server]
//	addr = ":8080"
//
//	[log]
//	level = "info"
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/prismview/pkg/cache"
	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/pipeline"
	"github.com/matzehuels/prismview/pkg/render/grid"
)

const appName = "prismview"

// Config is the full set of file-backed settings.
type Config struct {
	Viewport Viewport `toml:"viewport"`
	Render   Render   `toml:"render"`
	Cache    Cache    `toml:"cache"`
	Server   Server   `toml:"server"`
	Log      Log      `toml:"log"`
}

// Viewport holds the default layout size.
type Viewport struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Render holds default output settings.
type Render struct {
	Formats    []string `toml:"formats"`
	Scale      float64  `toml:"scale"`
	Metric     string   `toml:"metric"`
	Background string   `toml:"background,omitempty"`
	Caption    bool     `toml:"caption"`
}

// Cache selects the cache backend. TTL overrides the per-entry defaults
// when positive.
type Cache struct {
	cache.Config
	TTL time.Duration `toml:"ttl"`
}

// Server holds HTTP server settings.
type Server struct {
	Addr            string        `toml:"addr"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

// Log holds logger settings.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	dir, _ := CacheDir()
	return Config{
		Viewport: Viewport{Width: pipeline.DefaultWidth, Height: pipeline.DefaultHeight},
		Render: Render{
			Formats: []string{pipeline.FormatSVG},
			Scale:   pipeline.DefaultScale,
			Metric:  string(grid.MetricTruncated),
		},
		Cache: Cache{
			Config: cache.Config{Backend: cache.BackendFile, Dir: dir},
			TTL:    cache.TTLArtifact,
		},
		Server: Server{Addr: ":8080", ShutdownTimeout: 10 * time.Second},
		Log:    Log{Level: "info"},
	}
}

// Load reads path on top of Default. A missing file at the default path
// is not an error; a missing file that was named explicitly is.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidInput,
			"config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail deep inside a command.
func (c Config) Validate() error {
	if err := errors.ValidateDimension("viewport.width", c.Viewport.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("viewport.height", c.Viewport.Height); err != nil {
		return err
	}
	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return err
	}
	if err := errors.ValidateScale(c.Render.Scale); err != nil {
		return err
	}
	if _, err := grid.ParseMetric(c.Render.Metric); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case "", cache.BackendNone, cache.BackendFile, cache.BackendRedis, cache.BackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q", c.Cache.Backend)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

// ParseLevel converts the configured level name.
func (l Log) ParseLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(l.Level)
	if err != nil {
		return log.InfoLevel, errors.New(errors.ErrCodeInvalidInput, "invalid log level %q", l.Level)
	}
	return lvl, nil
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write stores cfg at path, creating parent directories. Existing files
// are kept unless overwrite is set.
func Write(path string, cfg Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeInvalidInput, "%s already exists", path)
		}
	}
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// =============================================================================
// Paths
// =============================================================================

// Path returns the default config file location
// ($XDG_CONFIG_HOME/prismview/config.toml, falling back to ~/.config).
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns the default file cache directory
// ($XDG_CACHE_HOME/prismview, falling back to ~/.cache).
func CacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
