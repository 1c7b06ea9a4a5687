// Package config loads meetgrid configuration from a TOML file.
//
// The file is optional: a missing config file yields the built-in
// defaults, so the CLI and server work out of the box.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/thangdevalone/meeting-layout-grid/pkg/geometry"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/float"
)

// appName is the application name used for config and cache directories.
const appName = "meetgrid"

// Config is the full application configuration.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// LayoutConfig holds engine defaults applied when a request omits them.
type LayoutConfig struct {
	AspectRatio string             `toml:"aspect_ratio"`
	Gap         float64            `toml:"gap"`
	Breakpoints []float.Breakpoint `toml:"breakpoints"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Dir is the file cache directory. Empty means the XDG default
	// (~/.cache/meetgrid).
	Dir string `toml:"dir"`

	// RedisAddr switches the cache to redis when set (host:port).
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`

	// Disabled turns caching off entirely.
	Disabled bool `toml:"disabled"`
}

// ServerConfig holds HTTP service settings.
type ServerConfig struct {
	Addr string `toml:"addr"`

	// MongoURI switches the preset store to mongo when set.
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Layout: LayoutConfig{
			AspectRatio: "16:9",
			Gap:         layout.DefaultGap,
		},
		Server: ServerConfig{
			Addr:          ":8080",
			MongoDatabase: appName,
		},
	}
}

// DefaultPath returns the conventional config file location
// (~/.config/meetgrid/config.toml, honoring XDG_CONFIG_HOME).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns the file cache directory, preferring the configured
// one and falling back to the XDG standard (~/.cache/meetgrid).
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// Load reads configuration from path. An empty path means the default
// location; a missing file at the default location is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks configuration values.
func (c Config) Validate() error {
	if c.Layout.AspectRatio != "" && !geometry.IsFillRatio(c.Layout.AspectRatio) {
		if _, err := geometry.ParseRatio(c.Layout.AspectRatio); err != nil {
			return err
		}
	}
	if c.Layout.Gap < 0 {
		return fmt.Errorf("gap must be non-negative, got %g", c.Layout.Gap)
	}
	for i, bp := range c.Layout.Breakpoints {
		if bp.Width <= 0 || bp.Height <= 0 {
			return fmt.Errorf("breakpoint %d: width and height must be positive", i)
		}
		if bp.MinWidth < 0 {
			return fmt.Errorf("breakpoint %d: min_width must be non-negative", i)
		}
	}
	if c.Cache.RedisDB < 0 {
		return fmt.Errorf("redis_db must be non-negative, got %d", c.Cache.RedisDB)
	}
	return nil
}
