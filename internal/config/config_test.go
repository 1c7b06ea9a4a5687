package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thangdevalone/meeting-layout-grid/pkg/layout"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	// Point the default location at an empty directory.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Layout.AspectRatio != "16:9" {
		t.Errorf("AspectRatio = %q, want 16:9", cfg.Layout.AspectRatio)
	}
	if cfg.Layout.Gap != layout.DefaultGap {
		t.Errorf("Gap = %g, want %g", cfg.Layout.Gap, layout.DefaultGap)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Server.Addr)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[layout]
aspect_ratio = "4:3"
gap = 12.0

[[layout.breakpoints]]
min_width = 0
width = 120
height = 160

[[layout.breakpoints]]
min_width = 900
width = 200
height = 260

[cache]
dir = "/tmp/meetgrid-cache"
redis_addr = "localhost:6379"

[server]
addr = ":9090"
mongo_uri = "mongodb://localhost:27017"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Layout.AspectRatio != "4:3" {
		t.Errorf("AspectRatio = %q, want 4:3", cfg.Layout.AspectRatio)
	}
	if cfg.Layout.Gap != 12 {
		t.Errorf("Gap = %g, want 12", cfg.Layout.Gap)
	}
	if len(cfg.Layout.Breakpoints) != 2 {
		t.Fatalf("Breakpoints = %d, want 2", len(cfg.Layout.Breakpoints))
	}
	if cfg.Layout.Breakpoints[1].MinWidth != 900 {
		t.Errorf("Breakpoints[1].MinWidth = %g, want 900", cfg.Layout.Breakpoints[1].MinWidth)
	}
	if cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.Cache.RedisAddr)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Server.Addr)
	}

	dir, err := cfg.CacheDir()
	if err != nil {
		t.Fatalf("CacheDir() error: %v", err)
	}
	if dir != "/tmp/meetgrid-cache" {
		t.Errorf("CacheDir() = %q", dir)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = ":3000"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Untouched sections keep their defaults.
	if cfg.Layout.AspectRatio != "16:9" {
		t.Errorf("AspectRatio = %q, want 16:9", cfg.Layout.AspectRatio)
	}
	if cfg.Server.Addr != ":3000" {
		t.Errorf("Addr = %q, want :3000", cfg.Server.Addr)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Explicit missing path should fail")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", `[layout`},
		{"bad ratio", "[layout]\naspect_ratio = \"wide\""},
		{"negative gap", "[layout]\ngap = -1.0"},
		{"zero breakpoint", "[[layout.breakpoints]]\nmin_width = 0\nwidth = 0\nheight = 100"},
		{"negative redis db", "[cache]\nredis_db = -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestCacheDirDefault(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/custom/cache")

	dir, err := Default().CacheDir()
	if err != nil {
		t.Fatalf("CacheDir() error: %v", err)
	}
	if dir != filepath.Join("/custom/cache", "meetgrid") {
		t.Errorf("CacheDir() = %q", dir)
	}
}
