package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Schedule.WrapEnabled {
		t.Error("wrap should default to off")
	}
	if cfg.Schedule.AllowOverlap {
		t.Error("overlap should default to off")
	}
	if cfg.Schedule.TimeFormat != "24h" {
		t.Errorf("time format = %q, want 24h", cfg.Schedule.TimeFormat)
	}
	if cfg.UI.DefaultColor != "#3a86ff" {
		t.Errorf("default color = %q, want #3a86ff", cfg.UI.DefaultColor)
	}
	if cfg.Storage.DBPath == "" {
		t.Error("db path must have a default")
	}
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Schedule.TimeFormat != "24h" {
		t.Errorf("time format = %q, want default 24h", cfg.Schedule.TimeFormat)
	}
}

func TestLoadFrom_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[schedule]
wrap_enabled = true
time_format = "12h"

[storage]
db_path = "/tmp/rondo-test.db"

[ui]
default_color = "#ff006e"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.Schedule.WrapEnabled {
		t.Error("wrap_enabled not loaded")
	}
	if cfg.Schedule.TimeFormat != "12h" {
		t.Errorf("time format = %q, want 12h", cfg.Schedule.TimeFormat)
	}
	if cfg.Storage.DBPath != "/tmp/rondo-test.db" {
		t.Errorf("db path = %q", cfg.Storage.DBPath)
	}
	if cfg.UI.DefaultColor != "#ff006e" {
		t.Errorf("default color = %q", cfg.UI.DefaultColor)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("RONDO_TIME_FORMAT", "12h")
	t.Setenv("RONDO_ALLOW_OVERLAP", "true")
	t.Setenv("RONDO_DB_PATH", "/tmp/env.db")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Schedule.TimeFormat != "12h" {
		t.Errorf("time format = %q, want env 12h", cfg.Schedule.TimeFormat)
	}
	if !cfg.Schedule.AllowOverlap {
		t.Error("allow_overlap env override not applied")
	}
	if cfg.Storage.DBPath != "/tmp/env.db" {
		t.Errorf("db path = %q, want env /tmp/env.db", cfg.Storage.DBPath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(*Config) {}, false},
		{"bad time format", func(c *Config) { c.Schedule.TimeFormat = "25h" }, true},
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }, true},
		{"bad color", func(c *Config) { c.UI.DefaultColor = "blue" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := Default()
	cfg.Schedule.WrapEnabled = true
	cfg.Storage.DBPath = "/tmp/roundtrip.db"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded.Schedule.WrapEnabled || loaded.Storage.DBPath != "/tmp/roundtrip.db" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}
