package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sheikhrachel/gol-engine/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"rows": 12,
		"cols": 20,
		"random_density": 0,
		"cells": [{"row": 1, "col": 2}],
		"patterns": [{"name": "block", "row": 4, "col": 4}]
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Rows != 12 || cfg.Cols != 20 {
		t.Errorf("dimensions = %dx%d, want 12x20", cfg.Rows, cfg.Cols)
	}
	if len(cfg.Cells) != 1 || cfg.Cells[0] != (model.Coord{Row: 1, Col: 2}) {
		t.Errorf("Cells = %v", cfg.Cells)
	}
	if len(cfg.Patterns) != 1 || cfg.Patterns[0].Name != "block" {
		t.Errorf("Patterns = %v", cfg.Patterns)
	}
	// untouched fields keep defaults
	if cfg.HistorySize != DefaultConfig().HistorySize {
		t.Errorf("HistorySize = %d, want default %d", cfg.HistorySize, DefaultConfig().HistorySize)
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
rows: 8
cols: 9
frame_rate: 50ms
use_bounded_grid: false
log_level: debug
patterns:
  - name: glider
    row: 0
    col: 0
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Rows != 8 || cfg.Cols != 9 {
		t.Errorf("dimensions = %dx%d, want 8x9", cfg.Rows, cfg.Cols)
	}
	if cfg.FrameRate != 50*time.Millisecond {
		t.Errorf("FrameRate = %v, want 50ms", cfg.FrameRate)
	}
	if cfg.UseBoundedGrid {
		t.Error("UseBoundedGrid should be false")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if len(cfg.Patterns) != 1 || cfg.Patterns[0].Name != "glider" {
		t.Errorf("Patterns = %v", cfg.Patterns)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeFile(t, "bad.json", `{"rows": "many"}`)
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed JSON")
	}

	path = writeFile(t, "bad.yml", "rows: [1, 2\n")
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative rows", func(c *Config) { c.Rows = -1 }},
		{"negative cols", func(c *Config) { c.Cols = -1 }},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }},
		{"negative density", func(c *Config) { c.RandomDensity = -0.1 }},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -1 }},
		{"negative stagnation threshold", func(c *Config) { c.StagnationThreshold = -1 }},
		{"zero history", func(c *Config) { c.HistorySize = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }},
		{"unknown pattern", func(c *Config) { c.Patterns = []PatternPlacement{{Name: "spaceship"}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfig_ApplyEnvOverrides(t *testing.T) {
	t.Setenv("GOL_ROWS", "11")
	t.Setenv("GOL_COLS", "13")
	t.Setenv("GOL_WORKERS", "2")
	t.Setenv("GOL_LOG_LEVEL", "DEBUG")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnvOverrides(); err != nil {
		t.Fatalf("ApplyEnvOverrides error: %v", err)
	}
	if cfg.Rows != 11 || cfg.Cols != 13 || cfg.Workers != 2 {
		t.Errorf("got rows=%d cols=%d workers=%d", cfg.Rows, cfg.Cols, cfg.Workers)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}

	t.Setenv("GOL_ROWS", "lots")
	if err := cfg.ApplyEnvOverrides(); err == nil {
		t.Error("expected error for non-numeric GOL_ROWS")
	}
}

func TestConfig_SeedCoords(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RandomDensity = 0
	cfg.Cells = []model.Coord{{Row: 0, Col: 0}}
	cfg.Patterns = []PatternPlacement{{Name: "blinker", Row: 3, Col: 3}}

	coords, err := cfg.SeedCoords(cfg.Seed)
	if err != nil {
		t.Fatalf("SeedCoords error: %v", err)
	}
	if len(coords) != 4 {
		t.Fatalf("SeedCoords returned %d coords, want 4: %v", len(coords), coords)
	}

	cfg.RandomDensity = 0.5
	a, _ := cfg.SeedCoords(99)
	b, _ := cfg.SeedCoords(99)
	if len(a) != len(b) {
		t.Error("SeedCoords is not deterministic for a fixed seed")
	}

	cfg.Patterns = []PatternPlacement{{Name: "nope"}}
	if _, err := cfg.SeedCoords(1); err == nil {
		t.Error("expected error for unknown pattern")
	}
}
