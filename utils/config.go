package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/gol-engine/model"
)

// PatternPlacement anchors a named seed pattern on the board
type PatternPlacement struct {
	Name string `json:"name" yaml:"name"`
	Row  int    `json:"row" yaml:"row"`
	Col  int    `json:"col" yaml:"col"`
}

// Config holds the configuration for the game
type Config struct {
	Rows                int                `json:"rows" yaml:"rows"`
	Cols                int                `json:"cols" yaml:"cols"`
	Workers             int                `json:"workers" yaml:"workers"`
	UseBoundedGrid      bool               `json:"use_bounded_grid" yaml:"use_bounded_grid"`
	FrameRate           time.Duration      `json:"frame_rate" yaml:"frame_rate"`
	MaxGenerations      int                `json:"max_generations" yaml:"max_generations"`
	AutoRestart         bool               `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int                `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	HistorySize         int                `json:"history_size" yaml:"history_size"`
	RandomDensity       float64            `json:"random_density" yaml:"random_density"`
	Seed                int64              `json:"seed" yaml:"seed"`
	Patterns            []PatternPlacement `json:"patterns" yaml:"patterns"`
	Cells               []model.Coord      `json:"cells" yaml:"cells"`
	LogLevel            string             `json:"log_level" yaml:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                30,
		Cols:                60,
		Workers:             0, // runtime.NumCPU()
		UseBoundedGrid:      true,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		AutoRestart:         true,
		StagnationThreshold: 5,
		HistorySize:         5,
		RandomDensity:       0.15,
		Seed:                1,
		Patterns: []PatternPlacement{
			{Name: "glider", Row: 5, Col: 5},
			{Name: "blinker", Row: 7, Col: 15},
		},
		LogLevel: "info",
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Fields missing from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ApplyEnvOverrides applies GOL_* environment variables on top of c
func (c *Config) ApplyEnvOverrides() error {
	ints := map[string]*int{
		"GOL_ROWS":            &c.Rows,
		"GOL_COLS":            &c.Cols,
		"GOL_WORKERS":         &c.Workers,
		"GOL_MAX_GENERATIONS": &c.MaxGenerations,
	}
	for key, dst := range ints {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "[ApplyEnvOverrides] invalid %s", key)
		}
		*dst = n
	}

	if v := os.Getenv("GOL_LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}

	return nil
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	if c.Rows < 0 || c.Cols < 0 {
		return errors.Errorf("grid dimensions must be non-negative, got %dx%d", c.Rows, c.Cols)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("random_density must be between 0 and 1, got %f", c.RandomDensity)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("frame_rate must be non-negative, got %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("max_generations must be non-negative, got %d", c.MaxGenerations)
	}
	if c.StagnationThreshold < 0 {
		return errors.Errorf("stagnation_threshold must be non-negative, got %d", c.StagnationThreshold)
	}
	if c.HistorySize < 1 {
		return errors.Errorf("history_size must be at least 1, got %d", c.HistorySize)
	}

	validLevels := map[string]bool{"": true, "info": true, "debug": true}
	if !validLevels[c.LogLevel] {
		return errors.Errorf("invalid log level: %s (valid: info, debug, or empty for default)", c.LogLevel)
	}

	for _, p := range c.Patterns {
		if _, err := model.PatternByName(p.Name, p.Row, p.Col); err != nil {
			return errors.Wrap(err, "[Validate] invalid pattern")
		}
	}

	return nil
}

// SeedCoords expands the configured cells, patterns and random scatter into
// the coordinates to populate. seed overrides c.Seed for the random scatter.
func (c Config) SeedCoords(seed int64) ([]model.Coord, error) {
	coords := make([]model.Coord, 0, len(c.Cells))
	coords = append(coords, c.Cells...)

	for _, p := range c.Patterns {
		pattern, err := model.PatternByName(p.Name, p.Row, p.Col)
		if err != nil {
			return nil, errors.Wrap(err, "[SeedCoords] failed to place pattern")
		}
		coords = append(coords, pattern...)
	}

	if c.RandomDensity > 0 {
		coords = append(coords, model.RandomCoords(c.Rows, c.Cols, c.RandomDensity, seed)...)
	}

	return coords, nil
}
