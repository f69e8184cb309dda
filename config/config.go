// SPDX-License-Identifier: MIT

// Package config loads the tradelanes TOML configuration file.
//
// Every section is optional. Load starts from Default and overwrites only the
// keys the file sets, so an empty path or an empty file yields the defaults:
//
//	[log]
//	level       = "info"     # logrus level name
//	file        = ""         # rotating log file; empty disables it
//	max_size_mb = 100
//	max_backups = 7
//	max_age_days = 30
//	compress    = true
//
//	[layout]
//	center_x = 300.0
//	center_y = 300.0
//	radius   = 250.0
//
//	[batch]
//	workers = 0              # 0 means one per CPU
//
//	[output]
//	format          = "text" # text | json | dot | svg
//	scenario_format = "yaml" # yaml | toml | json
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Output formats accepted in [output].format.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputDOT  = "dot"
	OutputSVG  = "svg"
)

// Config is the whole configuration file.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Layout LayoutConfig `toml:"layout"`
	Batch  BatchConfig  `toml:"batch"`
	Output OutputConfig `toml:"output"`
}

// LogConfig configures logging. File rotation settings apply only when File
// is set.
type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

// LayoutConfig positions the circular drawing layout.
type LayoutConfig struct {
	CenterX float64 `toml:"center_x"`
	CenterY float64 `toml:"center_y"`
	Radius  float64 `toml:"radius"`
}

// BatchConfig sizes the all-pairs worker pool.
type BatchConfig struct {
	Workers int `toml:"workers"`
}

// OutputConfig selects default renderings.
type OutputConfig struct {
	Format         string `toml:"format"`
	ScenarioFormat string `toml:"scenario_format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 7,
			MaxAgeDays: 30,
			Compress:   true,
		},
		Layout: LayoutConfig{CenterX: 300, CenterY: 300, Radius: 250},
		Output: OutputConfig{Format: OutputText, ScenarioFormat: "yaml"},
	}
}

// Load reads the file at path over Default. An empty path returns the
// defaults; a path that does not exist is an error. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: %s: unknown key %q", ErrInvalid, path, undecoded[0].String())
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value domains.
func (c Config) Validate() error {
	if c.Layout.Radius <= 0 {
		return fmt.Errorf("%w: layout.radius must be positive, got %v", ErrInvalid, c.Layout.Radius)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("%w: batch.workers must be >= 0, got %d", ErrInvalid, c.Batch.Workers)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("%w: log rotation limits must be >= 0", ErrInvalid)
	}
	switch strings.ToLower(c.Output.Format) {
	case OutputText, OutputJSON, OutputDOT, OutputSVG:
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalid, c.Output.Format)
	}
	switch strings.ToLower(c.Output.ScenarioFormat) {
	case "yaml", "yml", "toml", "json":
	default:
		return fmt.Errorf("%w: output.scenario_format %q", ErrInvalid, c.Output.ScenarioFormat)
	}

	return nil
}
