// Package config handles loading and validating lina job files.
package config

import (
	"github.com/spaghettifunk/lina/math"
)

// Config describes one sampling/plotting job.
type Config struct {
	Logging  LoggingConfig  `toml:"logging"`
	Sampling SamplingConfig `toml:"sampling"`
	Plot     PlotConfig     `toml:"plot"`
	Easings  []string       `toml:"easings"`
	Beziers  []BezierConfig `toml:"bezier"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // optional rotated log file
}

// SamplingConfig controls how curves are sampled and where the report goes.
type SamplingConfig struct {
	Samples int    `toml:"samples"`
	Format  string `toml:"format"` // toml, yaml or json
	Output  string `toml:"output"` // empty means stdout
}

// PlotConfig controls PNG rendering.
type PlotConfig struct {
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Directory string  `toml:"directory"`
	Stroke    float32 `toml:"stroke"`
}

// BezierConfig is a named Bézier curve. Four points are evaluated as a cubic,
// any other count of two or more with De Casteljau.
type BezierConfig struct {
	Name   string        `toml:"name"`
	Points []math.Point2 `toml:"points"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
		Sampling: SamplingConfig{
			Samples: 32,
			Format:  "toml",
			Output:  "",
		},
		Plot: PlotConfig{
			Width:     256,
			Height:    256,
			Directory: "plots",
			Stroke:    1.5,
		},
		Easings: []string{"easeInOutCubic"},
	}
}
