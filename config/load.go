package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/lina/core"
	"github.com/spaghettifunk/lina/math"
)

// Load loads configuration with priority: defaults < file < environment.
// Flag overrides are applied afterwards by the caller with Apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile loads config from a TOML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return toml.Unmarshal(data, cfg)
}

// Validate reports the first problem found in cfg.
func (cfg *Config) Validate() error {
	if cfg.Sampling.Samples < 2 {
		return fmt.Errorf("sampling.samples must be at least 2, got %d", cfg.Sampling.Samples)
	}
	switch cfg.Sampling.Format {
	case "toml", "yaml", "json":
	default:
		return fmt.Errorf("sampling.format %q: %w", cfg.Sampling.Format, core.ErrUnknownFormat)
	}
	if cfg.Plot.Width <= 0 || cfg.Plot.Height <= 0 {
		return fmt.Errorf("plot size must be positive, got %dx%d", cfg.Plot.Width, cfg.Plot.Height)
	}
	if cfg.Plot.Stroke <= 0 {
		return fmt.Errorf("plot.stroke must be positive, got %v", cfg.Plot.Stroke)
	}
	// series names become plot file names, so they must be unique and stay in the plot directory
	seen := make(map[string]bool, len(cfg.Easings)+len(cfg.Beziers))
	for _, name := range cfg.Easings {
		if _, err := math.EasingByName(name); err != nil {
			return err
		}
		if seen[name] {
			return fmt.Errorf("easing %q listed twice: %w", name, core.ErrInvalidCurve)
		}
		seen[name] = true
	}
	for i, b := range cfg.Beziers {
		if b.Name == "" {
			return fmt.Errorf("bezier #%d has no name: %w", i, core.ErrInvalidCurve)
		}
		if !validSeriesName(b.Name) {
			return fmt.Errorf("bezier name %q must not contain path separators or \"..\": %w", b.Name, core.ErrInvalidCurve)
		}
		if seen[b.Name] {
			return fmt.Errorf("series name %q used twice: %w", b.Name, core.ErrInvalidCurve)
		}
		seen[b.Name] = true
		if len(b.Points) < 2 {
			return fmt.Errorf("bezier %q needs at least 2 points, got %d: %w", b.Name, len(b.Points), core.ErrInvalidCurve)
		}
	}
	return nil
}

func validSeriesName(name string) bool {
	return !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "..")
}
