package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the job file.
const (
	EnvLogLevel = "LINA_LOG_LEVEL"
	EnvLogFile  = "LINA_LOG_FILE"
	EnvSamples  = "LINA_SAMPLES"
	EnvFormat   = "LINA_FORMAT"
	EnvPlotDir  = "LINA_PLOT_DIR"
	EnvEasings  = "LINA_EASINGS" // comma separated
)

// LoadDotEnv reads KEY=value pairs from the given files (".env" when none)
// into the process environment. Variables that are already set win, and
// missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// applyEnv overlays the LINA_* variables on cfg.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv(EnvSamples); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSamples, err)
		}
		cfg.Sampling.Samples = n
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Sampling.Format = v
	}
	if v := os.Getenv(EnvPlotDir); v != "" {
		cfg.Plot.Directory = v
	}
	if v := os.Getenv(EnvEasings); v != "" {
		cfg.Easings = nil
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Easings = append(cfg.Easings, name)
			}
		}
	}
	return nil
}
