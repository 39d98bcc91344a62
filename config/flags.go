package config

import "flag"

// Overrides holds the command-line values that take priority over the file.
type Overrides struct {
	Debug   bool
	Samples int
	Format  string
	Output  string
	PlotDir string
}

// RegisterFlags binds the override flags to fs.
func (o *Overrides) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&o.Debug, "debug", false, "Enable debug logging")
	fs.IntVar(&o.Samples, "samples", 0, "Number of samples per curve")
	fs.StringVar(&o.Format, "format", "", "Report format: toml, yaml or json")
	fs.StringVar(&o.Output, "out", "", "Report file (stdout when empty)")
	fs.StringVar(&o.PlotDir, "plots", "", "Directory for rendered PNGs")
}

// Apply applies CLI flag overrides to the config.
func (cfg *Config) Apply(o Overrides) {
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
	if o.Samples > 0 {
		cfg.Sampling.Samples = o.Samples
	}
	if o.Format != "" {
		cfg.Sampling.Format = o.Format
	}
	if o.Output != "" {
		cfg.Sampling.Output = o.Output
	}
	if o.PlotDir != "" {
		cfg.Plot.Directory = o.PlotDir
	}
}
