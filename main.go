/*
lina samples easing functions and Bézier curves described in a TOML job file,
writes the samples as a report and renders them to PNG plots.

	lina sample -config job.toml [-format yaml] [-out report.yaml]
	lina plot   -config job.toml [-report report.yaml]
	lina watch  -config job.toml
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spaghettifunk/lina/config"
	"github.com/spaghettifunk/lina/core"
	"github.com/spaghettifunk/lina/plot"
	"github.com/spaghettifunk/lina/sampler"
	"github.com/spaghettifunk/lina/watcher"
)

const plotMargin float32 = 8

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	configPath := fs.String("config", "", "Path to the TOML job file")
	reportPath := fs.String("report", "", "Plot an existing report instead of sampling (plot only)")
	var overrides config.Overrides
	overrides.RegisterFlags(fs)
	_ = fs.Parse(args)

	if err := config.LoadDotEnv(); err != nil {
		core.LogFatal("%v", err)
	}
	cfg, err := loadConfig(*configPath, overrides)
	if err != nil {
		core.LogFatal("invalid configuration: %v", err)
	}

	switch cmd {
	case "sample":
		_, err = timed("sample", func() error { return runSample(cfg) })
	case "plot":
		_, err = timed("plot", func() error { return runPlot(cfg, *reportPath) })
	case "watch":
		err = runWatch(*configPath, overrides)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		core.LogFatal("%s failed: %v", cmd, err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: lina sample|plot|watch -config job.toml [flags]")
}

func loadConfig(path string, overrides config.Overrides) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.Apply(overrides)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := core.ConfigureLogging(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return nil, err
	}
	return cfg, nil
}

func timed(name string, run func() error) (time.Duration, error) {
	clock := core.NewClock()
	clock.Start()
	err := run()
	clock.Stop()
	core.LogInfo("%s finished in %s", name, clock.Elapsed())
	return clock.Elapsed(), err
}

func runSample(cfg *config.Config) error {
	report, err := sampler.Sample(cfg)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if cfg.Sampling.Output != "" {
		f, err := os.Create(cfg.Sampling.Output)
		if err != nil {
			return fmt.Errorf("creating report: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := sampler.Encode(w, report, cfg.Sampling.Format); err != nil {
		return err
	}
	core.LogInfo("run %s: wrote %d series", report.RunID, len(report.Series))
	return nil
}

func runPlot(cfg *config.Config, reportPath string) error {
	report, err := plotSource(cfg, reportPath)
	if err != nil {
		return err
	}

	o := plot.Options{
		Width:  cfg.Plot.Width,
		Height: cfg.Plot.Height,
		Stroke: cfg.Plot.Stroke,
		Margin: plotMargin,
	}
	js, err := plot.NewJobSystem(runtime.NumCPU(), len(report.Series), cfg.Plot.Directory, o)
	if err != nil {
		return err
	}

	var mu sync.Mutex
	var errs []error
	for _, s := range report.Series {
		js.Submit(plot.Job{
			Name:   s.Name,
			Points: s.Points,
			OnComplete: func(path string) {
				core.LogInfo("plot written to %s", path)
			},
			OnFailure: func(name string, err error) {
				mu.Lock()
				defer mu.Unlock()
				errs = append(errs, fmt.Errorf("plotting %s: %w", name, err))
			},
		})
	}
	js.Shutdown()

	return errors.Join(errs...)
}

// plotSource samples cfg, or decodes a saved report whose format follows its extension.
func plotSource(cfg *config.Config, reportPath string) (*sampler.Report, error) {
	if reportPath == "" {
		return sampler.Sample(cfg)
	}

	f, err := os.Open(reportPath)
	if err != nil {
		return nil, fmt.Errorf("opening report: %w", err)
	}
	defer f.Close()

	format := strings.TrimPrefix(filepath.Ext(reportPath), ".")
	if format == "yml" {
		format = "yaml"
	}
	return sampler.Decode(f, format)
}

func runWatch(configPath string, overrides config.Overrides) error {
	if configPath == "" {
		return errors.New("watch needs -config")
	}

	w, err := watcher.New()
	if err != nil {
		return err
	}
	if err := w.Add(configPath); err != nil {
		_ = w.Close()
		return err
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		<-sigCh
		core.LogInfo("shutting down watcher")
		_ = w.Close()
	}()

	metrics := core.NewRunMetrics()
	rerun := func() {
		cfg, err := loadConfig(configPath, overrides)
		if err != nil {
			core.LogError("config rejected: %v", err)
			return
		}
		elapsed, err := timed("watch", func() error {
			if err := runSample(cfg); err != nil {
				return err
			}
			return runPlot(cfg, "")
		})
		if err != nil {
			core.LogError("run failed: %v", err)
			return
		}
		metrics.Update(elapsed)
		core.LogDebug("%d runs, %s on average", metrics.Runs(), metrics.Average())
	}

	rerun()
	core.LogInfo("watching %s for changes", configPath)
	for {
		select {
		case _, ok := <-w.Events():
			if !ok {
				return nil
			}
			rerun()
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			core.LogWarn("watcher error: %v", err)
		}
	}
}
