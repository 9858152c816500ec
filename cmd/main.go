package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"

	"gospeed/benchmark"
	"gospeed/config"
	"gospeed/progress"
	"gospeed/report"
)

type options struct {
	params   benchmark.BenchmarkParams
	logLevel string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "gospeed",
		Level:  hclog.LevelFromString(opts.logLevel),
		Output: stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Keep the benchmark thread on one CPU if asked to
	unpin, err := benchmark.PinToCPU(opts.params.PinCPU)
	if err != nil {
		logger.Error("unable to pin benchmark thread", "error", err)
		return 1
	}
	defer unpin()
	if opts.params.PinCPU >= 0 {
		logger.Info("benchmark thread pinned", "cpu", opts.params.PinCPU)
	}

	var bar *progress.ProgressBar
	if opts.params.Progress {
		bar = progress.NewProgressBar(int64(benchmark.CaseCount()), stderr)
	}

	logger.Debug("starting suite", "iterations", opts.params.Iterations, "cooldown", opts.params.Cooldown)
	printer := report.NewPrinter(stdout, opts.params.Color)
	if _, err := benchmark.RunSuite(ctx, opts.params, printer, bar, logger); err != nil {
		logger.Error("benchmark suite failed", "error", err)
		return 1
	}
	return 0
}

// parseOptions reads the command line. A profile named by -config is applied
// first; flags given explicitly override it.
func parseOptions(args []string, output io.Writer) (options, error) {
	defaults := benchmark.DefaultParams()

	fs := flag.NewFlagSet("gospeed", flag.ContinueOnError)
	fs.SetOutput(output)
	iterations := fs.Int("iterations", defaults.Iterations, "Operations per benchmark, a multiple of 8")
	cooldown := fs.Duration("cooldown", defaults.Cooldown, "Pause between benchmark sections")
	pinCPU := fs.Int("pin-cpu", defaults.PinCPU, "CPU to pin the benchmark thread to (-1 disables pinning)")
	showProgress := fs.Bool("progress", defaults.Progress, "Show a progress bar on stderr")
	colored := fs.Bool("color", defaults.Color, "Colour the report labels")
	logLevel := fs.String("log-level", "warn", "Log level: trace, debug, info, warn, error")
	configFilePath := fs.String("config", "", "Path to a YAML benchmark profile")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	opts := options{params: defaults, logLevel: *logLevel}
	if *configFilePath != "" {
		profile, err := config.LoadProfile(*configFilePath)
		if err != nil {
			return options{}, err
		}
		profile.Apply(&opts.params)
		if profile.LogLevel != "" {
			opts.logLevel = profile.LogLevel
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "iterations":
			opts.params.Iterations = *iterations
		case "cooldown":
			opts.params.Cooldown = *cooldown
		case "pin-cpu":
			opts.params.PinCPU = *pinCPU
		case "progress":
			opts.params.Progress = *showProgress
		case "color":
			opts.params.Color = *colored
		case "log-level":
			opts.logLevel = *logLevel
		}
	})

	if hclog.LevelFromString(opts.logLevel) == hclog.NoLevel {
		return options{}, fmt.Errorf("unknown log level %q", opts.logLevel)
	}
	if err := opts.params.Validate(); err != nil {
		return options{}, err
	}
	return opts, nil
}
