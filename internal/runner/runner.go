// Package runner orchestrates the parse -> lint -> fix -> report pipeline.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/colonlint/internal/config"
	"github.com/donaldgifford/colonlint/internal/lint"
	"github.com/donaldgifford/colonlint/internal/report"
	"github.com/donaldgifford/colonlint/internal/rules"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFailures = 1
	ExitError    = 2
)

// StdinName is the file name reported for source read from stdin.
const StdinName = "<stdin>"

// Options configures the runner behavior.
type Options struct {
	// Paths are files or directories to lint. None, or "-", reads stdin.
	Paths []string

	// Fix writes fixed files. For stdin the fixed source goes to Stdout and
	// the report to Stderr.
	Fix bool

	// Diff prints a unified diff of the fixes instead of a report.
	Diff bool

	// Format overrides lint.format from the config file.
	Format string

	// RuleOptions overrides rule options, as name=option pairs.
	RuleOptions []string

	ConfigPath string
	Quiet      bool
	Verbose    bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Logger defaults to an hclog logger on Stderr at a level derived
	// from Quiet and Verbose.
	Logger hclog.Logger
}

// Run executes the lint pipeline and returns an exit code.
func Run(ctx context.Context, opts *Options) int {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = NewLogger(opts.Stderr, opts.Quiet, opts.Verbose)
	}
	log := opts.Logger

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Error("loading config", "error", err)
		return ExitError
	}

	settings, err := buildSettings(cfg, log)
	if err != nil {
		log.Error("configuring rules", "error", err)
		return ExitError
	}

	formatter, err := report.New(cfg.Lint.Format, rules.All())
	if err != nil {
		log.Error("configuring report", "error", err)
		return ExitError
	}

	targets, exitCode := expandPaths(opts.Paths, &cfg.Lint, log)

	results := make([]result, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency(cfg.Lint.Concurrency))

	for i, t := range targets {
		i, t := i, t
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log.Debug("linting", "path", t.name)
			results[i] = process(t, opts, settings)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("lint interrupted", "error", err)
		return ExitError
	}

	var remaining []lint.Failure
	for _, r := range results {
		if r.err != nil {
			log.Error("linting file", "path", r.name, "error", r.err)
			exitCode = ExitError
			continue
		}

		if r.fixed != nil {
			writeOut(opts.Stdout, *r.fixed)
		}
		if r.diff != "" {
			writeOut(opts.Stdout, r.diff)
			exitCode = max(exitCode, ExitFailures)
		}
		if len(r.applied) > 0 {
			log.Debug("applied fixes", "path", r.name, "count", len(r.applied))
		}
		for _, f := range r.failures {
			log.Debug("failure", "detail", f.String())
		}

		remaining = append(remaining, r.failures...)
	}

	if errs, _ := lint.Count(remaining); errs > 0 {
		exitCode = max(exitCode, ExitFailures)
	}

	if opts.Diff {
		return exitCode
	}

	if opts.Quiet {
		remaining = errorsOnly(remaining)
	}

	out := opts.Stdout
	if opts.Fix && hasStdin(targets) {
		out = opts.Stderr
	}
	if err := formatter.Format(out, remaining); err != nil {
		log.Error("writing report", "error", err)
		return ExitError
	}

	return exitCode
}

// NewLogger returns the colonlint logger writing to w.
func NewLogger(w io.Writer, quiet, verbose bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colonlint",
		Level:  level,
		Output: w,
	})
}

func loadConfig(opts *Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.Format != "" {
		cfg.Lint.Format = opts.Format
	}
	if err := applyRuleOptions(cfg, opts.RuleOptions); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func concurrency(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

func errorsOnly(failures []lint.Failure) []lint.Failure {
	var out []lint.Failure
	for _, f := range failures {
		if f.Severity == lint.SeverityError {
			out = append(out, f)
		}
	}
	return out
}

// writeOut writes to stdout.
func writeOut(w io.Writer, s string) {
	fmt.Fprint(w, s)
}
