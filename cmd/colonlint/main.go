// Package main is the entry point for colonlint.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/colonlint/internal/lint"
	"github.com/donaldgifford/colonlint/internal/rules"
	"github.com/donaldgifford/colonlint/internal/runner"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	exitCode := runner.ExitOK
	opts := &runner.Options{}

	root := &cobra.Command{
		Use:   "colonlint [flags] [paths...]",
		Short: "Check whitespace before colons in JavaScript object literals and destructuring",
		Long: `colonlint checks the whitespace between a property key and its colon in
object literals and destructuring patterns.

Paths may be files or directories. With no paths, or "-", source is read
from stdin.

Exit codes: 0 clean, 1 failures or a non-empty diff, 2 configuration or I/O
error.`,
		Args:          cobra.ArbitraryArgs,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, paths []string) error {
			if opts.Fix && opts.Diff {
				return fmt.Errorf("--fix and --diff are mutually exclusive")
			}
			opts.Paths = paths
			opts.Stdin = stdin
			opts.Stdout = stdout
			opts.Stderr = stderr
			exitCode = runner.Run(cmd.Context(), opts)
			return nil
		},
	}

	flags := root.Flags()
	flags.BoolVar(&opts.Fix, "fix", false, "write fixes to files (stdin: fixed source to stdout)")
	flags.BoolVar(&opts.Diff, "diff", false, "print a unified diff of fixes instead of a report")
	flags.StringVarP(&opts.Format, "format", "f", "", "report format: text, json or sarif (default from config)")
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "path to config file")
	flags.StringArrayVar(&opts.RuleOptions, "rule", nil, "set a rule option as name=option (repeatable)")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "report errors only")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(rulesCmd(stdout))
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "colonlint: %v\n", err)
		return runner.ExitError
	}
	return exitCode
}

func rulesCmd(stdout io.Writer) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rules and their options",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if long {
				for _, r := range rules.All() {
					describeRule(stdout, r)
				}
				return nil
			}

			tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "RULE\tOPTIONS\tFIXABLE\tDESCRIPTION")
			for _, r := range rules.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name(), strings.Join(r.Options(), "|"), fixable(r), r.Description())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "show rationale and a config example for each rule")
	return cmd
}

// describeRule prints the long form of a rule listing.
func describeRule(w io.Writer, r lint.Rule) {
	fmt.Fprintf(w, "%s\n  %s\n", r.Name(), r.Description())
	if d, ok := r.(lint.Documenter); ok {
		fmt.Fprintf(w, "\n  Rationale: %s\n", d.Rationale())
	}
	fmt.Fprintf(w, "\n  Options: %s\n  Fixable: %s\n", strings.Join(r.Options(), ", "), fixable(r))
	if opts := r.Options(); len(opts) > 0 {
		fmt.Fprintf(w, "\n  Example:\n    lint:\n      rules:\n        %s:\n          option: %s\n", r.Name(), opts[0])
	}
	fmt.Fprintln(w)
}

func fixable(r lint.Rule) string {
	if f, ok := r.(lint.Fixer); ok && f.HasFix() {
		return "yes"
	}
	return "no"
}

// versionString prefers ldflags values and falls back to build info.
func versionString() string {
	v, c, d := version, commit, date
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	return fmt.Sprintf("%s (%s) %s", v, c, d)
}
