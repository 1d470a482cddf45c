package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/donaldgifford/colonlint/internal/lint"
	"github.com/donaldgifford/colonlint/internal/syntax"
	"github.com/donaldgifford/colonlint/pkg/diff"
)

// maxFixPasses bounds re-linting after fixes that were skipped because
// they overlapped.
const maxFixPasses = 10

// result is the outcome of one target. Each worker owns its result.
type result struct {
	name     string
	failures []lint.Failure
	applied  []lint.Failure
	fixed    *string
	diff     string
	err      error
}

func process(t target, opts *Options, settings []lint.Setting) result {
	r := result{name: t.name}

	src, err := read(t, opts.Stdin)
	if err != nil {
		r.err = err
		return r
	}

	file, err := syntax.Parse(t.name, src)
	if err != nil {
		r.err = err
		return r
	}
	r.failures = lint.Run(file, settings)

	if !opts.Fix && !opts.Diff {
		return r
	}

	output, applied, failures, err := fixAll(file, settings, r.failures)
	if err != nil {
		r.err = err
		return r
	}
	r.applied = applied
	r.failures = failures

	if opts.Diff {
		r.diff = diff.Unified(t.name, src, output)
		return r
	}

	if t.stdin {
		r.fixed = &output
		return r
	}

	if output != src {
		if err := os.WriteFile(t.name, []byte(output), 0o644); err != nil {
			r.err = fmt.Errorf("writing %s: %w", t.name, err)
		}
	}
	return r
}

// fixAll applies fixes until none remain applicable and returns the fixed
// source, the applied failures and the failures that remain.
func fixAll(file *syntax.File, settings []lint.Setting, failures []lint.Failure) (string, []lint.Failure, []lint.Failure, error) {
	var applied []lint.Failure
	src := file.Source

	for pass := 0; pass < maxFixPasses; pass++ {
		res := lint.ApplyFixes(src, failures)
		if len(res.Applied) == 0 {
			break
		}
		applied = append(applied, res.Applied...)
		src = res.Output

		next, err := syntax.Parse(file.Name, src)
		if err != nil {
			return "", nil, nil, fmt.Errorf("re-parsing fixed source: %w", err)
		}
		failures = lint.Run(next, settings)
		if len(res.Skipped) == 0 {
			break
		}
	}

	return src, applied, failures, nil
}

func read(t target, stdin io.Reader) (string, error) {
	if t.stdin {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(t.name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
