// Package testutil provides golden file helpers for rule fix tests.
//
// Golden cases live under testdata/<option>/<case>/. Each case holds an
// input.js and the expected.js that fixing input.js with that option must
// produce.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/colonlint/pkg/diff"
)

// Update rewrites expected.js from the current fix output.
// Usage: go test ./internal/rules/... -update
var Update = flag.Bool("update", false, "update golden files")

// Golden file names inside each case directory.
const (
	InputFile    = "input.js"
	ExpectedFile = "expected.js"
)

// FixFunc lints src with the rule option and returns the fixed source.
type FixFunc func(t *testing.T, option, src string) string

// RunGolden fixes input.js in dir with option and compares the result
// against expected.js. Fixing expected.js again must not change it.
func RunGolden(t *testing.T, dir, option string, fix FixFunc) {
	t.Helper()

	expectedPath := filepath.Join(dir, ExpectedFile)
	input := readFile(t, filepath.Join(dir, InputFile))
	actual := fix(t, option, input)

	if *Update {
		require.NoError(t, os.WriteFile(expectedPath, []byte(actual), 0o644))
		t.Logf("updated golden file: %s", expectedPath)
		return
	}

	expected := readFile(t, expectedPath)
	if actual != expected {
		t.Errorf("fix output mismatch for %s (option %s):\n%s",
			dir, option, diff.Unified(ExpectedFile, expected, actual))
		return
	}

	if again := fix(t, option, expected); again != expected {
		t.Errorf("fix of %s is not stable (option %s):\n%s",
			expectedPath, option, diff.Unified(ExpectedFile, expected, again))
	}
}

// RunGoldenTree runs RunGolden for every case directory under
// root/<option>, with one subtest per option and per case.
func RunGoldenTree(t *testing.T, root string, options []string, fix FixFunc) {
	t.Helper()

	for _, option := range options {
		t.Run(option, func(t *testing.T) {
			optionDir := filepath.Join(root, option)
			entries, err := os.ReadDir(optionDir)
			require.NoError(t, err)

			for _, entry := range entries {
				if !entry.IsDir() {
					continue
				}
				t.Run(entry.Name(), func(t *testing.T) {
					RunGolden(t, filepath.Join(optionDir, entry.Name()), option, fix)
				})
			}
		})
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
