package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/colonlint/internal/runner"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	chdir(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	code := execute(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExecuteStdin(t *testing.T) {
	code, stdout, _ := runCLI(t, "x = {a : 1}\n")

	assert.Equal(t, runner.ExitFailures, code)
	assert.Contains(t, stdout, "<stdin>:1:7\terror\twhitespace-before-colon")
}

func TestExecuteFilePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	require.NoError(t, os.WriteFile(path, []byte("x = {a : 1}\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	nested := filepath.Join(dir, "sub", "b.js")
	require.NoError(t, os.WriteFile(nested, []byte("const {b : c} = d\n"), 0o644))

	code, stdout, stderr := runCLI(t, "", path)
	assert.Equal(t, runner.ExitFailures, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, path+":1:7\terror\twhitespace-before-colon")

	code, stdout, _ = runCLI(t, "", filepath.Join(dir, "sub"))
	assert.Equal(t, runner.ExitFailures, code)
	assert.Contains(t, stdout, nested+":1:9")

	code, _, stderr = runCLI(t, "", "--fix", path, nested)
	assert.Equal(t, runner.ExitOK, code, "stderr: %s", stderr)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x = {a: 1}\n", string(data))
	data, err = os.ReadFile(nested)
	require.NoError(t, err)
	assert.Equal(t, "const {b: c} = d\n", string(data))
}

func TestExecuteRuleFlag(t *testing.T) {
	code, stdout, _ := runCLI(t, "x = {a : 1}\n", "--rule", "whitespace-before-colon=onespace")

	assert.Equal(t, runner.ExitOK, code)
	assert.Empty(t, stdout)
}

func TestExecuteFixStdin(t *testing.T) {
	code, stdout, _ := runCLI(t, "x = {a  : 1}\n", "--fix", "--rule", "whitespace-before-colon=onespace", "-")

	assert.Equal(t, runner.ExitOK, code)
	assert.Equal(t, "x = {a : 1}\n", stdout)
}

func TestExecuteFixAndDiffConflict(t *testing.T) {
	code, _, stderr := runCLI(t, "", "--fix", "--diff")

	assert.Equal(t, runner.ExitError, code)
	assert.Contains(t, stderr, "mutually exclusive")
}

func TestExecuteUnknownFlag(t *testing.T) {
	code, _, stderr := runCLI(t, "", "--bogus")

	assert.Equal(t, runner.ExitError, code)
	assert.Contains(t, stderr, "unknown flag")
}

func TestExecuteConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("lint:\n  format: json\n"), 0o644))

	code, stdout, _ := runCLI(t, "x = {a : 1}\n", "-c", cfg)

	assert.Equal(t, runner.ExitFailures, code)
	assert.Contains(t, stdout, `"rule": "whitespace-before-colon"`)
}

func TestExecuteRules(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "rules")

	assert.Equal(t, runner.ExitOK, code)
	assert.Contains(t, stdout, "RULE")
	assert.Contains(t, stdout, "whitespace-before-colon")
	assert.Contains(t, stdout, "nospace|onespace|space")
	assert.Contains(t, stdout, "yes")
}

func TestExecuteRulesLong(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "rules", "--long")

	assert.Equal(t, runner.ExitOK, code)
	assert.NotContains(t, stdout, "RULE")
	assert.Contains(t, stdout, "whitespace-before-colon\n")
	assert.Contains(t, stdout, "Rationale: ")
	assert.Contains(t, stdout, "destructuring bindings unchecked")
	assert.Contains(t, stdout, "Options: nospace, onespace, space")
	assert.Contains(t, stdout, "Fixable: yes")
	assert.Contains(t, stdout, "        whitespace-before-colon:\n          option: nospace\n")
}

func TestExecuteVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "--version")

	assert.Equal(t, runner.ExitOK, code)
	assert.Contains(t, stdout, "dev (none) unknown")
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
