package runner

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/moby/patternmatcher"

	"github.com/donaldgifford/colonlint/internal/config"
)

// target is one unit of work: a file on disk or stdin.
type target struct {
	name  string
	stdin bool
}

func hasStdin(targets []target) bool {
	return slices.ContainsFunc(targets, func(t target) bool { return t.stdin })
}

// expandPaths turns command-line paths into targets in argument order.
// Directories are walked for files with a configured extension, skipping
// paths that match an exclude pattern relative to the walked directory.
// Explicitly named files are always linted. Paths that
// cannot be read are logged and yield ExitError.
func expandPaths(paths []string, lc *config.LintConfig, log hclog.Logger) ([]target, int) {
	if len(paths) == 0 {
		return []target{{name: StdinName, stdin: true}}, ExitOK
	}

	pm, err := patternmatcher.New(lc.Exclude)
	if err != nil {
		log.Error("invalid exclude pattern", "error", err)
		return nil, ExitError
	}

	var (
		targets  []target
		exitCode = ExitOK
		seen     = map[string]bool{}
	)

	add := func(t target) {
		if seen[t.name] {
			return
		}
		seen[t.name] = true
		targets = append(targets, t)
	}

	for _, p := range paths {
		if p == "-" {
			add(target{name: StdinName, stdin: true})
			continue
		}

		info, err := os.Stat(p)
		if err != nil {
			log.Error("reading path", "path", p, "error", err)
			exitCode = ExitError
			continue
		}

		if !info.IsDir() {
			add(target{name: p})
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			rel, err := filepath.Rel(p, path)
			if err != nil || rel == "." {
				return err
			}

			excluded, err := pm.MatchesOrParentMatches(filepath.ToSlash(rel))
			if err != nil {
				return err
			}
			if excluded {
				log.Debug("excluded", "path", path)
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.IsDir() && slices.Contains(lc.Extensions, filepath.Ext(path)) {
				add(target{name: path})
			}
			return nil
		})
		if err != nil {
			log.Error("walking directory", "path", p, "error", err)
			exitCode = ExitError
		}
	}

	return targets, exitCode
}
