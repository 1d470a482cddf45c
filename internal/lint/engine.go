package lint

import (
	"sort"

	"github.com/donaldgifford/colonlint/internal/syntax"
)

// Setting is a rule enabled for a run, with its severity and raw option.
type Setting struct {
	Rule     Rule
	Severity Severity
	Option   any
}

// Run applies each enabled rule to file and returns the merged failures,
// ordered by offset and then by rule name.
func Run(file *syntax.File, settings []Setting) []Failure {
	var failures []Failure
	for _, s := range settings {
		severity := s.Severity
		if severity == "" {
			severity = SeverityError
		}

		for _, f := range s.Rule.Apply(file, s.Option) {
			f.Rule = s.Rule.Name()
			f.Severity = severity
			f.File = file.Name
			f.Pos = file.Position(f.Start)
			f.EndPos = file.Position(f.End)
			failures = append(failures, f)
		}
	}

	sort.SliceStable(failures, func(i, j int) bool {
		if failures[i].Start != failures[j].Start {
			return failures[i].Start < failures[j].Start
		}
		return failures[i].Rule < failures[j].Rule
	})

	return failures
}

// Count returns the number of error and warning failures.
func Count(failures []Failure) (errs, warnings int) {
	for _, f := range failures {
		switch f.Severity {
		case SeverityError:
			errs++
		case SeverityWarning:
			warnings++
		}
	}
	return errs, warnings
}
