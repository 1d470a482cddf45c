// Package lint provides the rule interface, the lint engine, and the fix
// applier.
package lint

import "github.com/donaldgifford/colonlint/internal/syntax"

// Rule inspects the constructs of a parsed file.
type Rule interface {
	// Name returns the config key for this rule (e.g., "whitespace-before-colon").
	Name() string

	// Description returns a one-line summary of what the rule checks.
	Description() string

	// Options returns the option values the rule recognizes.
	Options() []string

	// Apply checks every construct of file against the raw config option
	// and returns the failures found. Implementations must not retain or
	// mutate file.
	Apply(file *syntax.File, option any) []Failure
}

// OptionValidator is implemented by rules that can tell whether an option
// value is meaningful to them.
type OptionValidator interface {
	ValidateOption(option any) error
}

// Documenter is implemented by rules that explain why they exist.
type Documenter interface {
	Rationale() string
}

// Fixer is implemented by rules whose failures carry replacements.
type Fixer interface {
	HasFix() bool
}
