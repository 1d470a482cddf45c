package whitespace

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/donaldgifford/colonlint/internal/lint"
	"github.com/donaldgifford/colonlint/internal/syntax"
)

// BeforeColonName is the config key of the BeforeColon rule.
const BeforeColonName = "whitespace-before-colon"

// BeforeColon enforces whitespace before the colon of object literal
// properties and destructuring bindings. A gap containing a line break is
// always accepted.
type BeforeColon struct{}

// Name returns the config key for this rule.
func (*BeforeColon) Name() string {
	return BeforeColonName
}

// Description returns a one-line summary of the rule.
func (*BeforeColon) Description() string {
	return "require or forbid whitespace before the colon in object literals and destructuring"
}

// Rationale explains what the rule covers that related checks do not.
func (*BeforeColon) Rationale() string {
	return "Whitespace checks that look after a colon, or only at type annotations, " +
		"leave the gap before the colon of object literal keys and destructuring " +
		"bindings unchecked. This rule makes that gap consistent."
}

// Options returns the accepted option values.
func (*BeforeColon) Options() []string {
	return []string{OptionNoSpace, OptionOneSpace, OptionSpace}
}

// HasFix reports that every failure carries a replacement.
func (*BeforeColon) HasFix() bool {
	return true
}

// ValidateOption returns an error for options that disable the rule.
func (*BeforeColon) ValidateOption(option any) error {
	if ResolvePolicy(option) == PolicyDisabled {
		return fmt.Errorf("%s: unrecognized option %v, want one of %q, %q, %q",
			BeforeColonName, option, OptionNoSpace, OptionOneSpace, OptionSpace)
	}
	return nil
}

// Apply resolves the option once and checks every construct of file.
func (*BeforeColon) Apply(file *syntax.File, option any) []lint.Failure {
	policy := ResolvePolicy(option)
	if policy == PolicyDisabled {
		return nil
	}

	var failures []lint.Failure
	for _, n := range file.Nodes {
		if f, ok := CheckColon(n, file.Source, policy); ok {
			failures = append(failures, f)
		}
	}
	return failures
}

// colonSite is the gap between the end of the token before a colon and the
// end of the colon itself.
type colonSite struct {
	start int
	end   int
	text  string
}

// whitespaceRun is the whitespace at the start of a colon site.
type whitespaceRun struct {
	text      string
	length    int // In characters.
	lineBreak bool
}

// CheckColon checks the whitespace before the colon of n against policy.
// It reports at most one failure; constructs of other kinds or without a
// colon are skipped.
func CheckColon(n *syntax.Node, src string, policy Policy) (lint.Failure, bool) {
	switch n.Kind {
	case syntax.KindPropertyAssignment, syntax.KindBindingElement:
	default:
		return lint.Failure{}, false
	}

	site, ok := locateColon(n, src)
	if !ok {
		return lint.Failure{}, false
	}

	run := measure(site)
	if run.lineBreak || policy == PolicyDisabled {
		return lint.Failure{}, false
	}
	if policy == PolicyAtLeastOneSpace && run.length > 0 {
		return lint.Failure{}, false
	}

	required := policy.requiredLength()
	if run.length == required {
		return lint.Failure{}, false
	}

	end := site.start + len(run.text)
	return lint.Failure{
		Start:   site.start,
		End:     end,
		Message: fmt.Sprintf("expected %s before colon", policy),
		Fix: &lint.Replacement{
			Start: site.start,
			End:   end,
			Text:  strings.Repeat(" ", required),
		},
	}, true
}

func locateColon(n *syntax.Node, src string) (colonSite, bool) {
	tok, ok := n.Colon()
	if !ok || tok.Pos < 0 || tok.Pos > tok.End || tok.End > len(src) {
		return colonSite{}, false
	}
	return colonSite{start: tok.Pos, end: tok.End, text: src[tok.Pos:tok.End]}, true
}

// measure matches the longest leading whitespace run of the site. It stops
// at the first non-whitespace character, so a comment ends the run.
func measure(site colonSite) whitespaceRun {
	var run whitespaceRun
	i := 0
	for i < len(site.text) {
		r, size := utf8.DecodeRuneInString(site.text[i:])
		if !syntax.IsWhitespace(r) {
			break
		}
		if syntax.IsLineBreak(r) {
			run.lineBreak = true
		}
		run.length++
		i += size
	}
	run.text = site.text[:i]
	return run
}
