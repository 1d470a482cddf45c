package lint

import (
	"fmt"

	"github.com/donaldgifford/colonlint/internal/syntax"
)

// Severity is the importance of a failure.
type Severity string

// Severity levels.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Replacement substitutes the byte range [Start, End) of the source with Text.
type Replacement struct {
	Start int
	End   int
	Text  string
}

// Failure is a single lint finding. Rules fill in Rule, Start, End, Message
// and Fix; the engine stamps File, Severity and the positions.
type Failure struct {
	Rule     string
	Severity Severity
	File     string

	// Start and End are byte offsets; End equals Start for an empty range.
	Start int
	End   int

	Pos    syntax.Position
	EndPos syntax.Position

	Message string
	Fix     *Replacement
}

// HasFix reports whether the failure carries a replacement.
func (f Failure) HasFix() bool {
	return f.Fix != nil
}

// String renders the failure as path:line:col: message (rule).
func (f Failure) String() string {
	return fmt.Sprintf("%s:%d:%d: %s (%s)", f.File, f.Pos.Line, f.Pos.Column, f.Message, f.Rule)
}
