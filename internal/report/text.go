package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/donaldgifford/colonlint/internal/lint"
)

// TextFormatter writes one tab-separated line per failure followed by a
// summary. It writes nothing when there are no failures.
type TextFormatter struct{}

// Format implements Formatter.
func (f *TextFormatter) Format(w io.Writer, failures []lint.Failure) error {
	if len(failures) == 0 {
		return nil
	}

	var sb strings.Builder
	for _, fl := range failures {
		fixable := ""
		if fl.HasFix() {
			fixable = " [fixable]"
		}
		fmt.Fprintf(&sb, "%s:%d:%d\t%s\t%s\t%s%s\n",
			fl.File, fl.Pos.Line, fl.Pos.Column, fl.Severity, fl.Rule, fl.Message, fixable)
	}

	errs, warnings := lint.Count(failures)
	fmt.Fprintf(&sb, "\n%d problems (%d errors, %d warnings)\n", len(failures), errs, warnings)

	_, err := io.WriteString(w, sb.String())
	return err
}
