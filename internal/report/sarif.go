package report

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/donaldgifford/colonlint/internal/lint"
)

const (
	toolName       = "colonlint"
	informationURI = "https://github.com/donaldgifford/colonlint"
)

// SARIFFormatter writes a SARIF 2.1.0 log with a single run.
type SARIFFormatter struct {
	// Rules are emitted as rule descriptors, in order, before any result.
	Rules []lint.Rule
}

// Format implements Formatter.
func (f *SARIFFormatter) Format(w io.Writer, failures []lint.Failure) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("creating SARIF report: %w", err)
	}

	// Failure columns count code points, not UTF-16 units.
	run := sarif.NewRunWithInformationURI(toolName, informationURI).
		WithColumnKind("unicodeCodePoints")
	for _, r := range f.Rules {
		rule := run.AddRule(r.Name()).
			WithDescription(r.Description()).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{
				Level: sarifLevel(lint.SeverityError),
			})
		if d, ok := r.(lint.Documenter); ok {
			rule.WithFullDescription(sarif.NewMultiformatMessageString(d.Rationale()))
		}
	}

	for _, fl := range failures {
		run.AddRule(fl.Rule)

		artifact := sarif.NewArtifactLocation().WithUri(fl.File)
		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(artifact).
				WithRegion(region(fl.Start, fl.End).
					WithStartLine(fl.Pos.Line).
					WithStartColumn(fl.Pos.Column).
					WithEndLine(fl.EndPos.Line).
					WithEndColumn(fl.EndPos.Column)),
		)

		result := sarif.NewRuleResult(fl.Rule).
			WithMessage(sarif.NewTextMessage(fl.Message)).
			WithLevel(sarifLevel(fl.Severity)).
			WithLocations([]*sarif.Location{location})

		if fl.Fix != nil {
			change := sarif.NewArtifactChange(sarif.NewArtifactLocation().WithUri(fl.File)).
				WithReplacement(sarif.NewReplacement(region(fl.Fix.Start, fl.Fix.End)).
					WithInsertedContent(sarif.NewArtifactContent().WithText(fl.Fix.Text)))
			result.AddFix(sarif.NewFix().
				WithDescriptionText(fl.Message).
				WithArtifactChanges([]*sarif.ArtifactChange{change}))
		}

		run.AddResult(result)
	}

	report.AddRun(run)
	return report.PrettyWrite(w)
}

// region returns a byte-addressed region for [start, end).
func region(start, end int) *sarif.Region {
	return sarif.NewRegion().WithByteOffset(start).WithByteLength(end - start)
}

func sarifLevel(s lint.Severity) string {
	switch s {
	case lint.SeverityWarning:
		return "warning"
	default:
		return "error"
	}
}
