package report

import (
	"encoding/json"
	"io"

	"github.com/donaldgifford/colonlint/internal/lint"
)

// JSONFormatter writes failures as a single indented JSON document.
type JSONFormatter struct{}

type jsonOutput struct {
	Results []jsonResult `json:"results"`
	Summary jsonSummary  `json:"summary"`
}

type jsonResult struct {
	File     string       `json:"file"`
	Rule     string       `json:"rule"`
	Severity string       `json:"severity"`
	Message  string       `json:"message"`
	Location jsonLocation `json:"location"`
	Fix      *jsonFix     `json:"fix,omitempty"`
}

type jsonLocation struct {
	Line      int `json:"line"`
	Column    int `json:"column"`
	EndLine   int `json:"endLine"`
	EndColumn int `json:"endColumn"`
	Offset    int `json:"offset"`
	Length    int `json:"length"`
}

type jsonFix struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

type jsonSummary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Fixable  int `json:"fixable"`
}

// Format implements Formatter.
func (f *JSONFormatter) Format(w io.Writer, failures []lint.Failure) error {
	output := jsonOutput{
		Results: make([]jsonResult, 0, len(failures)),
	}

	for _, fl := range failures {
		result := jsonResult{
			File:     fl.File,
			Rule:     fl.Rule,
			Severity: string(fl.Severity),
			Message:  fl.Message,
			Location: jsonLocation{
				Line:      fl.Pos.Line,
				Column:    fl.Pos.Column,
				EndLine:   fl.EndPos.Line,
				EndColumn: fl.EndPos.Column,
				Offset:    fl.Start,
				Length:    fl.End - fl.Start,
			},
		}
		if fl.Fix != nil {
			result.Fix = &jsonFix{Start: fl.Fix.Start, End: fl.Fix.End, Text: fl.Fix.Text}
			output.Summary.Fixable++
		}
		output.Results = append(output.Results, result)
	}

	output.Summary.Total = len(failures)
	output.Summary.Errors, output.Summary.Warnings = lint.Count(failures)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
