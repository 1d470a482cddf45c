// Package report renders lint failures as text, JSON or SARIF.
package report

import (
	"fmt"
	"io"

	"github.com/donaldgifford/colonlint/internal/lint"
)

// Formatter writes failures to w.
type Formatter interface {
	Format(w io.Writer, failures []lint.Failure) error
}

// Formats lists the accepted formatter names.
var Formats = []string{"text", "json", "sarif"}

// New returns the formatter registered under name. rules supplies the
// descriptors that SARIF output embeds.
func New(name string, rules []lint.Rule) (Formatter, error) {
	switch name {
	case "", "text":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "sarif":
		return &SARIFFormatter{Rules: rules}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text, json or sarif)", name)
	}
}
