// Package diff provides unified diff generation.
package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// contextLines is the number of unchanged lines shown around each hunk.
const contextLines = 3

// Unified generates a unified diff between oldText and newText.
// Returns an empty string if the inputs are identical.
func Unified(filename, oldText, newText string) string {
	if oldText == newText {
		return ""
	}

	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(oldText),
		B:        splitLines(newText),
		FromFile: "a/" + filename,
		ToFile:   "b/" + filename,
		Context:  contextLines,
	})
	if err != nil {
		// Writes go to a strings.Builder and cannot fail.
		return ""
	}
	return out
}

// splitLines splits text into newline-terminated lines. A final line
// without a newline gets one so hunks stay line-aligned. An empty string
// produces zero lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	// SplitAfter leaves an empty trailing element when s ends with \n.
	if lines[len(lines)-1] == "" {
		return lines[:len(lines)-1]
	}
	lines[len(lines)-1] += "\n"
	return lines
}
