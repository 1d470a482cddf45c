package lint

import (
	"sort"
	"strings"
)

// FixResult reports what ApplyFixes did.
type FixResult struct {
	Output  string
	Applied []Failure
	// Skipped holds failures whose replacement overlapped one already
	// applied. Re-linting Output reports them again if still relevant.
	Skipped []Failure
}

// ApplyFixes applies the replacements of failures to src in offset order.
// A replacement that overlaps an earlier one, or inserts at the same
// offset as an earlier insertion, is skipped. src is not modified.
func ApplyFixes(src string, failures []Failure) FixResult {
	var fixable []Failure
	for _, f := range failures {
		if f.Fix != nil && f.Fix.Start >= 0 && f.Fix.Start <= f.Fix.End && f.Fix.End <= len(src) {
			fixable = append(fixable, f)
		}
	}

	sort.SliceStable(fixable, func(i, j int) bool {
		if fixable[i].Fix.Start != fixable[j].Fix.Start {
			return fixable[i].Fix.Start < fixable[j].Fix.Start
		}
		return fixable[i].Fix.End < fixable[j].Fix.End
	})

	var (
		b      strings.Builder
		result FixResult
		last   = 0
		prev   *Replacement
	)

	for _, f := range fixable {
		r := f.Fix
		if prev != nil && conflicts(prev, r) {
			result.Skipped = append(result.Skipped, f)
			continue
		}

		b.WriteString(src[last:r.Start])
		b.WriteString(r.Text)
		last = r.End
		prev = r
		result.Applied = append(result.Applied, f)
	}

	b.WriteString(src[last:])
	result.Output = b.String()

	return result
}

// conflicts reports whether r cannot be applied after prev.
func conflicts(prev, r *Replacement) bool {
	if r.Start < prev.End {
		return true
	}
	// Two insertions at one offset have no defined order.
	return r.Start == prev.Start && r.Start == r.End && prev.Start == prev.End
}
