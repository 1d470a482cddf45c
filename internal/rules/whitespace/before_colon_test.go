package whitespace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/colonlint/internal/lint"
	"github.com/donaldgifford/colonlint/internal/syntax"
)

// check parses src and runs the rule with option.
func check(t *testing.T, src string, option any) []lint.Failure {
	t.Helper()
	f, err := syntax.Parse("test.js", src)
	require.NoError(t, err)
	return (&BeforeColon{}).Apply(f, option)
}

// fix applies the failures' replacements to src.
func fix(src string, failures []lint.Failure) string {
	return lint.ApplyFixes(src, failures).Output
}

func TestResolvePolicy(t *testing.T) {
	tests := []struct {
		option any
		want   Policy
	}{
		{"nospace", PolicyNoSpace},
		{"onespace", PolicyOneSpace},
		{"space", PolicyAtLeastOneSpace},
		{"foo", PolicyDisabled},
		{"NoSpace", PolicyDisabled},
		{" space", PolicyDisabled},
		{"", PolicyDisabled},
		{nil, PolicyDisabled},
		{true, PolicyDisabled},
		{1, PolicyDisabled},
		{[]any{"space"}, PolicyDisabled},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolvePolicy(tt.option), "option %#v", tt.option)
	}
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "nospace", PolicyNoSpace.String())
	assert.Equal(t, "onespace", PolicyOneSpace.String())
	assert.Equal(t, "space", PolicyAtLeastOneSpace.String())
	assert.Equal(t, "disabled", PolicyDisabled.String())
}

func TestPolicyCorrectness(t *testing.T) {
	passes := map[string]func(n int) bool{
		"nospace":  func(n int) bool { return n == 0 },
		"onespace": func(n int) bool { return n == 1 },
		"space":    func(n int) bool { return n >= 1 },
	}

	for option, want := range passes {
		for _, n := range []int{0, 1, 2, 5} {
			for _, ws := range []string{" ", "\t"} {
				src := "x = {a" + strings.Repeat(ws, n) + ": 1}"
				failures := check(t, src, option)
				if want(n) {
					assert.Empty(t, failures, "%s with %d x %q", option, n, ws)
				} else {
					assert.Len(t, failures, 1, "%s with %d x %q", option, n, ws)
				}
			}
		}
	}
}

func TestDisabledOnUnknownOption(t *testing.T) {
	for _, option := range []any{"foo", "", nil, 3, "ONESPACE"} {
		for _, gap := range []string{"", " ", "   ", "\t \t"} {
			src := "x = {a" + gap + ": 1}; const {b" + gap + ": c} = d"
			assert.Empty(t, check(t, src, option), "option %#v gap %q", option, gap)
		}
	}
}

func TestNewlineExemption(t *testing.T) {
	gaps := []string{"\n", "\n  ", "  \n", "\r\n", "\t\n\t", "\u2028", " \u2029 "}
	for _, option := range []string{"nospace", "onespace", "space"} {
		for _, gap := range gaps {
			src := "x = {a" + gap + ": 1}"
			assert.Empty(t, check(t, src, option), "%s with gap %q", option, gap)
		}
	}
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name    string
		option  string
		src     string
		want    string // Empty means no failure.
		start   int
		length  int
		message string
	}{
		{
			name:    "two spaces onespace",
			option:  "onespace",
			src:     "x = {a  : 1}",
			want:    "x = {a : 1}",
			start:   6,
			length:  2,
			message: "expected onespace before colon",
		},
		{
			name:    "no space onespace",
			option:  "onespace",
			src:     "x = {a: 1}",
			want:    "x = {a : 1}",
			start:   6,
			length:  0,
			message: "expected onespace before colon",
		},
		{
			name:   "one space onespace",
			option: "onespace",
			src:    "x = {a : 1}",
		},
		{
			name:   "single tab onespace",
			option: "onespace",
			src:    "x = {a\t: 1}",
		},
		{
			name:    "two tabs onespace",
			option:  "onespace",
			src:     "x = {a\t\t: 1}",
			want:    "x = {a : 1}",
			start:   6,
			length:  2,
			message: "expected onespace before colon",
		},
		{
			name:   "newline onespace",
			option: "onespace",
			src:    "x = {a\n  : 1}",
		},
		{
			name:    "one space nospace",
			option:  "nospace",
			src:     "x = {a : 1}",
			want:    "x = {a: 1}",
			start:   6,
			length:  1,
			message: "expected nospace before colon",
		},
		{
			name:    "no space space",
			option:  "space",
			src:     "x = {a: 1}",
			want:    "x = {a : 1}",
			start:   6,
			length:  0,
			message: "expected space before colon",
		},
		{
			name:   "unrecognized option",
			option: "foo",
			src:    "x = {a   : 1}",
		},
		{
			name:    "binding element",
			option:  "nospace",
			src:     "const {a\t: b} = c",
			want:    "const {a: b} = c",
			start:   8,
			length:  1,
			message: "expected nospace before colon",
		},
		{
			name:    "computed key",
			option:  "onespace",
			src:     "x = {[k]   : 1}",
			want:    "x = {[k] : 1}",
			start:   8,
			length:  3,
			message: "expected onespace before colon",
		},
		{
			name:    "construct at file start",
			option:  "onespace",
			src:     "({a:1})",
			want:    "({a :1})",
			start:   3,
			length:  0,
			message: "expected onespace before colon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failures := check(t, tt.src, tt.option)
			if tt.want == "" {
				assert.Empty(t, failures)
				return
			}

			require.Len(t, failures, 1)
			f := failures[0]
			assert.Equal(t, tt.start, f.Start)
			assert.Equal(t, tt.length, f.End-f.Start)
			assert.Equal(t, tt.message, f.Message)
			require.NotNil(t, f.Fix)
			assert.Equal(t, tt.want, fix(tt.src, failures))
		})
	}
}

func TestCommentBoundary(t *testing.T) {
	// The run stops at the comment; only the leading spaces are measured.
	src := "x = {a  /* c */ : 1}"

	failures := check(t, src, "onespace")
	require.Len(t, failures, 1)
	assert.Equal(t, 6, failures[0].Start)
	assert.Equal(t, 8, failures[0].End)
	assert.Equal(t, "x = {a /* c */ : 1}", fix(src, failures))

	assert.Empty(t, check(t, "x = {a /* c */  : 1}", "onespace"))
	assert.Len(t, check(t, "x = {a/* c */ : 1}", "onespace"), 1)
}

func TestMeasureCountsCharacters(t *testing.T) {
	// A no-break space is one character but two bytes.
	src := "x = {a\u00a0: 1}"
	assert.Empty(t, check(t, src, "onespace"))

	failures := check(t, src, "nospace")
	require.Len(t, failures, 1)
	assert.Equal(t, 2, failures[0].End-failures[0].Start)
	assert.Equal(t, "x = {a: 1}", fix(src, failures))
}

func TestFixIsIdempotentAndMinimal(t *testing.T) {
	sources := []string{
		"x = {a: 1, b : 2, c  : 3, d\t: 4}",
		"const {a: b, c  : d, e} = f; let [g, {h :i}] = j",
		"x = {a: {b  : {c:1}}, [d]  : 2, 'e':3}",
		"x = {a /* c */: 1, b  // c\n: 2}",
	}

	for _, option := range []string{"nospace", "onespace", "space"} {
		for _, src := range sources {
			failures := check(t, src, option)
			for _, f := range failures {
				// The replaced range is whitespace only.
				assert.Empty(t, strings.TrimSpace(src[f.Fix.Start:f.Fix.End]), "%s: %q", option, src)
				assert.Equal(t, f.Start, f.Fix.Start)
				assert.Equal(t, f.End, f.Fix.End)
			}

			fixed := fix(src, failures)
			assert.Empty(t, check(t, fixed, option), "%s: re-check of %q", option, fixed)
		}
	}
}

func TestCheckColonSkipsNodesWithoutColon(t *testing.T) {
	n := &syntax.Node{
		Kind:     syntax.KindBindingElement,
		Children: []syntax.Token{{Kind: syntax.TokenValue, Pos: 0, End: 1}},
	}
	_, ok := CheckColon(n, "a", PolicyNoSpace)
	assert.False(t, ok)
}

func TestCheckColonSkipsOtherKinds(t *testing.T) {
	n := &syntax.Node{
		Kind:     syntax.Kind(99),
		Children: []syntax.Token{{Kind: syntax.TokenColon, Pos: 0, End: 2}},
	}
	_, ok := CheckColon(n, " :", PolicyNoSpace)
	assert.False(t, ok)
}

func TestCheckColonDisabled(t *testing.T) {
	n := &syntax.Node{
		Kind:     syntax.KindPropertyAssignment,
		Children: []syntax.Token{{Kind: syntax.TokenColon, Pos: 0, End: 4}},
	}
	_, ok := CheckColon(n, "   :", PolicyDisabled)
	assert.False(t, ok)

	f, ok := CheckColon(n, "   :", PolicyOneSpace)
	require.True(t, ok)
	assert.Equal(t, " ", f.Fix.Text)
}

func TestValidateOption(t *testing.T) {
	r := &BeforeColon{}
	for _, option := range r.Options() {
		assert.NoError(t, r.ValidateOption(option))
	}
	err := r.ValidateOption("foo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized option foo")
}

func TestRuleMetadata(t *testing.T) {
	r := &BeforeColon{}
	assert.Equal(t, "whitespace-before-colon", r.Name())
	assert.NotEmpty(t, r.Description())
	assert.True(t, r.HasFix())
	assert.Contains(t, r.Rationale(), "object literal keys and destructuring bindings")

	var _ lint.Rule = r
	var _ lint.Documenter = r
	var _ lint.OptionValidator = r
	var _ lint.Fixer = r
}
