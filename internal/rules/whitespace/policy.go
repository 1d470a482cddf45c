// Package whitespace holds rules that enforce whitespace around tokens.
package whitespace

// Policy is the amount of whitespace required before a colon.
type Policy int

const (
	// PolicyDisabled checks nothing. It is the result of an absent or
	// unrecognized option.
	PolicyDisabled Policy = iota
	// PolicyNoSpace requires no whitespace.
	PolicyNoSpace
	// PolicyOneSpace requires exactly one whitespace character.
	PolicyOneSpace
	// PolicyAtLeastOneSpace requires one or more whitespace characters.
	PolicyAtLeastOneSpace
)

// Option values accepted in config.
const (
	OptionNoSpace  = "nospace"
	OptionOneSpace = "onespace"
	OptionSpace    = "space"
)

// ResolvePolicy maps a raw rule option to a Policy. Only the exact strings
// "nospace", "onespace" and "space" are recognized.
func ResolvePolicy(option any) Policy {
	s, ok := option.(string)
	if !ok {
		return PolicyDisabled
	}

	switch s {
	case OptionNoSpace:
		return PolicyNoSpace
	case OptionOneSpace:
		return PolicyOneSpace
	case OptionSpace:
		return PolicyAtLeastOneSpace
	default:
		return PolicyDisabled
	}
}

// String returns the option name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyNoSpace:
		return OptionNoSpace
	case PolicyOneSpace:
		return OptionOneSpace
	case PolicyAtLeastOneSpace:
		return OptionSpace
	default:
		return "disabled"
	}
}

// requiredLength is the whitespace length a fix produces.
func (p Policy) requiredLength() int {
	if p == PolicyNoSpace {
		return 0
	}
	return 1
}
