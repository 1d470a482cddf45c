package syntax

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsWhitespace reports whether r is JavaScript white space or a line
// terminator, i.e. anything the regular expression class \s matches.
func IsWhitespace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// IsLineBreak reports whether r is a JavaScript line terminator.
func IsLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return false
}

const lineTerminators = "\n\r\u2028\u2029"

// findColon scans src forward from the end of a property key to the colon
// that separates it from its value. Whitespace and comments are trivia;
// closing brackets and parentheses of a computed key are tokens. It returns
// the end of the last token before the colon and the colon offset. Any
// other character before the colon means the construct has no colon.
func findColon(src string, from int) (prevEnd, colon int, ok bool) {
	if from < 0 || from > len(src) {
		return 0, 0, false
	}

	prevEnd = from
	for i := from; i < len(src); {
		switch c := src[i]; {
		case c == ':':
			return prevEnd, i, true

		case c == ']' || c == ')':
			i++
			prevEnd = i

		case strings.HasPrefix(src[i:], "//"):
			end := strings.IndexAny(src[i:], lineTerminators)
			if end < 0 {
				return 0, 0, false
			}
			i += end

		case strings.HasPrefix(src[i:], "/*"):
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return 0, 0, false
			}
			i += 2 + end + 2

		default:
			r, size := utf8.DecodeRuneInString(src[i:])
			if !IsWhitespace(r) {
				return 0, 0, false
			}
			i += size
		}
	}

	return 0, 0, false
}
