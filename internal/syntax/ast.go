// Package syntax parses JavaScript source and exposes the colon-bearing
// constructs that style rules inspect.
package syntax

import (
	"sort"
	"unicode/utf8"
)

// Kind classifies a construct eligible for colon inspection.
type Kind int

const (
	// KindPropertyAssignment is an object literal property (key: value).
	KindPropertyAssignment Kind = iota
	// KindBindingElement is an element of an object or array destructuring
	// pattern ({key: binding}, {key}, [a, b]).
	KindBindingElement
)

func (k Kind) String() string {
	switch k {
	case KindPropertyAssignment:
		return "PropertyAssignment"
	case KindBindingElement:
		return "BindingElement"
	default:
		return "Unknown"
	}
}

// TokenKind classifies an immediate child of a Node.
type TokenKind int

const (
	// TokenKey is the property name, including brackets of a computed key.
	TokenKey TokenKind = iota
	// TokenColon is the ':' separating a key from its value or binding.
	TokenColon
	// TokenValue is the value or binding target after the colon.
	TokenValue
)

// Token is a child of a Node. Pos is the end of the previous token, so the
// range [Pos, End) includes any leading whitespace and comments.
type Token struct {
	Kind TokenKind
	Pos  int
	End  int
}

// Node is a single construct. Offsets are byte offsets into File.Source.
type Node struct {
	Kind     Kind
	Pos      int
	End      int
	Children []Token
}

// Colon returns the colon child token, if the construct has one.
func (n *Node) Colon() (Token, bool) {
	for _, t := range n.Children {
		if t.Kind == TokenColon {
			return t, true
		}
	}
	return Token{}, false
}

// Position is a 1-indexed line and column. Columns count characters, not
// bytes.
type Position struct {
	Line   int
	Column int
}

// File is a parsed source file. Nodes are in pre-order traversal order.
type File struct {
	Name   string
	Source string
	Nodes  []*Node

	lineStarts []int
}

// NewFile returns a File with no nodes for the given source.
func NewFile(name, src string) *File {
	f := &File{Name: name, Source: src, lineStarts: []int{0}}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
	return f
}

// Position converts a byte offset into a line and column. Offsets outside
// the source are clamped.
func (f *File) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.Source) {
		offset = len(f.Source)
	}
	if len(f.lineStarts) == 0 {
		return Position{Line: 1, Column: utf8.RuneCountInString(f.Source[:offset]) + 1}
	}

	line := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	}) - 1
	start := f.lineStarts[line]

	return Position{
		Line:   line + 1,
		Column: utf8.RuneCountInString(f.Source[start:offset]) + 1,
	}
}
