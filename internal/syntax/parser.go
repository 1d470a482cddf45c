package syntax

import (
	"fmt"

	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/file"
	"github.com/dop251/goja/parser"
)

// Parse converts JavaScript source into a File listing every property
// assignment and binding element in pre-order.
func Parse(name, src string) (*File, error) {
	program, err := parser.ParseFile(nil, name, src, 0, parser.WithDisableSourceMaps)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	f := NewFile(name, src)

	base := 1
	if program.File != nil {
		base = program.File.Base()
	}

	b := &builder{src: src, base: base, file: f}
	for _, stmt := range program.Body {
		b.walk(stmt)
	}

	return f, nil
}

// builder walks the goja AST and records eligible constructs.
type builder struct {
	src  string
	base int
	file *File
}

// offset converts a goja index into a byte offset into src.
func (b *builder) offset(idx file.Idx) int {
	off := int(idx) - b.base
	if off < 0 {
		return 0
	}
	if off > len(b.src) {
		return len(b.src)
	}
	return off
}

// keyed records a key: value property of kind value.
func (b *builder) keyed(p *ast.PropertyKeyed, kind Kind) {
	n := &Node{
		Kind: kind,
		Pos:  b.offset(p.Key.Idx0()),
		End:  b.offset(p.Idx1()),
	}

	keyEnd := b.offset(p.Key.Idx1())
	prevEnd, colon, ok := findColon(b.src, keyEnd)
	if ok {
		n.Children = []Token{
			{Kind: TokenKey, Pos: n.Pos, End: prevEnd},
			{Kind: TokenColon, Pos: prevEnd, End: colon + 1},
			{Kind: TokenValue, Pos: colon + 1, End: n.End},
		}
	} else {
		n.Children = []Token{{Kind: TokenKey, Pos: n.Pos, End: keyEnd}}
	}

	b.file.Nodes = append(b.file.Nodes, n)
}

// element records a binding element that has no colon.
func (b *builder) element(e ast.Node) {
	n := &Node{
		Kind: KindBindingElement,
		Pos:  b.offset(e.Idx0()),
		End:  b.offset(e.Idx1()),
	}
	n.Children = []Token{{Kind: TokenValue, Pos: n.Pos, End: n.End}}
	b.file.Nodes = append(b.file.Nodes, n)
}

// properties records and descends into the properties of an object literal
// or object pattern.
func (b *builder) properties(props []ast.Property, kind Kind) {
	for _, prop := range props {
		switch p := prop.(type) {
		case *ast.PropertyKeyed:
			if p.Kind == ast.PropertyKindValue {
				b.keyed(p, kind)
			}
			b.walk(p.Key)
			b.walk(p.Value)

		case *ast.PropertyShort:
			if kind == KindBindingElement {
				b.element(p)
			}
			b.walk(p.Initializer)

		case *ast.SpreadElement:
			b.walk(p.Expression)
		}
	}
}
