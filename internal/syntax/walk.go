package syntax

import "github.com/dop251/goja/ast"

// walk visits n and its descendants in pre-order. Object literals and
// patterns record their constructs before their children are visited.
func (b *builder) walk(n ast.Node) {
	if n == nil {
		return
	}

	switch n := n.(type) {
	// Constructs.
	case *ast.ObjectLiteral:
		b.properties(n.Value, KindPropertyAssignment)

	case *ast.ObjectPattern:
		b.properties(n.Properties, KindBindingElement)
		if n.Rest != nil {
			b.element(n.Rest)
			b.walk(n.Rest)
		}

	case *ast.ArrayPattern:
		for _, e := range n.Elements {
			if e == nil {
				continue
			}
			b.element(e)
			b.walk(e)
		}
		if n.Rest != nil {
			b.element(n.Rest)
			b.walk(n.Rest)
		}

	// Expressions.
	case *ast.ArrayLiteral:
		b.walkExprs(n.Value)

	case *ast.AssignExpression:
		b.walk(n.Left)
		b.walk(n.Right)

	case *ast.AwaitExpression:
		b.walk(n.Argument)

	case *ast.BinaryExpression:
		b.walk(n.Left)
		b.walk(n.Right)

	case *ast.Binding:
		b.walk(n.Target)
		b.walk(n.Initializer)

	case *ast.BracketExpression:
		b.walk(n.Left)
		b.walk(n.Member)

	case *ast.CallExpression:
		b.walk(n.Callee)
		b.walkExprs(n.ArgumentList)

	case *ast.ClassLiteral:
		b.walk(n.SuperClass)
		for _, el := range n.Body {
			b.walk(el)
		}

	case *ast.ConditionalExpression:
		b.walk(n.Test)
		b.walk(n.Consequent)
		b.walk(n.Alternate)

	case *ast.DotExpression:
		b.walk(n.Left)

	case *ast.PrivateDotExpression:
		b.walk(n.Left)

	case *ast.FunctionLiteral:
		b.function(n)

	case *ast.ArrowFunctionLiteral:
		if n.ParameterList != nil {
			b.walk(n.ParameterList)
		}
		b.walk(n.Body)

	case *ast.ExpressionBody:
		b.walk(n.Expression)

	case *ast.NewExpression:
		b.walk(n.Callee)
		b.walkExprs(n.ArgumentList)

	case *ast.ParameterList:
		for _, p := range n.List {
			b.walk(p)
		}
		b.walk(n.Rest)

	case *ast.SequenceExpression:
		b.walkExprs(n.Sequence)

	case *ast.SpreadElement:
		b.walk(n.Expression)

	case *ast.TemplateLiteral:
		b.walk(n.Tag)
		b.walkExprs(n.Expressions)

	case *ast.UnaryExpression:
		b.walk(n.Operand)

	case *ast.YieldExpression:
		b.walk(n.Argument)

	case *ast.OptionalChain:
		b.walk(n.Expression)

	case *ast.Optional:
		b.walk(n.Expression)

	// Statements.
	case *ast.BlockStatement:
		b.walkStmts(n.List)

	case *ast.CaseStatement:
		b.walk(n.Test)
		b.walkStmts(n.Consequent)

	case *ast.CatchStatement:
		b.walk(n.Parameter)
		if n.Body != nil {
			b.walk(n.Body)
		}

	case *ast.DoWhileStatement:
		b.walk(n.Body)
		b.walk(n.Test)

	case *ast.ExpressionStatement:
		b.walk(n.Expression)

	case *ast.ForInStatement:
		b.walk(n.Into)
		b.walk(n.Source)
		b.walk(n.Body)

	case *ast.ForOfStatement:
		b.walk(n.Into)
		b.walk(n.Source)
		b.walk(n.Body)

	case *ast.ForStatement:
		b.walk(n.Initializer)
		b.walk(n.Test)
		b.walk(n.Update)
		b.walk(n.Body)

	case *ast.IfStatement:
		b.walk(n.Test)
		b.walk(n.Consequent)
		b.walk(n.Alternate)

	case *ast.LabelledStatement:
		b.walk(n.Statement)

	case *ast.ReturnStatement:
		b.walk(n.Argument)

	case *ast.SwitchStatement:
		b.walk(n.Discriminant)
		for _, c := range n.Body {
			if c != nil {
				b.walk(c)
			}
		}

	case *ast.ThrowStatement:
		b.walk(n.Argument)

	case *ast.TryStatement:
		if n.Body != nil {
			b.walk(n.Body)
		}
		if n.Catch != nil {
			b.walk(n.Catch)
		}
		if n.Finally != nil {
			b.walk(n.Finally)
		}

	case *ast.VariableStatement:
		b.walkBindings(n.List)

	case *ast.LexicalDeclaration:
		b.walkBindings(n.List)

	case *ast.WhileStatement:
		b.walk(n.Test)
		b.walk(n.Body)

	case *ast.WithStatement:
		b.walk(n.Object)
		b.walk(n.Body)

	case *ast.FunctionDeclaration:
		if n.Function != nil {
			b.function(n.Function)
		}

	case *ast.ClassDeclaration:
		if n.Class != nil {
			b.walk(n.Class)
		}

	// Class elements.
	case *ast.FieldDefinition:
		b.walk(n.Key)
		b.walk(n.Initializer)

	case *ast.MethodDefinition:
		b.walk(n.Key)
		if n.Body != nil {
			b.function(n.Body)
		}

	case *ast.ClassStaticBlock:
		if n.Block != nil {
			b.walk(n.Block)
		}

	// Loop heads.
	case *ast.ForLoopInitializerExpression:
		b.walk(n.Expression)

	case *ast.ForLoopInitializerVarDeclList:
		b.walkBindings(n.List)

	case *ast.ForLoopInitializerLexicalDecl:
		b.walkBindings(n.LexicalDeclaration.List)

	case *ast.ForIntoVar:
		if n.Binding != nil {
			b.walk(n.Binding)
		}

	case *ast.ForDeclaration:
		b.walk(n.Target)

	case *ast.ForIntoExpression:
		b.walk(n.Expression)
	}
}

func (b *builder) function(fn *ast.FunctionLiteral) {
	if fn.ParameterList != nil {
		b.walk(fn.ParameterList)
	}
	if fn.Body != nil {
		b.walk(fn.Body)
	}
}

func (b *builder) walkExprs(list []ast.Expression) {
	for _, e := range list {
		b.walk(e)
	}
}

func (b *builder) walkStmts(list []ast.Statement) {
	for _, s := range list {
		b.walk(s)
	}
}

func (b *builder) walkBindings(list []*ast.Binding) {
	for _, bd := range list {
		if bd != nil {
			b.walk(bd)
		}
	}
}
