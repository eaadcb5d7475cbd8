package ir

import (
	"fmt"
	"strings"
)

func ExprString(expr Expr) string {
	ctx := newShowContext()
	ctx.showExprWalker(expr, 0)
	return ctx.String()
}

func PatternString(p Pattern) string {
	ctx := newShowContext()
	ctx.showPattern(p)
	return ctx.String()
}

func DeclarationString(decl Declaration) string {
	ctx := newShowContext()
	ctx.showDeclaration(decl)
	return ctx.String()
}

type showContext struct {
	*strings.Builder
	indent    int
	indentStr string
}

func newShowContext() *showContext {
	return &showContext{
		Builder:   &strings.Builder{},
		indentStr: "  ",
		indent:    0,
	}
}

func (ctx *showContext) currentIndent() string {
	return strings.Repeat(ctx.indentStr, ctx.indent)
}

func (ctx *showContext) newline() {
	ctx.WriteString("\n")
	ctx.WriteString(ctx.currentIndent())
}

// showExprWalker prints to ctx
//
// precedences are as follows:
// 0: can be shown on its own
// 1-10: can be shown outside of arithmetic ops (like x => X)
// 20: binary operators
// 30: unary operators
// 40: application and record access
func (ctx *showContext) showExprWalker(expr Expr, outerPrecedence int16) {
	if expr == nil {
		ctx.WriteString("nil")
		return
	}
	switch expr := expr.(type) {
	case *Literal:
		ctx.WriteString(expr.Value.Syntax())
	case *Var:
		ctx.WriteString(expr.Name)
	case *Let:
		ctx.parensIf(outerPrecedence > 0, func() {
			ctx.WriteString("let ")
			if expr.Mutable {
				ctx.WriteString("mut ")
			}
			if expr.Recursive {
				ctx.WriteString("rec ")
			}
			ctx.showPattern(expr.Pattern)
			ctx.WriteString(" = ")
			ctx.showExprWalker(expr.Value, 1)
			ctx.WriteString(" in")
			ctx.newline()
			ctx.showExprWalker(expr.Body, 0)
		})
	case *LetRec:
		ctx.parensIf(outerPrecedence > 0, func() {
			for i, binding := range expr.Bindings {
				if i == 0 {
					ctx.WriteString("let rec ")
				} else {
					ctx.newline()
					ctx.WriteString("and ")
				}
				if binding.Mutable {
					ctx.WriteString("mut ")
				}
				ctx.showPattern(binding.Pattern)
				ctx.WriteString(" = ")
				ctx.showExprWalker(binding.Value, 1)
			}
			ctx.WriteString(" in")
			ctx.newline()
			ctx.showExprWalker(expr.Body, 0)
		})
	case *Lambda:
		ctx.parensIf(outerPrecedence > 1, func() {
			ctx.WriteString("(")
			ctx.showPattern(expr.Param)
			ctx.WriteString(") => ")
			ctx.showExprWalker(expr.Body, 1)
		})
	case *App:
		ctx.showExprWalker(expr.Func, 40)
		ctx.WriteString("(")
		ctx.showExprs(expr.Args)
		ctx.WriteString(")")
	case *Match:
		ctx.WriteString("match ")
		ctx.showExprWalker(expr.Scrutinee, 0)
		ctx.WriteString(" {")
		ctx.indent++
		for _, c := range expr.Cases {
			ctx.newline()
			ctx.WriteString("| ")
			ctx.showPattern(c.Pattern)
			if c.Guard != nil {
				ctx.WriteString(" when ")
				ctx.showExprWalker(c.Guard, 1)
			}
			ctx.WriteString(" => ")
			ctx.showExprWalker(c.Body, 1)
		}
		ctx.indent--
		ctx.newline()
		ctx.WriteString("}")
	case *Record:
		ctx.WriteString("{ ")
		ctx.showElements(expr.Fields)
		ctx.WriteString(" }")
	case *RecordAccess:
		ctx.showExprWalker(expr.Record, 40)
		ctx.WriteString("." + expr.Field)
	case *RecordUpdate:
		ctx.WriteString("{ ")
		ctx.showExprWalker(expr.Record, 0)
		ctx.WriteString(" | ")
		ctx.showElements(expr.Updates)
		ctx.WriteString(" }")
	case *Variant:
		ctx.WriteString(expr.Constructor)
		if len(expr.Args) > 0 {
			ctx.WriteString("(")
			ctx.showExprs(expr.Args)
			ctx.WriteString(")")
		}
	case *BinOp:
		var thisPrecedence int16 = 20
		ctx.parensIf(outerPrecedence >= thisPrecedence, func() {
			ctx.showExprWalker(expr.Left, thisPrecedence)
			ctx.WriteString(" " + expr.Op.String() + " ")
			ctx.showExprWalker(expr.Right, thisPrecedence)
		})
	case *UnaryOp:
		ctx.WriteString(expr.Op.String())
		ctx.showExprWalker(expr.Operand, 30)
	case *TypeAnnotation:
		ctx.WriteString("(")
		ctx.showExprWalker(expr.Expr, 10)
		ctx.WriteString(" : " + TypeString(expr.Type) + ")")
	case *Unsafe:
		ctx.WriteString("unsafe { ")
		ctx.showExprWalker(expr.Expr, 0)
		ctx.WriteString(" }")
	case *Tuple:
		ctx.WriteString("(")
		ctx.showExprs(expr.Elements)
		ctx.WriteString(")")

	default:
		if outerPrecedence > 0 {
			ctx.WriteString("(" + expr.ExprName() + ")")
		} else {
			ctx.WriteString(expr.ExprName())
		}
	}
}

func (ctx *showContext) parensIf(when bool, show func()) {
	if when {
		ctx.WriteString("(")
	}
	show()
	if when {
		ctx.WriteString(")")
	}
}

func (ctx *showContext) showExprs(exprs []Expr) {
	for i, e := range exprs {
		if i > 0 {
			ctx.WriteString(", ")
		}
		ctx.showExprWalker(e, 0)
	}
}

func (ctx *showContext) showElements(elements []RecordElement) {
	for i, element := range elements {
		if i > 0 {
			ctx.WriteString(", ")
		}
		switch element := element.(type) {
		case *RecordField:
			ctx.WriteString(element.Name + ": ")
			ctx.showExprWalker(element.Value, 0)
		case *RecordSpread:
			ctx.WriteString("...")
			ctx.showExprWalker(element.Expr, 40)
		}
	}
}

func (ctx *showContext) showPattern(p Pattern) {
	switch p := p.(type) {
	case *VarPattern:
		ctx.WriteString(p.Name)
	case *WildcardPattern:
		ctx.WriteString("_")
	case *LiteralPattern:
		ctx.WriteString(p.Value.Syntax())
	case *VariantPattern:
		ctx.WriteString(p.Constructor)
		if len(p.Args) > 0 {
			ctx.WriteString("(")
			ctx.showPatterns(p.Args)
			ctx.WriteString(")")
		}
	case *RecordPattern:
		ctx.WriteString("{ ")
		for i, field := range p.Fields {
			if i > 0 {
				ctx.WriteString(", ")
			}
			ctx.WriteString(field.Name + ": ")
			ctx.showPattern(field.Pattern)
		}
		ctx.WriteString(" }")
	case *TuplePattern:
		ctx.WriteString("(")
		ctx.showPatterns(p.Elements)
		ctx.WriteString(")")
	default:
		ctx.WriteString("nil")
	}
}

func (ctx *showContext) showPatterns(patterns []Pattern) {
	for i, p := range patterns {
		if i > 0 {
			ctx.WriteString(", ")
		}
		ctx.showPattern(p)
	}
}

func (ctx *showContext) showDeclaration(decl Declaration) {
	exported := func(is bool) {
		if is {
			ctx.WriteString("export ")
		}
	}
	switch decl := decl.(type) {
	case *LetDecl:
		exported(decl.Exported)
		ctx.WriteString("let ")
		if decl.Mutable {
			ctx.WriteString("mut ")
		}
		if decl.Recursive {
			ctx.WriteString("rec ")
		}
		ctx.showPattern(decl.Pattern)
		ctx.WriteString(" = ")
		ctx.showExprWalker(decl.Value, 0)
	case *LetRecGroupDecl:
		exported(decl.Exported)
		for i, binding := range decl.Bindings {
			if i == 0 {
				ctx.WriteString("let rec ")
			} else {
				ctx.newline()
				ctx.WriteString("and ")
			}
			ctx.showPattern(binding.Pattern)
			ctx.WriteString(" = ")
			ctx.showExprWalker(binding.Value, 0)
		}
	case *TypeDecl:
		exported(decl.Exported)
		ctx.WriteString("type " + decl.Name)
		if len(decl.Params) > 0 {
			ctx.WriteString("<" + strings.Join(decl.Params, ", ") + ">")
		}
		ctx.WriteString(" = " + TypeDefinitionString(decl.Definition))
	case *ExternalDecl:
		exported(decl.Exported)
		ctx.WriteString(fmt.Sprintf("external %s: %s = %q", decl.Name, TypeString(decl.Type), decl.JSName))
		if decl.From != "" {
			ctx.WriteString(fmt.Sprintf(" from %q", decl.From))
		}
	case *ExternalTypeDecl:
		exported(decl.Exported)
		ctx.WriteString(fmt.Sprintf("external type %s = %s", decl.Name, TypeString(decl.Type)))
		if decl.From != "" {
			ctx.WriteString(fmt.Sprintf(" from %q", decl.From))
		}
	case *ImportDecl:
		items := make([]string, len(decl.Items))
		for i, item := range decl.Items {
			items[i] = item.Name
			if item.IsType {
				items[i] = "type " + items[i]
			}
			if item.Alias != "" {
				items[i] += " as " + item.Alias
			}
		}
		ctx.WriteString(fmt.Sprintf("import { %s } from %q", strings.Join(items, ", "), decl.From))
	default:
		ctx.WriteString("nil")
	}
}
