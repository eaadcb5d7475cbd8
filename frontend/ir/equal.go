package ir

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
	"slices"
)

// ExprEquals reports whether a and b are the same tree, ignoring locations.
//
// This is syntactic equality, not alpha-equivalence: `(x) => x` and `(y) => y`
// are not equal. Literals compare by exact representation (see ast.LitValuesEqual),
// and every list (arguments, fields, cases, bindings) must match in length and order.
func ExprEquals(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case *Literal:
		b, ok := b.(*Literal)
		return ok && ast.LitValuesEqual(a.Value, b.Value)
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *Let:
		b, ok := b.(*Let)
		return ok &&
			a.Mutable == b.Mutable &&
			a.Recursive == b.Recursive &&
			PatternEquals(a.Pattern, b.Pattern) &&
			ExprEquals(a.Value, b.Value) &&
			ExprEquals(a.Body, b.Body)
	case *LetRec:
		b, ok := b.(*LetRec)
		return ok &&
			slices.EqualFunc(a.Bindings, b.Bindings, func(x, y LetRecBinding) bool {
				return x.Mutable == y.Mutable && PatternEquals(x.Pattern, y.Pattern) && ExprEquals(x.Value, y.Value)
			}) &&
			ExprEquals(a.Body, b.Body)
	case *Lambda:
		b, ok := b.(*Lambda)
		return ok && PatternEquals(a.Param, b.Param) && ExprEquals(a.Body, b.Body)
	case *App:
		b, ok := b.(*App)
		return ok && ExprEquals(a.Func, b.Func) && exprsEqual(a.Args, b.Args)
	case *Match:
		b, ok := b.(*Match)
		return ok &&
			ExprEquals(a.Scrutinee, b.Scrutinee) &&
			slices.EqualFunc(a.Cases, b.Cases, func(x, y MatchCase) bool {
				return PatternEquals(x.Pattern, y.Pattern) && ExprEquals(x.Guard, y.Guard) && ExprEquals(x.Body, y.Body)
			})
	case *Record:
		b, ok := b.(*Record)
		return ok && elementsEqual(a.Fields, b.Fields)
	case *RecordAccess:
		b, ok := b.(*RecordAccess)
		return ok && a.Field == b.Field && ExprEquals(a.Record, b.Record)
	case *RecordUpdate:
		b, ok := b.(*RecordUpdate)
		return ok && ExprEquals(a.Record, b.Record) && elementsEqual(a.Updates, b.Updates)
	case *Variant:
		b, ok := b.(*Variant)
		return ok && a.Constructor == b.Constructor && exprsEqual(a.Args, b.Args)
	case *BinOp:
		b, ok := b.(*BinOp)
		return ok && a.Op == b.Op && ExprEquals(a.Left, b.Left) && ExprEquals(a.Right, b.Right)
	case *UnaryOp:
		b, ok := b.(*UnaryOp)
		return ok && a.Op == b.Op && ExprEquals(a.Operand, b.Operand)
	case *TypeAnnotation:
		b, ok := b.(*TypeAnnotation)
		return ok && ExprEquals(a.Expr, b.Expr) && TypeExprEquals(a.Type, b.Type)
	case *Unsafe:
		b, ok := b.(*Unsafe)
		return ok && ExprEquals(a.Expr, b.Expr)
	case *Tuple:
		b, ok := b.(*Tuple)
		return ok && exprsEqual(a.Elements, b.Elements)
	default:
		return false
	}
}

// ExprEquivalent is where semantic equivalences (alpha-equivalence, commutativity,
// associativity) would go. For now it is exactly ExprEquals
func ExprEquivalent(a, b Expr) bool {
	return ExprEquals(a, b)
}

func exprsEqual(a, b []Expr) bool {
	return slices.EqualFunc(a, b, ExprEquals)
}

func elementsEqual(a, b []RecordElement) bool {
	return slices.EqualFunc(a, b, func(x, y RecordElement) bool {
		switch x := x.(type) {
		case *RecordField:
			y, ok := y.(*RecordField)
			return ok && x.Name == y.Name && ExprEquals(x.Value, y.Value)
		case *RecordSpread:
			y, ok := y.(*RecordSpread)
			return ok && ExprEquals(x.Expr, y.Expr)
		default:
			return false
		}
	})
}

// PatternEquals is the pattern counterpart of ExprEquals
func PatternEquals(a, b Pattern) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case *VarPattern:
		b, ok := b.(*VarPattern)
		return ok && a.Name == b.Name
	case *WildcardPattern:
		_, ok := b.(*WildcardPattern)
		return ok
	case *LiteralPattern:
		b, ok := b.(*LiteralPattern)
		return ok && ast.LitValuesEqual(a.Value, b.Value)
	case *VariantPattern:
		b, ok := b.(*VariantPattern)
		return ok && a.Constructor == b.Constructor && slices.EqualFunc(a.Args, b.Args, PatternEquals)
	case *RecordPattern:
		b, ok := b.(*RecordPattern)
		return ok && slices.EqualFunc(a.Fields, b.Fields, func(x, y RecordPatternField) bool {
			return x.Name == y.Name && PatternEquals(x.Pattern, y.Pattern)
		})
	case *TuplePattern:
		b, ok := b.(*TuplePattern)
		return ok && slices.EqualFunc(a.Elements, b.Elements, PatternEquals)
	default:
		return false
	}
}

// TypeExprEquals is the type expression counterpart of ExprEquals
func TypeExprEquals(a, b TypeExpr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case *TypeVar:
		b, ok := b.(*TypeVar)
		return ok && a.Name == b.Name
	case *TypeConst:
		b, ok := b.(*TypeConst)
		return ok && a.Name == b.Name
	case *TypeApp:
		b, ok := b.(*TypeApp)
		return ok && TypeExprEquals(a.Constructor, b.Constructor) && slices.EqualFunc(a.Args, b.Args, TypeExprEquals)
	case *FunctionType:
		b, ok := b.(*FunctionType)
		return ok && slices.EqualFunc(a.Params, b.Params, TypeExprEquals) && TypeExprEquals(a.Return, b.Return)
	case *RecordType:
		b, ok := b.(*RecordType)
		return ok && typeFieldsEqual(a.Fields, b.Fields)
	case *VariantType:
		b, ok := b.(*VariantType)
		return ok && constructorsEqual(a.Constructors, b.Constructors)
	case *UnionType:
		b, ok := b.(*UnionType)
		return ok && slices.EqualFunc(a.Types, b.Types, TypeExprEquals)
	case *TupleType:
		b, ok := b.(*TupleType)
		return ok && slices.EqualFunc(a.Elements, b.Elements, TypeExprEquals)
	default:
		return false
	}
}

func typeFieldsEqual(a, b []TypeField) bool {
	return slices.EqualFunc(a, b, func(x, y TypeField) bool {
		return x.Name == y.Name && TypeExprEquals(x.Type, y.Type)
	})
}

func constructorsEqual(a, b []VariantConstructor) bool {
	return slices.EqualFunc(a, b, func(x, y VariantConstructor) bool {
		return x.Name == y.Name && slices.EqualFunc(x.Args, y.Args, TypeExprEquals)
	})
}
