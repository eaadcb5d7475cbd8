package ir

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestTransformIsBottomUp(t *testing.T) {
	expr := add(v("a"), app(v("f"), v("b")))
	var visited []string
	TransformExpr(expr, func(e Expr) Expr {
		visited = append(visited, e.ExprName())
		return e
	})
	assert.Equal(t, []string{"Var", "Var", "Var", "App", "BinOp"}, visited)
}

func TestTransformReplacesNodes(t *testing.T) {
	expr := let("x", v("a"), add(v("x"), v("a")))
	renamed := TransformExpr(expr, func(e Expr) Expr {
		if e, ok := e.(*Var); ok && e.Name == "a" {
			return v("b")
		}
		return e
	})
	assertExprEquals(t, let("x", v("b"), add(v("x"), v("b"))), renamed)
	// the original is untouched
	assertExprEquals(t, let("x", v("a"), add(v("x"), v("a"))), expr)
}

func TestCopyExprIsDeep(t *testing.T) {
	expr := &Match{Scrutinee: v("s"), Cases: []MatchCase{{Pattern: pv("x"), Guard: v("g"), Body: v("x")}}}
	copied := CopyExpr(expr).(*Match)
	assertExprEquals(t, expr, copied)

	copied.Cases[0].Pattern.(*VarPattern).Name = "y"
	copied.Scrutinee.(*Var).Name = "t"
	assert.Equal(t, "x", expr.Cases[0].Pattern.(*VarPattern).Name)
	assert.Equal(t, "s", expr.Scrutinee.(*Var).Name)
}

func TestVisitExprOrder(t *testing.T) {
	expr := &Match{Scrutinee: v("s"), Cases: []MatchCase{
		{Pattern: pv("x"), Guard: v("g"), Body: v("b1")},
		{Pattern: &WildcardPattern{}, Body: v("b2")},
	}}
	var names []string
	VisitExpr(expr, func(e Expr) {
		if e, ok := e.(*Var); ok {
			names = append(names, e.Name)
		}
	})
	assert.Equal(t, []string{"s", "g", "b1", "b2"}, names)
}

func TestFoldExprCountsNodes(t *testing.T) {
	expr := &Tuple{Elements: []Expr{v("a"), &RecordUpdate{Record: v("r"), Updates: []RecordElement{&RecordSpread{Expr: v("s")}}}}}
	count := FoldExpr(expr, func(_ Expr, n int) int { return n + 1 }, 0)
	assert.Equal(t, 5, count)
}
