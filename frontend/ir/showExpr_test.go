package ir

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestExprString(t *testing.T) {
	testCases := []struct {
		expr     Expr
		expected string
	}{
		{IntLiteral(1, Location{}), "1"},
		{StringLiteral("a", Location{}), `"a"`},
		{UnitLiteral(Location{}), "()"},
		{lam("x", v("x")), "(x) => x"},
		{app(v("f"), v("a"), v("b")), "f(a, b)"},
		{app(lam("x", v("x")), v("a")), "((x) => x)(a)"},
		{add(add(v("a"), v("b")), v("c")), "(a + b) + c"},
		{Cons(IntLiteral(1, Location{}), Nil(Location{}), Location{}), "Cons(1, Nil)"},
		{let("x", IntLiteral(1, Location{}), v("x")), "let x = 1 in\nx"},
		{&RecordAccess{Record: v("r"), Field: "a"}, "r.a"},
		{&Record{Fields: []RecordElement{&RecordField{Name: "a", Value: v("x")}, &RecordSpread{Expr: v("r")}}}, "{ a: x, ...r }"},
		{&Tuple{Elements: []Expr{v("a"), v("b")}}, "(a, b)"},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExprString(tc.expr))
		})
	}
}

func TestExprStringMatch(t *testing.T) {
	expr := &Match{Scrutinee: v("c"), Cases: []MatchCase{
		{Pattern: &LiteralPattern{Value: BoolLiteral(true, Location{}).Value}, Body: IntLiteral(1, Location{})},
		{Pattern: &LiteralPattern{Value: BoolLiteral(false, Location{}).Value}, Body: IntLiteral(2, Location{})},
	}}
	assert.Equal(t, "match c {\n  | true => 1\n  | false => 2\n}", ExprString(expr))
}
