package ir

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFreeVars(t *testing.T) {
	testCases := []struct {
		name     string
		expr     Expr
		expected []string
	}{
		{"literal", IntLiteral(1, Location{}), []string{}},
		{"var", v("x"), []string{"x"}},
		{"lambda binds its param", lam("x", add(v("x"), v("y"))), []string{"y"}},
		{"let value is outside the binding", let("x", v("x"), v("x")), []string{"x"}},
		{
			name:     "recursive let value is inside the binding",
			expr:     &Let{Pattern: pv("f"), Value: lam("n", app(v("f"), v("n"))), Body: v("f"), Recursive: true},
			expected: []string{},
		},
		{
			name: "let rec group",
			expr: &LetRec{
				Bindings: []LetRecBinding{
					{Pattern: pv("even"), Value: lam("n", app(v("odd"), v("n")))},
					{Pattern: pv("odd"), Value: lam("n", app(v("even"), v("m")))},
				},
				Body: app(v("even"), v("k")),
			},
			expected: []string{"k", "m"},
		},
		{
			name: "match binds per case, guards included",
			expr: &Match{Scrutinee: v("s"), Cases: []MatchCase{
				{Pattern: &VariantPattern{Constructor: "Some", Args: []Pattern{pv("x")}}, Guard: add(v("x"), v("g")), Body: v("x")},
				{Pattern: &WildcardPattern{}, Body: v("x")},
			}},
			expected: []string{"g", "s", "x"},
		},
		{
			name: "record elements",
			expr: &Record{Fields: []RecordElement{
				&RecordField{Name: "a", Value: v("a")},
				&RecordSpread{Expr: v("r")},
			}},
			expected: []string{"a", "r"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ElementsMatch(t, tc.expected, FreeVars(tc.expr).Slice())
		})
	}
}

func TestPatternVars(t *testing.T) {
	p := &TuplePattern{Elements: []Pattern{
		pv("b"),
		&RecordPattern{Fields: []RecordPatternField{{Name: "f", Pattern: pv("a")}}},
		&VariantPattern{Constructor: "Cons", Args: []Pattern{pv("h"), &WildcardPattern{}}},
		&LiteralPattern{Value: IntLiteral(1, Location{}).Value},
	}}
	assert.Equal(t, []string{"a", "b", "h"}, patternVarNames(p))
	assert.Equal(t, 3, PatternVars(p).Size())
}

func TestIntersectSorted(t *testing.T) {
	assert.Equal(t, []string{"b", "d"}, intersectSorted([]string{"a", "b", "d"}, []string{"b", "c", "d"}))
	assert.Empty(t, intersectSorted([]string{"a"}, []string{"b"}))
	assert.Empty(t, intersectSorted(nil, []string{"b"}))
}
