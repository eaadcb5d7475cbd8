package frontend_test

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ilerr"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestPatterns(t *testing.T) {
	testCases := []struct {
		name     string
		pattern  ast.Pattern
		expected string
	}{
		{"var", spv("x"), "x"},
		{"wildcard", &ast.WildcardPattern{}, "_"},
		{"literal", &ast.LiteralPattern{Value: ast.StringValue("a")}, `"a"`},
		{"constructor", &ast.ConstructorPattern{Constructor: "Some", Args: []ast.Pattern{spv("x")}}, "Some(x)"},
		{"record", &ast.RecordPattern{Fields: []ast.RecordPatternField{{Name: "a", Pattern: spv("x")}}}, "{ a: x }"},
		{"tuple", &ast.TuplePattern{Elements: []ast.Pattern{spv("a"), spv("b")}}, "(a, b)"},
		{"empty list", &ast.ListPattern{}, "Nil"},
		{"rest only", &ast.ListPattern{Rest: spv("rest")}, "rest"},
		{"closed list", &ast.ListPattern{Elements: []ast.Pattern{spv("a"), spv("b")}}, "Cons(a, Cons(b, Nil))"},
		{"open list", &ast.ListPattern{Elements: []ast.Pattern{spv("a")}, Rest: spv("rest")}, "Cons(a, rest)"},
		{
			"annotations are stripped",
			&ast.TypeAnnotatedPattern{
				Pattern: &ast.TypeAnnotatedPattern{Pattern: spv("x"), Type: &ast.TypeConst{Name: ast.IntTypeName}},
				Type:    &ast.TypeConst{Name: ast.IntTypeName},
			},
			"x",
		},
		{
			"nested list in constructor",
			&ast.ConstructorPattern{Constructor: "Some", Args: []ast.Pattern{&ast.ListPattern{Elements: []ast.Pattern{slit(1)}}}},
			"Some(Cons(1, Nil))",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			desugared, err := frontend.NewDesugarer(nil).Pattern(tc.pattern)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ir.PatternString(desugared))
		})
	}
}

func TestOrPatternOutsideMatchIsInternal(t *testing.T) {
	_, err := frontend.NewDesugarer(nil).Pattern(or(spv("a"), spv("b")))
	require.Error(t, err)
	assert.True(t, ilerr.IsInternal(err))
	assert.Contains(t, err.Error(), "or-pattern should have been expanded")

	_, err = frontend.DesugarExpr(&ast.Lambda{Params: []ast.Pattern{or(slit(1), slit(2))}, Body: lit(1)})
	assert.True(t, ilerr.IsInternal(err))
}

func TestListPatternLocation(t *testing.T) {
	at := ast.Location{Line: 9, Column: 3}
	desugared, err := frontend.NewDesugarer(nil).Pattern(&ast.ListPattern{Location: at, Elements: []ast.Pattern{spv("a")}})
	require.NoError(t, err)
	cons := desugared.(*ir.VariantPattern)
	assert.Equal(t, at, cons.Loc())
	assert.Equal(t, at, cons.Args[1].Loc())
}
