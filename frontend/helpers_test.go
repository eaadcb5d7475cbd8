package frontend_test

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ilerr"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ir"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// surface builders
func lit(i int64) *ast.Literal               { return &ast.Literal{Value: ast.IntValue(i)} }
func sv(name string) *ast.Var                { return &ast.Var{Name: name} }
func spv(name string) *ast.VarPattern        { return &ast.VarPattern{Name: name} }
func slit(i int64) *ast.LiteralPattern       { return &ast.LiteralPattern{Value: ast.IntValue(i)} }
func item(e ast.Expr) *ast.ListItem          { return &ast.ListItem{Expr: e} }
func spread(e ast.Expr) *ast.ListSpread      { return &ast.ListSpread{Expr: e} }
func or(alternatives ...ast.Pattern) ast.Pattern {
	return &ast.OrPattern{Alternatives: alternatives}
}
func slet(name string, value ast.Expr) *ast.Let {
	return &ast.Let{Pattern: spv(name), Value: value}
}

// core builders
func cv(name string) *ir.Var            { return &ir.Var{Name: name} }
func cpv(name string) *ir.VarPattern    { return &ir.VarPattern{Name: name} }
func clit(i int64) *ir.Literal          { return ir.IntLiteral(i, ast.Location{}) }
func cnil() ir.Expr                     { return ir.Nil(ast.Location{}) }
func ccons(h, t ir.Expr) ir.Expr        { return ir.Cons(h, t, ast.Location{}) }
func capp(f ir.Expr, args ...ir.Expr) *ir.App {
	return &ir.App{Func: f, Args: args}
}
func clam(param string, body ir.Expr) *ir.Lambda {
	return &ir.Lambda{Param: cpv(param), Body: body}
}

func desugar(t *testing.T, expr ast.Expr) ir.Expr {
	t.Helper()
	desugared, err := frontend.DesugarExpr(expr)
	require.NoError(t, err)
	return desugared
}

func assertCore(t *testing.T, expected, actual ir.Expr) {
	t.Helper()
	assert.True(t, ir.ExprEquals(expected, actual), "expected\n%s\nbut got\n%s", ir.ExprString(expected), ir.ExprString(actual))
}

// requireCode asserts err is a compile error with the given code, and returns it
func requireCode(t *testing.T, err error, code ilerr.ErrCode) ilerr.IleError {
	t.Helper()
	require.Error(t, err)
	var compileErr ilerr.IleError
	require.True(t, errors.As(err, &compileErr), "expected a compile error, got %v", err)
	assert.Equal(t, code, compileErr.Code())
	return compileErr
}
