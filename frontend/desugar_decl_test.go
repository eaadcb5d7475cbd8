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

func composeDecl(name string) *ast.LetDecl {
	return &ast.LetDecl{
		Pattern: spv(name),
		Value:   &ast.BinOp{Op: ast.OpForwardCompose, Left: sv("f"), Right: sv("g")},
	}
}

func TestExternalBlockIsFlattened(t *testing.T) {
	block := &ast.ExternalBlock{
		From:     "node:fs",
		Exported: true,
		Items: []ast.ExternalItem{
			&ast.ExternalValue{Name: "readFile", JSName: "readFileSync", Type: &ast.FunctionType{
				Params: []ast.TypeExpr{&ast.TypeConst{Name: ast.StringTypeName}},
				Return: &ast.TypeConst{Name: ast.StringTypeName},
			}},
			&ast.ExternalType{Name: "Stats", Type: &ast.RecordType{Fields: []ast.TypeField{{Name: "size", Type: &ast.TypeConst{Name: ast.IntTypeName}}}}},
		},
	}
	decls, err := frontend.NewDesugarer(nil).Declaration(block)
	require.NoError(t, err)
	require.Len(t, decls, 2)

	value := decls[0].(*ir.ExternalDecl)
	assert.Equal(t, "readFile", value.Name)
	assert.Equal(t, "readFileSync", value.JSName)
	assert.Equal(t, "node:fs", value.From)
	assert.True(t, value.Exported)
	assert.Equal(t, "(String) -> String", ir.TypeString(value.Type))

	typ := decls[1].(*ir.ExternalTypeDecl)
	assert.Equal(t, "Stats", typ.Name)
	assert.Equal(t, "node:fs", typ.From)
	assert.True(t, typ.Exported)
}

func TestTypeDeclaration(t *testing.T) {
	decl := &ast.TypeDecl{
		Name:   "Option",
		Params: []string{"a"},
		Definition: &ast.VariantTypeDef{Constructors: []ast.VariantConstructor{
			{Name: "Some", Args: []ast.TypeExpr{&ast.TypeVar{Name: "a"}}},
			{Name: "None"},
		}},
		Exported: true,
	}
	decls, err := frontend.NewDesugarer(nil).Declaration(decl)
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Equal(t, "export type Option<a> = Some('a) | None", ir.DeclarationString(decls[0]))
}

func TestModuleBucketsImports(t *testing.T) {
	module := ast.Module{
		Imports: []ast.Declaration{
			&ast.ImportDecl{From: "./a", Items: []ast.ImportItem{{Name: "x"}}},
		},
		Declarations: []ast.Declaration{
			&ast.LetDecl{Pattern: spv("y"), Value: lit(1)},
			&ast.ImportDecl{From: "./b", Items: []ast.ImportItem{{Name: "T", IsType: true}}},
			&ast.ExternalBlock{Items: []ast.ExternalItem{
				&ast.ExternalValue{Name: "log", JSName: "console.log", Type: &ast.TypeConst{Name: "Unit"}},
				&ast.ExternalValue{Name: "warn", JSName: "console.warn", Type: &ast.TypeConst{Name: "Unit"}},
			}},
		},
	}
	desugared, err := frontend.DesugarModule(module)
	require.NoError(t, err)

	require.Len(t, desugared.Imports, 2)
	assert.Equal(t, "./a", desugared.Imports[0].(*ir.ImportDecl).From)
	assert.Equal(t, "./b", desugared.Imports[1].(*ir.ImportDecl).From)
	require.Len(t, desugared.Declarations, 3)
	assert.IsType(t, &ir.LetDecl{}, desugared.Declarations[0])
	assert.IsType(t, &ir.ExternalDecl{}, desugared.Declarations[1])
	assert.IsType(t, &ir.ExternalDecl{}, desugared.Declarations[2])
}

func TestModuleSharesFreshNames(t *testing.T) {
	desugared, err := frontend.DesugarModule(ast.Module{Declarations: []ast.Declaration{composeDecl("a"), composeDecl("b")}})
	require.NoError(t, err)

	params := make([]string, 0, 2)
	for _, decl := range desugared.Declarations {
		params = append(params, decl.(*ir.LetDecl).Value.(*ir.Lambda).Param.(*ir.VarPattern).Name)
	}
	assert.Equal(t, []string{"$composed0", "$composed1"}, params)
}

func TestModuleStopsAtFirstError(t *testing.T) {
	_, err := frontend.DesugarModule(ast.Module{Declarations: []ast.Declaration{
		&ast.LetDecl{Pattern: spv("a"), Value: &ast.Block{}},
		&ast.LetDecl{Pattern: spv("b"), Value: &ast.Lambda{Body: lit(1)}},
	}})
	requireCode(t, err, ilerr.EmptyBlock)
}

func TestDesugarPhase(t *testing.T) {
	module := ast.Module{Declarations: []ast.Declaration{
		&ast.LetDecl{Pattern: spv("a"), Value: &ast.Block{}},
		composeDecl("b"),
		&ast.LetDecl{Pattern: spv("c"), Value: &ast.Lambda{Body: lit(1)}},
		&ast.LetRecGroupDecl{},
	}}
	desugared, errs, err := frontend.DesugarPhase(module, frontend.PhaseConfig{})
	require.NoError(t, err)

	require.True(t, errs.HasError())
	codes := make([]ilerr.ErrCode, 0)
	for _, e := range errs.Errors() {
		codes = append(codes, e.Code())
	}
	assert.Equal(t, []ilerr.ErrCode{ilerr.EmptyBlock, ilerr.LambdaWithoutParams, ilerr.EmptyLetRecGroup}, codes)

	require.Len(t, desugared.Declarations, 1)
	assert.Equal(t, "b", desugared.Declarations[0].(*ir.LetDecl).Pattern.(*ir.VarPattern).Name)
}

func TestDesugarPhaseFreshNamesPerDeclaration(t *testing.T) {
	module := ast.Module{Declarations: []ast.Declaration{composeDecl("a"), composeDecl("b")}}

	for _, perDecl := range []bool{false, true} {
		desugared, errs, err := frontend.DesugarPhase(module, frontend.PhaseConfig{FreshNamesPerDeclaration: perDecl})
		require.NoError(t, err)
		assert.False(t, errs.HasError())

		second := desugared.Declarations[1].(*ir.LetDecl).Value.(*ir.Lambda).Param.(*ir.VarPattern).Name
		if perDecl {
			assert.Equal(t, "$composed0", second)
		} else {
			assert.Equal(t, "$composed1", second)
		}
	}
}

func TestDesugarPhaseInternalErrorIsFatal(t *testing.T) {
	module := ast.Module{Declarations: []ast.Declaration{
		&ast.LetDecl{Pattern: or(spv("a"), spv("b")), Value: lit(1)},
		composeDecl("b"),
	}}
	_, _, err := frontend.DesugarPhase(module, frontend.PhaseConfig{})
	require.Error(t, err)
	assert.True(t, ilerr.IsInternal(err))
}
