package vibefun_test

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ilerr"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ir"
	"github.com/mbcrawfo/vibefun-sub003/vibefun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return data
}

func TestCompileModule(t *testing.T) {
	module, errs, err := vibefun.Compile(readFixture(t, "module.yaml"), "module.yaml", frontend.PhaseConfig{})
	require.NoError(t, err)
	assert.False(t, errs.HasError())

	expected := `import { map, type List as L } from "./list"
export let inc = (x) => x + 1
let xs = Cons(1, Cons(2, rest))
export type Option<a> = Some('a) | None
external readFile: (String) -> String = "readFileSync" from "node:fs"
`
	assert.Equal(t, expected, module.String())
}

func TestCompileCollectsErrors(t *testing.T) {
	module, errs, err := vibefun.Compile(readFixture(t, "broken.yaml"), "broken.yaml", frontend.PhaseConfig{})
	require.NoError(t, err)
	require.True(t, errs.HasError())

	var codes []ilerr.ErrCode
	var locations []string
	for _, compileErr := range errs.Errors() {
		codes = append(codes, compileErr.Code())
		locations = append(locations, ast.LocOf(compileErr).String())
	}
	assert.Equal(t, []ilerr.ErrCode{ilerr.EmptyBlock, ilerr.LambdaWithoutParams}, codes)
	assert.Equal(t, []string{"broken.vf:2:9", "broken.vf:4:1"}, locations)

	require.Len(t, module.Declarations, 1)
	assert.Equal(t, "let b = 1", ir.DeclarationString(module.Declarations[0]))
}

func TestCompileDecodeError(t *testing.T) {
	_, errs, err := vibefun.Compile([]byte("declarations: [{kind: nope}]"), "bad.vf", frontend.PhaseConfig{})
	require.Error(t, err)
	assert.Nil(t, errs)
	assert.False(t, ilerr.IsInternal(err))
}

func TestCompileFreshNamesPerDeclaration(t *testing.T) {
	data := []byte(`
declarations:
  - {kind: let, pattern: a, value: {kind: binop, op: ">>", left: f, right: g}}
  - {kind: let, pattern: b, value: {kind: binop, op: ">>", left: f, right: g}}
`)
	shared, _, err := vibefun.Compile(data, "fresh.vf", frontend.PhaseConfig{})
	require.NoError(t, err)
	assert.Contains(t, ir.DeclarationString(shared.Declarations[1]), "$composed1")

	perDecl, _, err := vibefun.Compile(data, "fresh.vf", frontend.PhaseConfig{FreshNamesPerDeclaration: true})
	require.NoError(t, err)
	assert.Contains(t, ir.DeclarationString(perDecl.Declarations[1]), "$composed0")
}
