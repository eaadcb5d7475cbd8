package main

import (
	"bytes"
	"github.com/mbcrawfo/vibefun-sub003/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// execute runs the CLI with args and returns what it wrote to stdout and stderr.
// Flags keep their values across runs, so every test spells out the ones it relies on
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestDesugarEndToEnd(t *testing.T) {
	stdout, _, err := execute(t, "desugar", "--keep-going=false", "--reset-per-decl=false", "vibefun/testdata/module.yaml")
	require.NoError(t, err)
	assert.Equal(t, `import { map, type List as L } from "./list"
export let inc = (x) => x + 1
let xs = Cons(1, Cons(2, rest))
export type Option<a> = Some('a) | None
external readFile: (String) -> String = "readFileSync" from "node:fs"
`, stdout)
}

func TestCheckEndToEnd(t *testing.T) {
	stdout, _, err := execute(t, "check", "--keep-going=false", "vibefun/testdata/module.yaml")
	require.NoError(t, err)
	assert.Equal(t, "vibefun/testdata/module.yaml: ok (5 declarations)\n", stdout)
}

func TestCheckReportsFirstError(t *testing.T) {
	stdout, stderr, err := execute(t, "check", "--keep-going=false", "vibefun/testdata/broken.yaml")
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "broken.vf:2:9: (E001) Empty block")
	assert.NotContains(t, stderr, "E002")
}

func TestCheckKeepGoing(t *testing.T) {
	_, stderr, err := execute(t, "check", "--keep-going=true", "vibefun/testdata/broken.yaml")
	require.Error(t, err)
	assert.Contains(t, stderr, "broken.vf:2:9: (E001) Empty block")
	assert.Contains(t, stderr, "broken.vf:4:1: (E002) Lambda with no parameters")
}

func TestDesugarMissingFile(t *testing.T) {
	_, _, err := execute(t, "desugar", "vibefun/testdata/does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading module")
}

func TestCheckDebugErrors(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, cmd.CheckCmd.Flags().Set("debug-errors", "false"))
	})
	_, stderr, err := execute(t, "check", "--keep-going=false", "--debug-errors", "vibefun/testdata/broken.yaml")
	require.Error(t, err)
	assert.Regexp(t, `broken\.vf:2:9: .*desugar_expr\.go:\d+.*: \(E001\) Empty block`, stderr)

	_, stderr, err = execute(t, "check", "--keep-going=false", "--debug-errors=false", "vibefun/testdata/broken.yaml")
	require.Error(t, err)
	assert.Contains(t, stderr, "broken.vf:2:9: (E001) Empty block")
}
