package ir

import (
	"github.com/hashicorp/go-set/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func v(name string) *Var                  { return &Var{Name: name} }
func pv(name string) *VarPattern          { return &VarPattern{Name: name} }
func lam(param string, body Expr) *Lambda { return &Lambda{Param: pv(param), Body: body} }
func add(l, r Expr) *BinOp                { return &BinOp{Op: OpAdd, Left: l, Right: r} }
func app(f Expr, args ...Expr) *App       { return &App{Func: f, Args: args} }
func let(name string, value, body Expr) *Let {
	return &Let{Pattern: pv(name), Value: value, Body: body}
}

func assertExprEquals(t *testing.T, expected, actual Expr) {
	t.Helper()
	assert.True(t, ExprEquals(expected, actual), "expected\n%s\nbut got\n%s", ExprString(expected), ExprString(actual))
}

func TestSubstitute(t *testing.T) {
	testCases := []struct {
		name        string
		expr        Expr
		varName     string
		replacement Expr
		expected    Expr
	}{
		{
			name:        "variable itself",
			expr:        v("x"),
			varName:     "x",
			replacement: IntLiteral(1, Location{}),
			expected:    IntLiteral(1, Location{}),
		},
		{
			name:        "no occurrence",
			expr:        add(v("y"), IntLiteral(2, Location{})),
			varName:     "x",
			replacement: IntLiteral(1, Location{}),
			expected:    add(v("y"), IntLiteral(2, Location{})),
		},
		{
			name:        "inside application",
			expr:        app(v("f"), v("x"), v("x")),
			varName:     "x",
			replacement: v("z"),
			expected:    app(v("f"), v("z"), v("z")),
		},
		{
			name:        "let shadows in body but not in value",
			expr:        let("x", v("x"), v("x")),
			varName:     "x",
			replacement: IntLiteral(1, Location{}),
			expected:    let("x", IntLiteral(1, Location{}), v("x")),
		},
		{
			name:        "recursive let shadows in value too",
			expr:        &Let{Pattern: pv("x"), Value: v("x"), Body: v("x"), Recursive: true},
			varName:     "x",
			replacement: IntLiteral(1, Location{}),
			expected:    &Let{Pattern: pv("x"), Value: v("x"), Body: v("x"), Recursive: true},
		},
		{
			name:        "lambda shadows",
			expr:        lam("x", v("x")),
			varName:     "x",
			replacement: IntLiteral(1, Location{}),
			expected:    lam("x", v("x")),
		},
		{
			name:        "lambda renamed to avoid capture",
			expr:        lam("y", v("x")),
			varName:     "x",
			replacement: v("y"),
			expected:    lam("y_1", v("y")),
		},
		{
			name:        "let renamed to avoid capture",
			expr:        let("y", IntLiteral(1, Location{}), add(v("x"), v("y"))),
			varName:     "x",
			replacement: v("y"),
			expected:    let("y_1", IntLiteral(1, Location{}), add(v("y"), v("y_1"))),
		},
		{
			name:        "fresh name avoids names free in the scope",
			expr:        lam("y", add(add(v("x"), v("y")), v("y_1"))),
			varName:     "x",
			replacement: v("y"),
			expected:    lam("y_2", add(add(v("y"), v("y_2")), v("y_1"))),
		},
		{
			name: "match case renamed to avoid capture",
			expr: &Match{Scrutinee: v("x"), Cases: []MatchCase{
				{Pattern: pv("y"), Guard: v("y"), Body: v("x")},
				{Pattern: &WildcardPattern{}, Body: v("x")},
			}},
			varName:     "x",
			replacement: v("y"),
			expected: &Match{Scrutinee: v("y"), Cases: []MatchCase{
				{Pattern: pv("y_1"), Guard: v("y_1"), Body: v("y")},
				{Pattern: &WildcardPattern{}, Body: v("y")},
			}},
		},
		{
			name: "match case shadows",
			expr: &Match{Scrutinee: v("x"), Cases: []MatchCase{
				{Pattern: &TuplePattern{Elements: []Pattern{pv("x"), pv("z")}}, Body: v("x")},
			}},
			varName:     "x",
			replacement: IntLiteral(3, Location{}),
			expected: &Match{Scrutinee: IntLiteral(3, Location{}), Cases: []MatchCase{
				{Pattern: &TuplePattern{Elements: []Pattern{pv("x"), pv("z")}}, Body: v("x")},
			}},
		},
		{
			name: "recursive group renamed together",
			expr: &LetRec{
				Bindings: []LetRecBinding{
					{Pattern: pv("f"), Value: lam("n", app(v("g"), v("n")))},
					{Pattern: pv("g"), Value: lam("n", app(v("x"), v("f")))},
				},
				Body: app(v("f"), IntLiteral(1, Location{})),
			},
			varName:     "x",
			replacement: v("f"),
			expected: &LetRec{
				Bindings: []LetRecBinding{
					{Pattern: pv("f_1"), Value: lam("n", app(v("g"), v("n")))},
					{Pattern: pv("g"), Value: lam("n", app(v("f"), v("f_1")))},
				},
				Body: app(v("f_1"), IntLiteral(1, Location{})),
			},
		},
		{
			name:        "absent variable leaves clashing lambda alone",
			expr:        lam("y", v("y")),
			varName:     "x",
			replacement: v("y"),
			expected:    lam("y", v("y")),
		},
		{
			name:        "absent variable leaves clashing let alone",
			expr:        let("y", IntLiteral(1, Location{}), v("y")),
			varName:     "x",
			replacement: v("y"),
			expected:    let("y", IntLiteral(1, Location{}), v("y")),
		},
		{
			name: "absent variable leaves clashing match case alone",
			expr: &Match{Scrutinee: v("s"), Cases: []MatchCase{
				{Pattern: pv("y"), Body: v("y")},
			}},
			varName:     "x",
			replacement: v("y"),
			expected: &Match{Scrutinee: v("s"), Cases: []MatchCase{
				{Pattern: pv("y"), Body: v("y")},
			}},
		},
		{
			name:        "binder is only renamed where the variable occurs",
			expr:        add(v("x"), lam("y", v("y"))),
			varName:     "x",
			replacement: v("y"),
			expected:    add(v("y"), lam("y", v("y"))),
		},
		{
			name: "record fields and spreads",
			expr: &RecordUpdate{Record: v("x"), Updates: []RecordElement{
				&RecordField{Name: "a", Value: v("x")},
				&RecordSpread{Expr: v("x")},
			}},
			varName:     "x",
			replacement: v("r"),
			expected: &RecordUpdate{Record: v("r"), Updates: []RecordElement{
				&RecordField{Name: "a", Value: v("r")},
				&RecordSpread{Expr: v("r")},
			}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := ExprString(tc.expr)
			actual := Substitute(tc.expr, tc.varName, tc.replacement)
			assertExprEquals(t, tc.expected, actual)
			assert.Equal(t, before, ExprString(tc.expr), "input was mutated")
		})
	}
}

func TestSubstituteIsSimultaneous(t *testing.T) {
	expr := add(v("x"), v("y"))
	actual := SubstituteMultiple(expr, map[string]Expr{"x": v("y"), "y": v("x")})
	assertExprEquals(t, add(v("y"), v("x")), actual)
}

func TestSubstituteDoesNotShareReplacement(t *testing.T) {
	replacement := app(v("f"), v("a"))
	actual := Substitute(add(v("x"), v("x")), "x", replacement).(*BinOp)

	assert.NotSame(t, replacement, actual.Left)
	assert.NotSame(t, actual.Left, actual.Right)
	assertExprEquals(t, replacement, actual.Left)
}

func TestSubstituteEmptyIsCopy(t *testing.T) {
	expr := let("x", IntLiteral(1, Location{}), lam("y", add(v("x"), v("y"))))
	actual := SubstituteMultiple(expr, map[string]Expr{})

	assert.NotSame(t, expr, actual)
	assertExprEquals(t, expr, actual)
}

func TestSubstituteKeepsOccurrenceLocationWhenRenaming(t *testing.T) {
	at := Location{File: "a.vf", Line: 3, Column: 7}
	expr := lam("y", add(v("x"), &Var{Location: at, Name: "y"}))
	actual := Substitute(expr, "x", v("y")).(*Lambda)

	assert.Equal(t, "y_1", actual.Param.(*VarPattern).Name)
	renamed := actual.Body.(*BinOp).Right
	assert.Equal(t, "y_1", renamed.(*Var).Name)
	assert.Equal(t, at, renamed.Loc())
}

func TestSubstitutionRemovesFreeOccurrences(t *testing.T) {
	exprs := []Expr{
		add(v("x"), v("y")),
		lam("y", app(v("x"), v("y"))),
		let("z", v("x"), lam("x", v("x"))),
		&Match{Scrutinee: v("x"), Cases: []MatchCase{{Pattern: pv("w"), Body: add(v("x"), v("w"))}}},
	}
	for _, expr := range exprs {
		t.Run(ExprString(expr), func(t *testing.T) {
			actual := Substitute(expr, "x", app(v("w"), v("y")))
			free := FreeVars(actual)
			assert.False(t, free.Contains("x"))
			// the free variables of the replacement stay free
			if FreeVars(expr).Contains("x") {
				assert.True(t, free.Contains("w"))
				assert.True(t, free.Contains("y"))
			}
		})
	}
}

func TestFreshen(t *testing.T) {
	assert.Equal(t, "x", Freshen("x", set.From([]string{"y"})))
	assert.Equal(t, "x_1", Freshen("x", set.From([]string{"x"})))
	assert.Equal(t, "x_3", Freshen("x", set.From([]string{"x", "x_1", "x_2"})))
	assert.Equal(t, "x_1", Freshen("x", set.From([]string{"x", "x_2"})))
}

func TestSubstituteWithoutOccurrenceIsIdentity(t *testing.T) {
	exprs := []Expr{
		lam("y", add(v("y"), v("z"))),
		let("y", v("z"), lam("w", app(v("y"), v("w")))),
		&LetRec{Bindings: []LetRecBinding{{Pattern: pv("y"), Value: lam("n", app(v("y"), v("n")))}}, Body: v("y")},
	}
	for _, expr := range exprs {
		require.False(t, FreeVars(expr).Contains("x"))
		assertExprEquals(t, expr, Substitute(expr, "x", app(v("y"), v("w"))))
	}
}
