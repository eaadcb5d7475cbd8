package ast

var (
	_ Pattern = (*VarPattern)(nil)
	_ Pattern = (*WildcardPattern)(nil)
	_ Pattern = (*LiteralPattern)(nil)
	_ Pattern = (*ConstructorPattern)(nil)
	_ Pattern = (*RecordPattern)(nil)
	_ Pattern = (*ListPattern)(nil)
	_ Pattern = (*OrPattern)(nil)
	_ Pattern = (*TuplePattern)(nil)
	_ Pattern = (*TypeAnnotatedPattern)(nil)
)

// Pattern is a surface pattern, found in let bindings, lambda parameters and match cases.
//
// The following patterns are supported:
//
//	VarPattern:           x
//	WildcardPattern:      _
//	LiteralPattern:       1, "a"
//	ConstructorPattern:   Some(x)
//	RecordPattern:        { a: x, b }
//	ListPattern:          [a, b, ...rest]
//	OrPattern:            1 | 2
//	TuplePattern:         (a, b)
//	TypeAnnotatedPattern: (x: Int)
type Pattern interface {
	Positioner
	patternNode()
}

func (*VarPattern) patternNode()           {}
func (*WildcardPattern) patternNode()      {}
func (*LiteralPattern) patternNode()       {}
func (*ConstructorPattern) patternNode()   {}
func (*RecordPattern) patternNode()        {}
func (*ListPattern) patternNode()          {}
func (*OrPattern) patternNode()            {}
func (*TuplePattern) patternNode()         {}
func (*TypeAnnotatedPattern) patternNode() {}

type VarPattern struct {
	Location
	Name string
}

type WildcardPattern struct {
	Location
}

type LiteralPattern struct {
	Location
	Value LitValue
}

type ConstructorPattern struct {
	Location
	Constructor string
	Args        []Pattern
}

type RecordPattern struct {
	Location
	Fields []RecordPatternField
}

// RecordPatternField matches field Name against Pattern
type RecordPatternField struct {
	Location
	Name    string
	Pattern Pattern
}

// ListPattern matches Elements in order, then the remainder against Rest.
// Rest is nil when the list must have exactly len(Elements) elements
type ListPattern struct {
	Location
	Elements []Pattern
	Rest     Pattern
}

type OrPattern struct {
	Location
	Alternatives []Pattern
}

type TuplePattern struct {
	Location
	Elements []Pattern
}

type TypeAnnotatedPattern struct {
	Location
	Pattern Pattern
	Type    TypeExpr
}
