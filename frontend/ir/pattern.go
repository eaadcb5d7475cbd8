package ir

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
)

var (
	_ Pattern = (*VarPattern)(nil)
	_ Pattern = (*WildcardPattern)(nil)
	_ Pattern = (*LiteralPattern)(nil)
	_ Pattern = (*VariantPattern)(nil)
	_ Pattern = (*RecordPattern)(nil)
	_ Pattern = (*TuplePattern)(nil)
)

// Pattern is a core pattern. There are no or-patterns, list patterns or
// annotated patterns in the core: desugaring eliminates them.
//
// The following patterns are supported:
//
//	VarPattern:      x
//	WildcardPattern: _
//	LiteralPattern:  1
//	VariantPattern:  Cons(h, t)
//	RecordPattern:   { a: x }
//	TuplePattern:    (a, b)
type Pattern interface {
	Positioner
	patternNode()
}

func (*VarPattern) patternNode()      {}
func (*WildcardPattern) patternNode() {}
func (*LiteralPattern) patternNode()  {}
func (*VariantPattern) patternNode()  {}
func (*RecordPattern) patternNode()   {}
func (*TuplePattern) patternNode()    {}

type VarPattern struct {
	Location
	Name string
}

type WildcardPattern struct {
	Location
}

type LiteralPattern struct {
	Location
	Value ast.LitValue
}

// VariantPattern matches the constructor named Constructor and its positional Args
type VariantPattern struct {
	Location
	Constructor string
	Args        []Pattern
}

type RecordPattern struct {
	Location
	Fields []RecordPatternField
}

type RecordPatternField struct {
	Location
	Name    string
	Pattern Pattern
}

type TuplePattern struct {
	Location
	Elements []Pattern
}

// CopyPattern returns a deep copy of p
func CopyPattern(p Pattern) Pattern {
	switch p := p.(type) {
	case *VarPattern:
		copied := *p
		return &copied
	case *WildcardPattern:
		copied := *p
		return &copied
	case *LiteralPattern:
		copied := *p
		return &copied
	case *VariantPattern:
		copied := *p
		copied.Args = copyPatterns(p.Args)
		return &copied
	case *RecordPattern:
		copied := *p
		copied.Fields = make([]RecordPatternField, len(p.Fields))
		for i, field := range p.Fields {
			field.Pattern = CopyPattern(field.Pattern)
			copied.Fields[i] = field
		}
		return &copied
	case *TuplePattern:
		copied := *p
		copied.Elements = copyPatterns(p.Elements)
		return &copied
	default:
		return p
	}
}

func copyPatterns(patterns []Pattern) []Pattern {
	if patterns == nil {
		return nil
	}
	copied := make([]Pattern, len(patterns))
	for i, p := range patterns {
		copied[i] = CopyPattern(p)
	}
	return copied
}
