package frontend

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ilerr"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ir"
	"github.com/mbcrawfo/vibefun-sub003/util"
)

// Pattern desugars a surface pattern into a core pattern.
//
// Or-patterns must have been expanded into separate match cases beforehand:
// finding one here is an internal error
func (d *Desugarer) Pattern(p ast.Pattern) (ir.Pattern, error) {
	if p == nil {
		return nil, missingIn(nil, "pattern")
	}
	switch p := p.(type) {
	case *ast.VarPattern:
		return &ir.VarPattern{Location: p.Location, Name: p.Name}, nil
	case *ast.WildcardPattern:
		return &ir.WildcardPattern{Location: p.Location}, nil
	case *ast.LiteralPattern:
		return &ir.LiteralPattern{Location: p.Location, Value: p.Value}, nil
	case *ast.ConstructorPattern:
		args, err := d.patterns(p, "constructor pattern", p.Args)
		if err != nil {
			return nil, err
		}
		return &ir.VariantPattern{Location: p.Location, Constructor: p.Constructor, Args: args}, nil
	case *ast.RecordPattern:
		fields := make([]ir.RecordPatternField, len(p.Fields))
		for i, field := range p.Fields {
			fieldPattern, err := d.patternOf(field, "record pattern field", field.Pattern)
			if err != nil {
				return nil, err
			}
			fields[i] = ir.RecordPatternField{Location: field.Location, Name: field.Name, Pattern: fieldPattern}
		}
		return &ir.RecordPattern{Location: p.Location, Fields: fields}, nil
	case *ast.ListPattern:
		return d.listPattern(p)
	case *ast.TuplePattern:
		elements, err := d.patterns(p, "tuple pattern", p.Elements)
		if err != nil {
			return nil, err
		}
		return &ir.TuplePattern{Location: p.Location, Elements: elements}, nil
	case *ast.TypeAnnotatedPattern:
		// annotations on patterns are checked by the type checker, on the surface tree
		return d.patternOf(p, "annotated pattern", p.Pattern)
	case *ast.OrPattern:
		return nil, ilerr.NewInternal(p.Location, "or-pattern should have been expanded before pattern desugaring")
	default:
		return nil, unknownNode(p, "pattern", p)
	}
}

func (d *Desugarer) patterns(parent ast.Positioner, in string, patterns []ast.Pattern) ([]ir.Pattern, error) {
	desugared := make([]ir.Pattern, len(patterns))
	for i, p := range patterns {
		var err error
		if desugared[i], err = d.patternOf(parent, in, p); err != nil {
			return nil, err
		}
	}
	return desugared, nil
}

// listPattern lowers [a, b, ...rest] to Cons(a, Cons(b, rest)), and [a] to Cons(a, Nil)
func (d *Desugarer) listPattern(p *ast.ListPattern) (ir.Pattern, error) {
	elements, err := d.patterns(p, "list pattern", p.Elements)
	if err != nil {
		return nil, err
	}
	var tail ir.Pattern = ir.NilPattern(p.Location)
	if p.Rest != nil {
		if tail, err = d.Pattern(p.Rest); err != nil {
			return nil, err
		}
	}
	for element := range util.Reverse(elements) {
		tail = ir.ConsPattern(element, tail, p.Location)
	}
	return tail, nil
}

// expandOrPatterns lists the or-free patterns p stands for, in the order of
// the alternatives. Nested or-patterns multiply: (1 | 2, a | b) stands for
// (1, a), (1, b), (2, a) and (2, b)
func expandOrPatterns(p ast.Pattern) ([]ast.Pattern, error) {
	switch p := p.(type) {
	case *ast.OrPattern:
		if len(p.Alternatives) == 0 {
			return nil, ilerr.New(ilerr.NewEmptyOrPattern{Location: p.Location})
		}
		var expanded []ast.Pattern
		for _, alternative := range p.Alternatives {
			alternatives, err := expandOrPatterns(alternative)
			if err != nil {
				return nil, err
			}
			expanded = append(expanded, alternatives...)
		}
		return expanded, nil
	case *ast.ConstructorPattern:
		return expandEach(p.Args, func(args []ast.Pattern) ast.Pattern {
			copied := *p
			copied.Args = args
			return &copied
		})
	case *ast.TuplePattern:
		return expandEach(p.Elements, func(elements []ast.Pattern) ast.Pattern {
			copied := *p
			copied.Elements = elements
			return &copied
		})
	case *ast.RecordPattern:
		fieldPatterns := make([]ast.Pattern, len(p.Fields))
		for i, field := range p.Fields {
			fieldPatterns[i] = field.Pattern
		}
		return expandEach(fieldPatterns, func(patterns []ast.Pattern) ast.Pattern {
			copied := *p
			copied.Fields = make([]ast.RecordPatternField, len(p.Fields))
			for i, field := range p.Fields {
				field.Pattern = patterns[i]
				copied.Fields[i] = field
			}
			return &copied
		})
	case *ast.ListPattern:
		withRest := p.Elements
		if p.Rest != nil {
			withRest = append(withRest[:len(withRest):len(withRest)], p.Rest)
		}
		return expandEach(withRest, func(patterns []ast.Pattern) ast.Pattern {
			copied := *p
			if p.Rest != nil {
				copied.Elements, copied.Rest = patterns[:len(patterns)-1], patterns[len(patterns)-1]
			} else {
				copied.Elements = patterns
			}
			return &copied
		})
	case *ast.TypeAnnotatedPattern:
		return expandEach([]ast.Pattern{p.Pattern}, func(inner []ast.Pattern) ast.Pattern {
			copied := *p
			copied.Pattern = inner[0]
			return &copied
		})
	default:
		return []ast.Pattern{p}, nil
	}
}

// expandEach expands every pattern of children and rebuilds the parent
// for every combination of their alternatives
func expandEach(children []ast.Pattern, rebuild func([]ast.Pattern) ast.Pattern) ([]ast.Pattern, error) {
	combinations := [][]ast.Pattern{{}}
	for _, child := range children {
		alternatives, err := expandOrPatterns(child)
		if err != nil {
			return nil, err
		}
		next := make([][]ast.Pattern, 0, len(combinations)*len(alternatives))
		for _, prefix := range combinations {
			for _, alternative := range alternatives {
				combination := make([]ast.Pattern, len(prefix), len(prefix)+1)
				copy(combination, prefix)
				next = append(next, append(combination, alternative))
			}
		}
		combinations = next
	}
	expanded := make([]ast.Pattern, len(combinations))
	for i, combination := range combinations {
		expanded[i] = rebuild(combination)
	}
	return expanded, nil
}
