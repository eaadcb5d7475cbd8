package ir

import (
	"github.com/hashicorp/go-set/v3"
	xset "github.com/xtgo/set"
	"slices"
	"sort"
)

// FreeVars returns the names of the variables occurring free in expr
func FreeVars(expr Expr) *set.Set[string] {
	switch e := expr.(type) {
	case *Var:
		return set.From([]string{e.Name})
	case *Literal:
		return set.New[string](0)
	case *Let:
		free := FreeVars(e.Body)
		if e.Recursive {
			free.InsertSet(FreeVars(e.Value))
			free.RemoveSet(PatternVars(e.Pattern))
			return free
		}
		free.RemoveSet(PatternVars(e.Pattern))
		free.InsertSet(FreeVars(e.Value))
		return free
	case *LetRec:
		free := FreeVars(e.Body)
		bound := set.New[string](len(e.Bindings))
		for _, b := range e.Bindings {
			free.InsertSet(FreeVars(b.Value))
			bound.InsertSet(PatternVars(b.Pattern))
		}
		free.RemoveSet(bound)
		return free
	case *Lambda:
		free := FreeVars(e.Body)
		free.RemoveSet(PatternVars(e.Param))
		return free
	case *Match:
		free := FreeVars(e.Scrutinee)
		for _, c := range e.Cases {
			inCase := FreeVars(c.Body)
			if c.Guard != nil {
				inCase.InsertSet(FreeVars(c.Guard))
			}
			inCase.RemoveSet(PatternVars(c.Pattern))
			free.InsertSet(inCase)
		}
		return free
	default:
		free := set.New[string](0)
		for _, child := range expr.Children() {
			free.InsertSet(FreeVars(child))
		}
		return free
	}
}

// freeVarsOf is the union of FreeVars of every expression in exprs
func freeVarsOf(exprs ...Expr) *set.Set[string] {
	free := set.New[string](0)
	for _, e := range exprs {
		free.InsertSet(FreeVars(e))
	}
	return free
}

// PatternVars returns the names of the variables bound by p
func PatternVars(p Pattern) *set.Set[string] {
	return set.From(patternVarNames(p))
}

// patternVarNames lists the variables bound by p, sorted and without duplicates
func patternVarNames(p Pattern) []string {
	var names []string
	collectPatternVars(p, &names)
	sort.Strings(names)
	return names[:xset.Uniq(sort.StringSlice(names))]
}

func collectPatternVars(p Pattern, into *[]string) {
	switch p := p.(type) {
	case *VarPattern:
		*into = append(*into, p.Name)
	case *VariantPattern:
		for _, arg := range p.Args {
			collectPatternVars(arg, into)
		}
	case *RecordPattern:
		for _, field := range p.Fields {
			collectPatternVars(field.Pattern, into)
		}
	case *TuplePattern:
		for _, element := range p.Elements {
			collectPatternVars(element, into)
		}
	}
}

// sortedNames returns the elements of s in ascending order
func sortedNames(s *set.Set[string]) []string {
	names := s.Slice()
	sort.Strings(names)
	return names
}

// intersectSorted intersects two sorted, duplicate-free lists of names
func intersectSorted(a, b []string) []string {
	data := append(slices.Clone(a), b...)
	return data[:xset.Inter(sort.StringSlice(data), len(a))]
}
