package ir

import (
	"github.com/benbjohnson/immutable"
	"github.com/hashicorp/go-set/v3"
	"github.com/mbcrawfo/vibefun-sub003/internal/log"
	"log/slog"
	"maps"
	"slices"
	"strconv"
)

var logger = slog.New(IRSlogHandler(log.DefaultLogger.Handler())).With("section", "subst")

// Substitute replaces every free occurrence of the variable name in expr with replacement,
// renaming binders where needed so that no free variable of replacement gets captured.
//
// The replacement is inserted as is: it is not substituted into itself.
func Substitute(expr Expr, name string, replacement Expr) Expr {
	return SubstituteMultiple(expr, map[string]Expr{name: replacement})
}

// SubstituteMultiple is the simultaneous version of Substitute: every free occurrence
// of a key of bindings is replaced by the corresponding value, in a single pass
func SubstituteMultiple(expr Expr, bindings map[string]Expr) Expr {
	builder := immutable.NewMapBuilder[string, Expr](nil)
	for _, name := range slices.Sorted(maps.Keys(bindings)) {
		builder.Set(name, bindings[name])
	}
	return newSubstitution(builder.Map()).apply(expr)
}

// Freshen returns base if it is not in avoid, otherwise base_k for the smallest
// k >= 1 such that base_k is not in avoid
func Freshen(base string, avoid set.Collection[string]) string {
	if !avoid.Contains(base) {
		return base
	}
	for k := 1; ; k++ {
		candidate := base + "_" + strconv.Itoa(k)
		if !avoid.Contains(candidate) {
			return candidate
		}
	}
}

// substitution is the map being applied at some point of the tree.
//
// bindings is persistent so that restricting it when entering a binder's scope
// leaves the outer map intact for the binder's own value
type substitution struct {
	bindings *immutable.Map[string, Expr]
	// replacementFree holds the free variables of every replacement in bindings, sorted
	replacementFree []string
	// renaming is set when every replacement is a Var standing for a renamed binder,
	// in which case occurrences keep their own Location
	renaming bool
}

func newSubstitution(bindings *immutable.Map[string, Expr]) substitution {
	free := set.New[string](bindings.Len())
	itr := bindings.Iterator()
	for !itr.Done() {
		_, replacement, _ := itr.Next()
		free.InsertSet(FreeVars(replacement))
	}
	return substitution{bindings: bindings, replacementFree: sortedNames(free)}
}

func renamingSubstitution(renaming map[string]string) substitution {
	builder := immutable.NewMapBuilder[string, Expr](nil)
	for _, from := range slices.Sorted(maps.Keys(renaming)) {
		builder.Set(from, &Var{Name: renaming[from]})
	}
	s := newSubstitution(builder.Map())
	s.renaming = true
	return s
}

func (s substitution) domain() *set.Set[string] {
	domain := set.New[string](s.bindings.Len())
	itr := s.bindings.Iterator()
	for !itr.Done() {
		name, _, _ := itr.Next()
		domain.Insert(name)
	}
	return domain
}

// without returns s minus the entries for names, which are shadowed in a binder's scope
func (s substitution) without(names []string) substitution {
	bindings := s.bindings
	for _, name := range names {
		bindings = bindings.Delete(name)
	}
	if bindings.Len() == s.bindings.Len() {
		return s
	}
	restricted := newSubstitution(bindings)
	restricted.renaming = s.renaming
	return restricted
}

// enterScope computes what happens at a binder binding the sorted names bound, whose
// scope is made of the expressions in scope.
//
// renaming maps each bound variable that would capture a free variable of a replacement
// inserted somewhere in scope to a fresh name, and is empty when nothing is at risk. inner is the substitution
// to apply to the (renamed) scope, without the entries the binder shadows
func (s substitution) enterScope(bound []string, scope ...Expr) (renaming map[string]string, inner substitution) {
	inner = s.without(bound)
	scopeFree := freeVarsOf(scope...)
	// only replacements that will actually be inserted into the scope can be captured
	used := set.New[string](0)
	itr := inner.bindings.Iterator()
	for !itr.Done() {
		name, replacement, _ := itr.Next()
		if scopeFree.Contains(name) {
			used.InsertSet(FreeVars(replacement))
		}
	}
	atRisk := intersectSorted(bound, sortedNames(used))
	if len(atRisk) == 0 {
		return nil, inner
	}

	avoid := set.From(s.replacementFree)
	avoid.InsertSet(scopeFree)
	avoid.InsertSet(s.domain())
	avoid.InsertSlice(bound)

	renaming = make(map[string]string, len(atRisk))
	for _, name := range atRisk {
		fresh := Freshen(name, avoid)
		avoid.Insert(fresh)
		renaming[name] = fresh
	}
	logger.Debug("renaming binders to avoid capture", "renaming", renaming)
	return renaming, inner
}

// rename applies renaming to the free occurrences of the renamed variables in expr
func rename(expr Expr, renaming map[string]string) Expr {
	if len(renaming) == 0 {
		return expr
	}
	return renamingSubstitution(renaming).apply(expr)
}

// renamePattern renames the variables p binds according to renaming
func renamePattern(p Pattern, renaming map[string]string) Pattern {
	copied := CopyPattern(p)
	if len(renaming) == 0 {
		return copied
	}
	var walk func(p Pattern)
	walk = func(p Pattern) {
		switch p := p.(type) {
		case *VarPattern:
			if to, ok := renaming[p.Name]; ok {
				p.Name = to
			}
		case *VariantPattern:
			for _, arg := range p.Args {
				walk(arg)
			}
		case *RecordPattern:
			for _, field := range p.Fields {
				walk(field.Pattern)
			}
		case *TuplePattern:
			for _, element := range p.Elements {
				walk(element)
			}
		}
	}
	walk(copied)
	return copied
}

func (s substitution) apply(expr Expr) Expr {
	if s.bindings.Len() == 0 {
		return CopyExpr(expr)
	}
	switch e := expr.(type) {
	case *Var:
		replacement, ok := s.bindings.Get(e.Name)
		if !ok {
			copied := *e
			return &copied
		}
		if s.renaming {
			return &Var{Location: e.Location, Name: replacement.(*Var).Name}
		}
		return CopyExpr(replacement)
	case *Literal:
		copied := *e
		return &copied
	case *Let:
		return s.applyLet(e)
	case *LetRec:
		return s.applyLetRec(e)
	case *Lambda:
		renaming, inner := s.enterScope(patternVarNames(e.Param), e.Body)
		copied := *e
		copied.Param = renamePattern(e.Param, renaming)
		copied.Body = inner.apply(rename(e.Body, renaming))
		return &copied
	case *Match:
		copied := *e
		copied.Scrutinee = s.apply(e.Scrutinee)
		copied.Cases = make([]MatchCase, len(e.Cases))
		for i, c := range e.Cases {
			copied.Cases[i] = s.applyCase(c)
		}
		return &copied
	case *App:
		copied := *e
		copied.Func = s.apply(e.Func)
		copied.Args = s.applyAll(e.Args)
		return &copied
	case *Record:
		copied := *e
		copied.Fields = s.applyElements(e.Fields)
		return &copied
	case *RecordAccess:
		copied := *e
		copied.Record = s.apply(e.Record)
		return &copied
	case *RecordUpdate:
		copied := *e
		copied.Record = s.apply(e.Record)
		copied.Updates = s.applyElements(e.Updates)
		return &copied
	case *Variant:
		copied := *e
		copied.Args = s.applyAll(e.Args)
		return &copied
	case *BinOp:
		copied := *e
		copied.Left = s.apply(e.Left)
		copied.Right = s.apply(e.Right)
		return &copied
	case *UnaryOp:
		copied := *e
		copied.Operand = s.apply(e.Operand)
		return &copied
	case *TypeAnnotation:
		copied := *e
		copied.Expr = s.apply(e.Expr)
		copied.Type = CopyTypeExpr(e.Type)
		return &copied
	case *Unsafe:
		copied := *e
		copied.Expr = s.apply(e.Expr)
		return &copied
	case *Tuple:
		copied := *e
		copied.Elements = s.applyAll(e.Elements)
		return &copied
	default:
		return CopyExpr(expr)
	}
}

func (s substitution) applyLet(e *Let) Expr {
	bound := patternVarNames(e.Pattern)
	copied := *e
	if e.Recursive {
		// the value of a recursive binding sees the binding itself
		renaming, inner := s.enterScope(bound, e.Value, e.Body)
		copied.Pattern = renamePattern(e.Pattern, renaming)
		copied.Value = inner.apply(rename(e.Value, renaming))
		copied.Body = inner.apply(rename(e.Body, renaming))
		return &copied
	}
	renaming, inner := s.enterScope(bound, e.Body)
	copied.Pattern = renamePattern(e.Pattern, renaming)
	// the value is evaluated before the binding exists, so it uses the outer map
	copied.Value = s.apply(e.Value)
	copied.Body = inner.apply(rename(e.Body, renaming))
	return &copied
}

func (s substitution) applyLetRec(e *LetRec) Expr {
	boundSet := set.New[string](len(e.Bindings))
	scope := make([]Expr, 0, len(e.Bindings)+1)
	for _, b := range e.Bindings {
		boundSet.InsertSet(PatternVars(b.Pattern))
		scope = append(scope, b.Value)
	}
	scope = append(scope, e.Body)

	// all bindings are in scope of each other, so they are renamed together
	// and every value uses the restricted map
	renaming, inner := s.enterScope(sortedNames(boundSet), scope...)
	copied := *e
	copied.Bindings = make([]LetRecBinding, len(e.Bindings))
	for i, b := range e.Bindings {
		b.Pattern = renamePattern(b.Pattern, renaming)
		b.Value = inner.apply(rename(b.Value, renaming))
		copied.Bindings[i] = b
	}
	copied.Body = inner.apply(rename(e.Body, renaming))
	return &copied
}

func (s substitution) applyCase(c MatchCase) MatchCase {
	scope := []Expr{c.Body}
	if c.Guard != nil {
		scope = append(scope, c.Guard)
	}
	renaming, inner := s.enterScope(patternVarNames(c.Pattern), scope...)
	c.Pattern = renamePattern(c.Pattern, renaming)
	if c.Guard != nil {
		c.Guard = inner.apply(rename(c.Guard, renaming))
	}
	c.Body = inner.apply(rename(c.Body, renaming))
	return c
}

func (s substitution) applyAll(exprs []Expr) []Expr {
	if exprs == nil {
		return nil
	}
	applied := make([]Expr, len(exprs))
	for i, e := range exprs {
		applied[i] = s.apply(e)
	}
	return applied
}

func (s substitution) applyElements(elements []RecordElement) []RecordElement {
	applied := make([]RecordElement, len(elements))
	for i, element := range elements {
		switch element := element.(type) {
		case *RecordField:
			copied := *element
			copied.Value = s.apply(element.Value)
			applied[i] = &copied
		case *RecordSpread:
			copied := *element
			copied.Expr = s.apply(element.Expr)
			applied[i] = &copied
		}
	}
	return applied
}
