package ir

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
)

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*LetRec)(nil)
	_ Expr = (*Lambda)(nil)
	_ Expr = (*App)(nil)
	_ Expr = (*Match)(nil)
	_ Expr = (*Record)(nil)
	_ Expr = (*RecordAccess)(nil)
	_ Expr = (*RecordUpdate)(nil)
	_ Expr = (*Variant)(nil)
	_ Expr = (*BinOp)(nil)
	_ Expr = (*UnaryOp)(nil)
	_ Expr = (*TypeAnnotation)(nil)
	_ Expr = (*Unsafe)(nil)
	_ Expr = (*Tuple)(nil)

	_ RecordElement = (*RecordField)(nil)
	_ RecordElement = (*RecordSpread)(nil)
)

// Expr is the base for all core expressions.
//
// The following expressions are supported:
//
//	Literal:        42, "a", true, ()
//	Var:            x
//	Let:            let p = v in body
//	LetRec:         let rec p1 = v1 and p2 = v2 in body
//	Lambda:         (p) => body
//	App:            f(a, b)
//	Match:          match e { p when g => body }
//	Record:         { a: 1, ...r }
//	RecordAccess:   r.a
//	RecordUpdate:   { r | a: 1, ...s }
//	Variant:        Cons(h, t)
//	BinOp:          a + b
//	UnaryOp:        -a
//	TypeAnnotation: (e : Int)
//	Unsafe:         unsafe { e }
//	Tuple:          (a, b)
//
// Core trees are immutable values: rewriting one means building new nodes,
// which Transform does.
type Expr interface {
	Positioner
	// ExprName is the Name of the syntax-type of the expression.
	ExprName() string
	// Describe is what to call this expression in error messages
	Describe() string

	// Transform should, in order:
	//  - copy the expression
	//  - call Transform(f) on any child expressions (thus copying them too)
	//  - call f on this Expr
	// In practice this means first copying the entire tree, applying f to each component bottom-up,
	// and returning the result
	Transform(f func(Expr) Expr) Expr

	// Children lists the direct child expressions in source order
	Children() []Expr
	exprNode()
}

func (*Literal) exprNode()        {}
func (*Var) exprNode()            {}
func (*Let) exprNode()            {}
func (*LetRec) exprNode()         {}
func (*Lambda) exprNode()         {}
func (*App) exprNode()            {}
func (*Match) exprNode()          {}
func (*Record) exprNode()         {}
func (*RecordAccess) exprNode()   {}
func (*RecordUpdate) exprNode()   {}
func (*Variant) exprNode()        {}
func (*BinOp) exprNode()          {}
func (*UnaryOp) exprNode()        {}
func (*TypeAnnotation) exprNode() {}
func (*Unsafe) exprNode()         {}
func (*Tuple) exprNode()          {}

func (*Literal) ExprName() string        { return "Literal" }
func (*Var) ExprName() string            { return "Var" }
func (*Let) ExprName() string            { return "Let" }
func (*LetRec) ExprName() string         { return "LetRec" }
func (*Lambda) ExprName() string         { return "Lambda" }
func (*App) ExprName() string            { return "App" }
func (*Match) ExprName() string          { return "Match" }
func (*Record) ExprName() string         { return "Record" }
func (*RecordAccess) ExprName() string   { return "RecordAccess" }
func (*RecordUpdate) ExprName() string   { return "RecordUpdate" }
func (*Variant) ExprName() string        { return "Variant" }
func (*BinOp) ExprName() string          { return "BinOp" }
func (*UnaryOp) ExprName() string        { return "UnaryOp" }
func (*TypeAnnotation) ExprName() string { return "TypeAnnotation" }
func (*Unsafe) ExprName() string         { return "Unsafe" }
func (*Tuple) ExprName() string          { return "Tuple" }

func (e *Literal) Describe() string      { return e.Value.TypeName() + " literal" }
func (*Var) Describe() string            { return "variable" }
func (*Let) Describe() string            { return "let binding" }
func (*LetRec) Describe() string         { return "recursive let group" }
func (*Lambda) Describe() string         { return "function" }
func (*App) Describe() string            { return "function call" }
func (*Match) Describe() string          { return "match expression" }
func (*Record) Describe() string         { return "record" }
func (*RecordAccess) Describe() string   { return "record access" }
func (*RecordUpdate) Describe() string   { return "record update" }
func (e *Variant) Describe() string      { return "'" + e.Constructor + "' variant" }
func (e *BinOp) Describe() string        { return "'" + e.Op.String() + "' operation" }
func (*UnaryOp) Describe() string        { return "unary operation" }
func (*TypeAnnotation) Describe() string { return "type annotation" }
func (*Unsafe) Describe() string         { return "unsafe block" }
func (*Tuple) Describe() string          { return "tuple" }

type Literal struct {
	Location
	Value ast.LitValue
}

func (e *Literal) Transform(f func(Expr) Expr) Expr {
	copied := *e
	return f(&copied)
}
func (e *Literal) Children() []Expr { return nil }

// Var (or Identifier)
type Var struct {
	Location
	Name string
}

func (e *Var) Transform(f func(Expr) Expr) Expr {
	copied := *e
	return f(&copied)
}
func (e *Var) Children() []Expr { return nil }

// Let binds a single Pattern to Value for the rest of Body.
// When Recursive is set, Value can refer to the variables Pattern binds
type Let struct {
	Location
	Pattern   Pattern
	Value     Expr
	Body      Expr
	Mutable   bool
	Recursive bool
}

func (e *Let) Transform(f func(Expr) Expr) Expr {
	copied := *e
	copied.Pattern = CopyPattern(e.Pattern)
	copied.Value = e.Value.Transform(f)
	copied.Body = e.Body.Transform(f)
	return f(&copied)
}
func (e *Let) Children() []Expr { return []Expr{e.Value, e.Body} }

// LetRec is a group of simultaneous, mutually recursive bindings sharing Body.
// Every binding value is in scope of every binding
type LetRec struct {
	Location
	Bindings []LetRecBinding
	Body     Expr
}

// LetRecBinding pairs a Pattern and its Value inside a LetRec
type LetRecBinding struct {
	Location
	Pattern Pattern
	Value   Expr
	Mutable bool
}

func (e *LetRec) Transform(f func(Expr) Expr) Expr {
	copied := *e
	copied.Bindings = make([]LetRecBinding, len(e.Bindings))
	for i, b := range e.Bindings {
		// b is not a pointer so this will copy it
		b.Pattern = CopyPattern(b.Pattern)
		b.Value = b.Value.Transform(f)
		copied.Bindings[i] = b
	}
	copied.Body = e.Body.Transform(f)
	return f(&copied)
}
func (e *LetRec) Children() []Expr {
	children := make([]Expr, 0, len(e.Bindings)+1)
	for _, b := range e.Bindings {
		children = append(children, b.Value)
	}
	return append(children, e.Body)
}

// Lambda abstraction with exactly one parameter: `(p) => body`
type Lambda struct {
	Location
	Param Pattern
	Body  Expr
}

func (e *Lambda) Transform(f func(Expr) Expr) Expr {
	copied := *e
	copied.Param = CopyPattern(e.Param)
	copied.Body = e.Body.Transform(f)
	return f(&copied)
}
func (e *Lambda) Children() []Expr { return []Expr{e.Body} }

// App is a function call: `f(a, b)`
type App struct {
	Location
	Func Expr
	Args []Expr
}

func (e *App) Transform(f func(Expr) Expr) Expr {
	copied := *e
	copied.Func = e.Func.Transform(f)
	copied.Args = transformAll(e.Args, f)
	return f(&copied)
}
func (e *App) Children() []Expr { return append([]Expr{e.Func}, e.Args...) }

type Match struct {
	Location
	Scrutinee Expr
	Cases     []MatchCase
}

// MatchCase is one arm of a Match. Guard is nil when the case has no guard
type MatchCase struct {
	Location
	Pattern Pattern
	Guard   Expr
	Body    Expr
}

func (c *MatchCase) TransformChildExprs(f func(Expr) Expr) MatchCase {
	copied := *c
	copied.Pattern = CopyPattern(c.Pattern)
	if c.Guard != nil {
		copied.Guard = c.Guard.Transform(f)
	}
	copied.Body = c.Body.Transform(f)
	return copied
}

func (e *Match) Transform(f func(Expr) Expr) Expr {
	copied := *e
	copied.Scrutinee = e.Scrutinee.Transform(f)
	copied.Cases = make([]MatchCase, len(e.Cases))
	for i, c := range e.Cases {
		copied.Cases[i] = c.TransformChildExprs(f)
	}
	return f(&copied)
}
func (e *Match) Children() []Expr {
	children := []Expr{e.Scrutinee}
	for _, c := range e.Cases {
		if c.Guard != nil {
			children = append(children, c.Guard)
		}
		children = append(children, c.Body)
	}
	return children
}

// RecordElement is an entry of a Record or a RecordUpdate, a RecordField or a RecordSpread
type RecordElement interface {
	Positioner
	// ElementValue is the expression the element carries
	ElementValue() Expr
	transformElement(f func(Expr) Expr) RecordElement
}

type RecordField struct {
	Location
	Name  string
	Value Expr
}

// RecordSpread copies every field of Expr: `...r`
type RecordSpread struct {
	Location
	Expr Expr
}

func (e *RecordField) ElementValue() Expr  { return e.Value }
func (e *RecordSpread) ElementValue() Expr { return e.Expr }

func (e *RecordField) transformElement(f func(Expr) Expr) RecordElement {
	copied := *e
	copied.Value = e.Value.Transform(f)
	return &copied
}
func (e *RecordSpread) transformElement(f func(Expr) Expr) RecordElement {
	copied := *e
	copied.Expr = e.Expr.Transform(f)
	return &copied
}

func transformElements(elements []RecordElement, f func(Expr) Expr) []RecordElement {
	transformed := make([]RecordElement, len(elements))
	for i, element := range elements {
		transformed[i] = element.transformElement(f)
	}
	return transformed
}

func elementValues(elements []RecordElement) []Expr {
	values := make([]Expr, len(elements))
	for i, element := range elements {
		values[i] = element.ElementValue()
	}
	return values
}

type Record struct {
	Location
	Fields []RecordElement
}

func (e *Record) Transform(f func(Expr) Expr) Expr {
	copied := *e
	copied.Fields = transformElements(e.Fields, f)
	return f(&copied)
}
func (e *Record) Children() []Expr { return elementValues(e.Fields) }

// RecordAccess selects a field: `r.a`
type RecordAccess struct {
	Location
	Record Expr
	Field  string
}

func (e *RecordAccess) Transform(f func(Expr) Expr) Expr {
	copied := *e
	copied.Record = e.Record.Transform(f)
	return f(&copied)
}
func (e *RecordAccess) Children() []Expr { return []Expr{e.Record} }

// RecordUpdate copies Record and applies Updates in order, later entries overriding earlier ones
type RecordUpdate struct {
	Location
	Record  Expr
	Updates []RecordElement
}

func (e *RecordUpdate) Transform(f func(Expr) Expr) Expr {
	copied := *e
	copied.Record = e.Record.Transform(f)
	copied.Updates = transformElements(e.Updates, f)
	return f(&copied)
}
func (e *RecordUpdate) Children() []Expr { return append([]Expr{e.Record}, elementValues(e.Updates)...) }

// Variant applies the constructor named Constructor to positional Args: `Cons(h, t)`.
// It encodes lists (Cons/Nil) and any other sum type
type Variant struct {
	Location
	Constructor string
	Args        []Expr
}

func (e *Variant) Transform(f func(Expr) Expr) Expr {
	copied := *e
	copied.Args = transformAll(e.Args, f)
	return f(&copied)
}
func (e *Variant) Children() []Expr { return e.Args }

type BinOp struct {
	Location
	Op    BinaryOperator
	Left  Expr
	Right Expr
}

func (e *BinOp) Transform(f func(Expr) Expr) Expr {
	copied := *e
	copied.Left = e.Left.Transform(f)
	copied.Right = e.Right.Transform(f)
	return f(&copied)
}
func (e *BinOp) Children() []Expr { return []Expr{e.Left, e.Right} }

type UnaryOp struct {
	Location
	Op      UnaryOperator
	Operand Expr
}

func (e *UnaryOp) Transform(f func(Expr) Expr) Expr {
	copied := *e
	copied.Operand = e.Operand.Transform(f)
	return f(&copied)
}
func (e *UnaryOp) Children() []Expr { return []Expr{e.Operand} }

type TypeAnnotation struct {
	Location
	Expr Expr
	Type TypeExpr
}

func (e *TypeAnnotation) Transform(f func(Expr) Expr) Expr {
	copied := *e
	copied.Expr = e.Expr.Transform(f)
	copied.Type = CopyTypeExpr(e.Type)
	return f(&copied)
}
func (e *TypeAnnotation) Children() []Expr { return []Expr{e.Expr} }

type Unsafe struct {
	Location
	Expr Expr
}

func (e *Unsafe) Transform(f func(Expr) Expr) Expr {
	copied := *e
	copied.Expr = e.Expr.Transform(f)
	return f(&copied)
}
func (e *Unsafe) Children() []Expr { return []Expr{e.Expr} }

type Tuple struct {
	Location
	Elements []Expr
}

func (e *Tuple) Transform(f func(Expr) Expr) Expr {
	copied := *e
	copied.Elements = transformAll(e.Elements, f)
	return f(&copied)
}
func (e *Tuple) Children() []Expr { return e.Elements }

func transformAll(exprs []Expr, f func(Expr) Expr) []Expr {
	if exprs == nil {
		return nil
	}
	transformed := make([]Expr, len(exprs))
	for i, e := range exprs {
		transformed[i] = e.Transform(f)
	}
	return transformed
}
