package ast

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Let)(nil)
	_ Expr = (*LetRec)(nil)
	_ Expr = (*Lambda)(nil)
	_ Expr = (*App)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Match)(nil)
	_ Expr = (*Record)(nil)
	_ Expr = (*RecordAccess)(nil)
	_ Expr = (*RecordUpdate)(nil)
	_ Expr = (*List)(nil)
	_ Expr = (*ListCons)(nil)
	_ Expr = (*BinOp)(nil)
	_ Expr = (*UnaryOp)(nil)
	_ Expr = (*Pipe)(nil)
	_ Expr = (*Block)(nil)
	_ Expr = (*TypeAnnotation)(nil)
	_ Expr = (*Unsafe)(nil)
	_ Expr = (*Tuple)(nil)
	_ Expr = (*While)(nil)

	_ RecordElement = (*RecordField)(nil)
	_ RecordElement = (*RecordSpread)(nil)
	_ ListElement   = (*ListItem)(nil)
	_ ListElement   = (*ListSpread)(nil)
)

// Expr is the base for all surface expressions, as produced by the parser.
//
// The following expressions are supported:
//
//	Literal:        42, "a", true, ()
//	Var:            x
//	Let:            let x = 1 in x
//	LetRec:         let rec f = ... and g = ... in e
//	Lambda:         (a, b) => a
//	App:            f(a, b)
//	If:             if c then a else b
//	Match:          match e { p when g => a | q | r => b }
//	Record:         { a: 1, ...r }
//	RecordAccess:   r.a
//	RecordUpdate:   { r | a: 1, ...s }
//	List:           [1, ...xs, 2]
//	ListCons:       h :: t
//	BinOp:          a + b, f >> g
//	UnaryOp:        -a
//	Pipe:           x |> f
//	Block:          { let a = 1; a }
//	TypeAnnotation: (e : Int)
//	Unsafe:         unsafe { e }
//	Tuple:          (a, b)
//	While:          while c { e }
type Expr interface {
	Positioner
	// Describe is what to call this expression in error messages
	Describe() string
	exprNode()
}

func (*Literal) exprNode()        {}
func (*Var) exprNode()            {}
func (*Let) exprNode()            {}
func (*LetRec) exprNode()         {}
func (*Lambda) exprNode()         {}
func (*App) exprNode()            {}
func (*If) exprNode()             {}
func (*Match) exprNode()          {}
func (*Record) exprNode()         {}
func (*RecordAccess) exprNode()   {}
func (*RecordUpdate) exprNode()   {}
func (*List) exprNode()           {}
func (*ListCons) exprNode()       {}
func (*BinOp) exprNode()          {}
func (*UnaryOp) exprNode()        {}
func (*Pipe) exprNode()           {}
func (*Block) exprNode()          {}
func (*TypeAnnotation) exprNode() {}
func (*Unsafe) exprNode()         {}
func (*Tuple) exprNode()          {}
func (*While) exprNode()          {}

func (e *Literal) Describe() string      { return e.Value.TypeName() + " literal" }
func (*Var) Describe() string            { return "variable" }
func (*Let) Describe() string            { return "let binding" }
func (*LetRec) Describe() string         { return "recursive let group" }
func (*Lambda) Describe() string         { return "function" }
func (*App) Describe() string            { return "function call" }
func (*If) Describe() string             { return "if expression" }
func (*Match) Describe() string          { return "match expression" }
func (*Record) Describe() string         { return "record" }
func (*RecordAccess) Describe() string   { return "record access" }
func (*RecordUpdate) Describe() string   { return "record update" }
func (*List) Describe() string           { return "list literal" }
func (*ListCons) Describe() string       { return "list cons" }
func (e *BinOp) Describe() string        { return "'" + e.Op.String() + "' operation" }
func (*UnaryOp) Describe() string        { return "unary operation" }
func (*Pipe) Describe() string           { return "pipe" }
func (*Block) Describe() string          { return "block" }
func (*TypeAnnotation) Describe() string { return "type annotation" }
func (*Unsafe) Describe() string         { return "unsafe block" }
func (*Tuple) Describe() string          { return "tuple" }
func (*While) Describe() string          { return "while loop" }

type Literal struct {
	Location
	Value LitValue
}

// Var is a reference to a variable
type Var struct {
	Location
	Name string
}

// Let binds Pattern to Value for the rest of Body.
// Recursive can be true for functions only
type Let struct {
	Location
	Pattern   Pattern
	Value     Expr
	Body      Expr
	Mutable   bool
	Recursive bool
}

// LetRec is a group of mutually recursive bindings: `let rec f = ... and g = ... in e`
type LetRec struct {
	Location
	Bindings []LetRecBinding
	Body     Expr
}

// LetRecBinding is one binding of a LetRec or a LetRecGroupDecl
type LetRecBinding struct {
	Location
	Pattern Pattern
	Value   Expr
	Mutable bool
}

// Lambda abstraction: `(a, b) => a`
type Lambda struct {
	Location
	Params []Pattern
	Body   Expr
}

// App is a function call: `f(a, b)`
type App struct {
	Location
	Func Expr
	Args []Expr
}

type If struct {
	Location
	Cond Expr
	Then Expr
	Else Expr
}

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

// RecordElement is an entry of a Record or a RecordUpdate, a RecordField or a RecordSpread
type RecordElement interface {
	Positioner
	recordElement()
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

func (*RecordField) recordElement()  {}
func (*RecordSpread) recordElement() {}

type Record struct {
	Location
	Fields []RecordElement
}

// RecordAccess selects a field: `r.a`
type RecordAccess struct {
	Location
	Record Expr
	Field  string
}

// RecordUpdate copies Record and applies Updates in order: `{ r | a: 1, ...s }`
type RecordUpdate struct {
	Location
	Record  Expr
	Updates []RecordElement
}

// ListElement is an entry of a List, a ListItem or a ListSpread
type ListElement interface {
	Positioner
	listElement()
}

type ListItem struct {
	Location
	Expr Expr
}

// ListSpread inlines every element of Expr: `...xs`
type ListSpread struct {
	Location
	Expr Expr
}

func (*ListItem) listElement()   {}
func (*ListSpread) listElement() {}

type List struct {
	Location
	Elements []ListElement
}

// ListCons prepends Head to Tail: `h :: t`
type ListCons struct {
	Location
	Head Expr
	Tail Expr
}

type BinOp struct {
	Location
	Op    BinaryOperator
	Left  Expr
	Right Expr
}

type UnaryOp struct {
	Location
	Op      UnaryOperator
	Operand Expr
}

// Pipe applies Func to Expr: `x |> f`
type Pipe struct {
	Location
	Expr Expr
	Func Expr
}

// Block is a sequence of expressions, where every expression but the last must be a Let
type Block struct {
	Location
	Exprs []Expr
}

type TypeAnnotation struct {
	Location
	Expr Expr
	Type TypeExpr
}

type Unsafe struct {
	Location
	Expr Expr
}

type Tuple struct {
	Location
	Elements []Expr
}

type While struct {
	Location
	Cond Expr
	Body Expr
}
