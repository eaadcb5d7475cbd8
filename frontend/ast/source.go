package ast

import (
	"fmt"
)

var (
	_ Declaration = (*LetDecl)(nil)
	_ Declaration = (*LetRecGroupDecl)(nil)
	_ Declaration = (*TypeDecl)(nil)
	_ Declaration = (*ExternalDecl)(nil)
	_ Declaration = (*ExternalTypeDecl)(nil)
	_ Declaration = (*ExternalBlock)(nil)
	_ Declaration = (*ImportDecl)(nil)

	_ ExternalItem = (*ExternalValue)(nil)
	_ ExternalItem = (*ExternalType)(nil)
)

// Module is a whole parsed source file
type Module struct {
	Location
	Imports      []Declaration
	Declarations []Declaration
}

func (m Module) String() string {
	return fmt.Sprintf("module at %v (%d imports, %d declarations)", m.Location, len(m.Imports), len(m.Declarations))
}

// Declaration is a top-level declaration in a Module
type Declaration interface {
	Positioner
	// Describe is what to call this declaration in error messages
	Describe() string
	declNode()
}

func (*LetDecl) declNode()          {}
func (*LetRecGroupDecl) declNode()  {}
func (*TypeDecl) declNode()         {}
func (*ExternalDecl) declNode()     {}
func (*ExternalTypeDecl) declNode() {}
func (*ExternalBlock) declNode()    {}
func (*ImportDecl) declNode()       {}

func (*LetDecl) Describe() string          { return "let declaration" }
func (*LetRecGroupDecl) Describe() string  { return "recursive let declaration" }
func (*TypeDecl) Describe() string         { return "type declaration" }
func (*ExternalDecl) Describe() string     { return "external declaration" }
func (*ExternalTypeDecl) Describe() string { return "external type declaration" }
func (*ExternalBlock) Describe() string    { return "external block" }
func (*ImportDecl) Describe() string       { return "import" }

// LetDecl: `let x = 1`
type LetDecl struct {
	Location
	Pattern   Pattern
	Value     Expr
	Mutable   bool
	Recursive bool
	Exported  bool
}

// LetRecGroupDecl: `let rec f = ... and g = ...`
type LetRecGroupDecl struct {
	Location
	Bindings []LetRecBinding
	Exported bool
}

// TypeDecl: `type Option<a> = Some(a) | None`
type TypeDecl struct {
	Location
	Name       string
	Params     []string
	Definition TypeDefinition
	Exported   bool
}

// ExternalDecl binds Name to a value implemented in the host language.
// From is empty when the value is global
type ExternalDecl struct {
	Location
	Name     string
	Type     TypeExpr
	JSName   string
	From     string
	Exported bool
}

// ExternalTypeDecl declares a type implemented in the host language
type ExternalTypeDecl struct {
	Location
	Name     string
	Type     TypeExpr
	Exported bool
}

// ExternalBlock groups several externals sharing From and Exported:
//
//	export external from "node:fs" {
//	    readFile: (String) -> String = "readFileSync"
//	    type Stats = { size: Int }
//	}
type ExternalBlock struct {
	Location
	Items    []ExternalItem
	From     string
	Exported bool
}

// ExternalItem is an entry of an ExternalBlock, an ExternalValue or an ExternalType
type ExternalItem interface {
	Positioner
	externalItem()
}

type ExternalValue struct {
	Location
	Name   string
	Type   TypeExpr
	JSName string
}

type ExternalType struct {
	Location
	Name string
	Type TypeExpr
}

func (*ExternalValue) externalItem() {}
func (*ExternalType) externalItem()  {}

// ImportDecl: `import { a, type T as U } from "./mod"`
type ImportDecl struct {
	Location
	Items []ImportItem
	From  string
}

// ImportItem is one imported name. Alias is empty when the name is not renamed
type ImportItem struct {
	Location
	Name   string
	Alias  string
	IsType bool
}
