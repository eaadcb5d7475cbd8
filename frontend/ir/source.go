package ir

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
	"slices"
	"strings"
)

// Location is shared with the surface tree so that positions flow through desugaring unchanged
type Location = ast.Location

// Positioner allows finding the location in the original source file.
// The easiest way to be a Positioner is to embed a Location
type Positioner = ast.Positioner

var (
	_ Declaration = (*LetDecl)(nil)
	_ Declaration = (*LetRecGroupDecl)(nil)
	_ Declaration = (*TypeDecl)(nil)
	_ Declaration = (*ExternalDecl)(nil)
	_ Declaration = (*ExternalTypeDecl)(nil)
	_ Declaration = (*ImportDecl)(nil)
)

// Module is the desugared form of an ast.Module.
// Imports only holds ImportDecl, in source order
type Module struct {
	Location
	Imports      []Declaration
	Declarations []Declaration
}

// String renders every import then every declaration, one per line
func (m Module) String() string {
	sb := &strings.Builder{}
	for _, decl := range slices.Concat(m.Imports, m.Declarations) {
		sb.WriteString(DeclarationString(decl))
		sb.WriteString("\n")
	}
	return sb.String()
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
func (*ImportDecl) declNode()       {}

func (*LetDecl) Describe() string          { return "let declaration" }
func (*LetRecGroupDecl) Describe() string  { return "recursive let declaration" }
func (*TypeDecl) Describe() string         { return "type declaration" }
func (*ExternalDecl) Describe() string     { return "external declaration" }
func (*ExternalTypeDecl) Describe() string { return "external type declaration" }
func (*ImportDecl) Describe() string       { return "import" }

type LetDecl struct {
	Location
	Pattern   Pattern
	Value     Expr
	Mutable   bool
	Recursive bool
	Exported  bool
}

type LetRecGroupDecl struct {
	Location
	Bindings []LetRecBinding
	Exported bool
}

type TypeDecl struct {
	Location
	Name       string
	Params     []string
	Definition TypeDefinition
	Exported   bool
}

// ExternalDecl is a single external value. Items of an external block
// become one ExternalDecl each, sharing the block's From and Exported
type ExternalDecl struct {
	Location
	Name     string
	Type     TypeExpr
	JSName   string
	From     string
	Exported bool
}

type ExternalTypeDecl struct {
	Location
	Name     string
	Type     TypeExpr
	From     string
	Exported bool
}

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
