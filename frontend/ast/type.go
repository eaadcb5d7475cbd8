package ast

var (
	_ TypeExpr = (*TypeVar)(nil)
	_ TypeExpr = (*TypeConst)(nil)
	_ TypeExpr = (*TypeApp)(nil)
	_ TypeExpr = (*FunctionType)(nil)
	_ TypeExpr = (*RecordType)(nil)
	_ TypeExpr = (*VariantType)(nil)
	_ TypeExpr = (*UnionType)(nil)
	_ TypeExpr = (*TupleType)(nil)

	_ TypeDefinition = (*AliasTypeDef)(nil)
	_ TypeDefinition = (*RecordTypeDef)(nil)
	_ TypeDefinition = (*VariantTypeDef)(nil)
)

// TypeExpr is a type as written in the source, as opposed to an inferred type.
//
// The following type expressions are supported:
//
//	TypeVar:      'a
//	TypeConst:    Int
//	TypeApp:      List<Int>
//	FunctionType: (Int, Int) -> Int
//	RecordType:   { name: String }
//	VariantType:  Some(a) | None
//	UnionType:    Int | String
//	TupleType:    (Int, String)
type TypeExpr interface {
	Positioner
	typeExpr()
}

type TypeVar struct {
	Location
	Name string
}

type TypeConst struct {
	Location
	Name string
}

// TypeApp applies a type constructor to type arguments: `List<Int>`
type TypeApp struct {
	Location
	Constructor TypeExpr
	Args        []TypeExpr
}

type FunctionType struct {
	Location
	Params []TypeExpr
	Return TypeExpr
}

type RecordType struct {
	Location
	Fields []TypeField
}

// TypeField is a named field inside a RecordType or a RecordTypeDef
type TypeField struct {
	Location
	Name string
	Type TypeExpr
}

type VariantType struct {
	Location
	Constructors []VariantConstructor
}

// VariantConstructor is one alternative of a variant: `Some(a)`
type VariantConstructor struct {
	Location
	Name string
	Args []TypeExpr
}

type UnionType struct {
	Location
	Types []TypeExpr
}

type TupleType struct {
	Location
	Elements []TypeExpr
}

func (*TypeVar) typeExpr()      {}
func (*TypeConst) typeExpr()    {}
func (*TypeApp) typeExpr()      {}
func (*FunctionType) typeExpr() {}
func (*RecordType) typeExpr()   {}
func (*VariantType) typeExpr()  {}
func (*UnionType) typeExpr()    {}
func (*TupleType) typeExpr()    {}

// TypeDefinition is the right-hand side of a TypeDecl
type TypeDefinition interface {
	Positioner
	typeDefinition()
}

// AliasTypeDef: `type Name = Int`
type AliasTypeDef struct {
	Location
	Type TypeExpr
}

// RecordTypeDef: `type Point = { x: Int, y: Int }`
type RecordTypeDef struct {
	Location
	Fields []TypeField
}

// VariantTypeDef: `type Option<a> = Some(a) | None`
type VariantTypeDef struct {
	Location
	Constructors []VariantConstructor
}

func (*AliasTypeDef) typeDefinition()   {}
func (*RecordTypeDef) typeDefinition()  {}
func (*VariantTypeDef) typeDefinition() {}
