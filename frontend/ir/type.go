package ir

import (
	"strings"
)

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

// TypeExpr is a type as written by the user, carried through desugaring
// for the type checker to validate. It is not an inferred type
type TypeExpr interface {
	Positioner
	// ShowIn renders the type, parenthesised when outerPrecedence binds tighter than it
	ShowIn(outerPrecedence uint16) string
	typeExpr()
}

func TypeString(t TypeExpr) string {
	if t == nil {
		return "nil"
	}
	return t.ShowIn(0)
}

func withParensIf(when bool, str string) string {
	if when {
		return "(" + str + ")"
	}
	return str
}

func showTypes(types []TypeExpr, sep string) string {
	shown := make([]string, len(types))
	for i, t := range types {
		shown[i] = t.ShowIn(0)
	}
	return strings.Join(shown, sep)
}

type TypeVar struct {
	Location
	Name string
}

func (t *TypeVar) ShowIn(uint16) string { return "'" + t.Name }

type TypeConst struct {
	Location
	Name string
}

func (t *TypeConst) ShowIn(uint16) string { return t.Name }

type TypeApp struct {
	Location
	Constructor TypeExpr
	Args        []TypeExpr
}

func (t *TypeApp) ShowIn(uint16) string {
	return t.Constructor.ShowIn(50) + "<" + showTypes(t.Args, ", ") + ">"
}

type FunctionType struct {
	Location
	Params []TypeExpr
	Return TypeExpr
}

func (t *FunctionType) ShowIn(outerPrecedence uint16) string {
	var thisPrecedence uint16 = 10
	str := "(" + showTypes(t.Params, ", ") + ") -> " + t.Return.ShowIn(thisPrecedence)
	return withParensIf(outerPrecedence > thisPrecedence, str)
}

type RecordType struct {
	Location
	Fields []TypeField
}

type TypeField struct {
	Location
	Name string
	Type TypeExpr
}

func showFields(fields []TypeField) string {
	sb := strings.Builder{}
	sb.WriteString("{ ")
	for i, field := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(field.Name + ": " + field.Type.ShowIn(0))
	}
	sb.WriteString(" }")
	return sb.String()
}

func (t *RecordType) ShowIn(uint16) string { return showFields(t.Fields) }

type VariantType struct {
	Location
	Constructors []VariantConstructor
}

type VariantConstructor struct {
	Location
	Name string
	Args []TypeExpr
}

func showConstructors(constructors []VariantConstructor) string {
	shown := make([]string, len(constructors))
	for i, c := range constructors {
		if len(c.Args) == 0 {
			shown[i] = c.Name
		} else {
			shown[i] = c.Name + "(" + showTypes(c.Args, ", ") + ")"
		}
	}
	return strings.Join(shown, " | ")
}

func (t *VariantType) ShowIn(outerPrecedence uint16) string {
	return withParensIf(outerPrecedence > 20, showConstructors(t.Constructors))
}

type UnionType struct {
	Location
	Types []TypeExpr
}

func (t *UnionType) ShowIn(outerPrecedence uint16) string {
	var thisPrecedence uint16 = 20
	shown := make([]string, len(t.Types))
	for i, member := range t.Types {
		shown[i] = member.ShowIn(thisPrecedence + 1)
	}
	return withParensIf(outerPrecedence > thisPrecedence, strings.Join(shown, " | "))
}

type TupleType struct {
	Location
	Elements []TypeExpr
}

func (t *TupleType) ShowIn(uint16) string { return "(" + showTypes(t.Elements, ", ") + ")" }

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

type AliasTypeDef struct {
	Location
	Type TypeExpr
}

type RecordTypeDef struct {
	Location
	Fields []TypeField
}

type VariantTypeDef struct {
	Location
	Constructors []VariantConstructor
}

func (*AliasTypeDef) typeDefinition()   {}
func (*RecordTypeDef) typeDefinition()  {}
func (*VariantTypeDef) typeDefinition() {}

// TypeDefinitionString renders the right-hand side of a type declaration
func TypeDefinitionString(def TypeDefinition) string {
	switch def := def.(type) {
	case *AliasTypeDef:
		return TypeString(def.Type)
	case *RecordTypeDef:
		return showFields(def.Fields)
	case *VariantTypeDef:
		return showConstructors(def.Constructors)
	default:
		return "nil"
	}
}

// CopyTypeExpr returns a deep copy of t
func CopyTypeExpr(t TypeExpr) TypeExpr {
	switch t := t.(type) {
	case *TypeVar:
		copied := *t
		return &copied
	case *TypeConst:
		copied := *t
		return &copied
	case *TypeApp:
		copied := *t
		copied.Constructor = CopyTypeExpr(t.Constructor)
		copied.Args = copyTypeExprs(t.Args)
		return &copied
	case *FunctionType:
		copied := *t
		copied.Params = copyTypeExprs(t.Params)
		copied.Return = CopyTypeExpr(t.Return)
		return &copied
	case *RecordType:
		copied := *t
		copied.Fields = copyTypeFields(t.Fields)
		return &copied
	case *VariantType:
		copied := *t
		copied.Constructors = make([]VariantConstructor, len(t.Constructors))
		for i, c := range t.Constructors {
			c.Args = copyTypeExprs(c.Args)
			copied.Constructors[i] = c
		}
		return &copied
	case *UnionType:
		copied := *t
		copied.Types = copyTypeExprs(t.Types)
		return &copied
	case *TupleType:
		copied := *t
		copied.Elements = copyTypeExprs(t.Elements)
		return &copied
	default:
		return t
	}
}

func copyTypeExprs(types []TypeExpr) []TypeExpr {
	if types == nil {
		return nil
	}
	copied := make([]TypeExpr, len(types))
	for i, t := range types {
		copied[i] = CopyTypeExpr(t)
	}
	return copied
}

func copyTypeFields(fields []TypeField) []TypeField {
	copied := make([]TypeField, len(fields))
	for i, field := range fields {
		field.Type = CopyTypeExpr(field.Type)
		copied[i] = field
	}
	return copied
}
