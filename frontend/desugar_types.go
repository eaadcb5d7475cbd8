package frontend

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ir"
)

// TypeExpr carries a type expression over to the core tree.
// Type expressions, record fields and variant constructors refer to each
// other, so they are desugared by this one group of methods
func (d *Desugarer) TypeExpr(t ast.TypeExpr) (ir.TypeExpr, error) {
	if t == nil {
		return nil, missingIn(nil, "type")
	}
	switch t := t.(type) {
	case *ast.TypeVar:
		return &ir.TypeVar{Location: t.Location, Name: t.Name}, nil
	case *ast.TypeConst:
		return &ir.TypeConst{Location: t.Location, Name: t.Name}, nil
	case *ast.TypeApp:
		constructor, err := d.typeOf(t, "type application", t.Constructor)
		if err != nil {
			return nil, err
		}
		args, err := d.typeExprs(t, "type application", t.Args)
		if err != nil {
			return nil, err
		}
		return &ir.TypeApp{Location: t.Location, Constructor: constructor, Args: args}, nil
	case *ast.FunctionType:
		params, err := d.typeExprs(t, "function type", t.Params)
		if err != nil {
			return nil, err
		}
		ret, err := d.typeOf(t, "function type", t.Return)
		if err != nil {
			return nil, err
		}
		return &ir.FunctionType{Location: t.Location, Params: params, Return: ret}, nil
	case *ast.RecordType:
		fields, err := d.typeFields(t.Fields)
		if err != nil {
			return nil, err
		}
		return &ir.RecordType{Location: t.Location, Fields: fields}, nil
	case *ast.VariantType:
		constructors, err := d.variantConstructors(t.Constructors)
		if err != nil {
			return nil, err
		}
		return &ir.VariantType{Location: t.Location, Constructors: constructors}, nil
	case *ast.UnionType:
		types, err := d.typeExprs(t, "union type", t.Types)
		if err != nil {
			return nil, err
		}
		return &ir.UnionType{Location: t.Location, Types: types}, nil
	case *ast.TupleType:
		elements, err := d.typeExprs(t, "tuple type", t.Elements)
		if err != nil {
			return nil, err
		}
		return &ir.TupleType{Location: t.Location, Elements: elements}, nil
	default:
		return nil, unknownNode(t, "type expression", t)
	}
}

func (d *Desugarer) typeExprs(parent ast.Positioner, in string, types []ast.TypeExpr) ([]ir.TypeExpr, error) {
	desugared := make([]ir.TypeExpr, len(types))
	for i, t := range types {
		var err error
		if desugared[i], err = d.typeOf(parent, in, t); err != nil {
			return nil, err
		}
	}
	return desugared, nil
}

func (d *Desugarer) typeFields(fields []ast.TypeField) ([]ir.TypeField, error) {
	desugared := make([]ir.TypeField, len(fields))
	for i, field := range fields {
		t, err := d.typeOf(field, "record field '"+field.Name+"'", field.Type)
		if err != nil {
			return nil, err
		}
		desugared[i] = ir.TypeField{Location: field.Location, Name: field.Name, Type: t}
	}
	return desugared, nil
}

func (d *Desugarer) variantConstructors(constructors []ast.VariantConstructor) ([]ir.VariantConstructor, error) {
	desugared := make([]ir.VariantConstructor, len(constructors))
	for i, c := range constructors {
		args, err := d.typeExprs(c, "constructor '"+c.Name+"'", c.Args)
		if err != nil {
			return nil, err
		}
		desugared[i] = ir.VariantConstructor{Location: c.Location, Name: c.Name, Args: args}
	}
	return desugared, nil
}

// TypeDefinition desugars the right-hand side of a type declaration
func (d *Desugarer) TypeDefinition(def ast.TypeDefinition) (ir.TypeDefinition, error) {
	switch def := def.(type) {
	case *ast.AliasTypeDef:
		t, err := d.typeOf(def, "type alias", def.Type)
		if err != nil {
			return nil, err
		}
		return &ir.AliasTypeDef{Location: def.Location, Type: t}, nil
	case *ast.RecordTypeDef:
		fields, err := d.typeFields(def.Fields)
		if err != nil {
			return nil, err
		}
		return &ir.RecordTypeDef{Location: def.Location, Fields: fields}, nil
	case *ast.VariantTypeDef:
		constructors, err := d.variantConstructors(def.Constructors)
		if err != nil {
			return nil, err
		}
		return &ir.VariantTypeDef{Location: def.Location, Constructors: constructors}, nil
	case nil:
		return nil, missingIn(nil, "type definition")
	default:
		return nil, unknownNode(def, "type definition", def)
	}
}
