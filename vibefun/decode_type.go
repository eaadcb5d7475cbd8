package vibefun

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
	"strings"
)

func (d *decoder) requiredType(parent node, key string) (ast.TypeExpr, error) {
	n, err := d.required(parent, key)
	if err != nil {
		return nil, err
	}
	return d.typeExpr(n)
}

// typeExpr decodes a type. The scalar 'a is a type variable, any other scalar a type constant
func (d *decoder) typeExpr(n node) (ast.TypeExpr, error) {
	if n.isScalar() {
		if name, ok := strings.CutPrefix(n.Value, "'"); ok {
			return &ast.TypeVar{Location: n.loc, Name: name}, nil
		}
		return &ast.TypeConst{Location: n.loc, Name: n.Value}, nil
	}
	kind, err := n.kind()
	if err != nil {
		return nil, err
	}
	switch kind {
	case "var":
		name, err := n.str("name")
		if err != nil {
			return nil, err
		}
		return &ast.TypeVar{Location: n.loc, Name: name}, nil
	case "const":
		name, err := n.str("name")
		if err != nil {
			return nil, err
		}
		return &ast.TypeConst{Location: n.loc, Name: name}, nil
	case "app":
		constructor, err := d.requiredType(n, "constructor")
		if err != nil {
			return nil, err
		}
		args, err := decodeList(d, n, "args", d.typeExpr)
		if err != nil {
			return nil, err
		}
		return &ast.TypeApp{Location: n.loc, Constructor: constructor, Args: args}, nil
	case "function":
		params, err := decodeList(d, n, "params", d.typeExpr)
		if err != nil {
			return nil, err
		}
		ret, err := d.requiredType(n, "return")
		if err != nil {
			return nil, err
		}
		return &ast.FunctionType{Location: n.loc, Params: params, Return: ret}, nil
	case "record":
		fields, err := decodeList(d, n, "fields", d.typeField)
		if err != nil {
			return nil, err
		}
		return &ast.RecordType{Location: n.loc, Fields: fields}, nil
	case "variant":
		constructors, err := decodeList(d, n, "constructors", d.variantConstructor)
		if err != nil {
			return nil, err
		}
		return &ast.VariantType{Location: n.loc, Constructors: constructors}, nil
	case "union":
		types, err := decodeList(d, n, "types", d.typeExpr)
		if err != nil {
			return nil, err
		}
		return &ast.UnionType{Location: n.loc, Types: types}, nil
	case "tuple":
		elements, err := decodeList(d, n, "elements", d.typeExpr)
		if err != nil {
			return nil, err
		}
		return &ast.TupleType{Location: n.loc, Elements: elements}, nil
	default:
		return nil, n.errorf("unknown type kind %q", kind)
	}
}

func (d *decoder) typeField(n node) (ast.TypeField, error) {
	name, err := n.str("name")
	if err != nil {
		return ast.TypeField{}, err
	}
	t, err := d.requiredType(n, "type")
	if err != nil {
		return ast.TypeField{}, err
	}
	return ast.TypeField{Location: n.loc, Name: name, Type: t}, nil
}

func (d *decoder) variantConstructor(n node) (ast.VariantConstructor, error) {
	name, err := n.str("name")
	if err != nil {
		return ast.VariantConstructor{}, err
	}
	args, err := decodeList(d, n, "args", d.typeExpr)
	if err != nil {
		return ast.VariantConstructor{}, err
	}
	return ast.VariantConstructor{Location: n.loc, Name: name, Args: args}, nil
}

func (d *decoder) typeDefinition(n node) (ast.TypeDefinition, error) {
	kind, err := n.kind()
	if err != nil {
		return nil, err
	}
	switch kind {
	case "alias":
		t, err := d.requiredType(n, "type")
		if err != nil {
			return nil, err
		}
		return &ast.AliasTypeDef{Location: n.loc, Type: t}, nil
	case "record":
		fields, err := decodeList(d, n, "fields", d.typeField)
		if err != nil {
			return nil, err
		}
		return &ast.RecordTypeDef{Location: n.loc, Fields: fields}, nil
	case "variant":
		constructors, err := decodeList(d, n, "constructors", d.variantConstructor)
		if err != nil {
			return nil, err
		}
		return &ast.VariantTypeDef{Location: n.loc, Constructors: constructors}, nil
	default:
		return nil, n.errorf("unknown type definition kind %q", kind)
	}
}
