package vibefun

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
)

func (d *decoder) requiredPattern(parent node, key string) (ast.Pattern, error) {
	n, err := d.required(parent, key)
	if err != nil {
		return nil, err
	}
	return d.pattern(n)
}

func (d *decoder) pattern(n node) (ast.Pattern, error) {
	if n.isScalar() {
		if n.ShortTag() == "!!str" {
			if n.Value == "_" {
				return &ast.WildcardPattern{Location: n.loc}, nil
			}
			return &ast.VarPattern{Location: n.loc, Name: n.Value}, nil
		}
		value, err := literal(n, "")
		if err != nil {
			return nil, err
		}
		return &ast.LiteralPattern{Location: n.loc, Value: value}, nil
	}
	kind, err := n.kind()
	if err != nil {
		return nil, err
	}
	if isLiteralKind(kind) {
		value, err := d.literalOf(n, kind)
		if err != nil {
			return nil, err
		}
		return &ast.LiteralPattern{Location: n.loc, Value: value}, nil
	}

	switch kind {
	case "var":
		name, err := n.str("name")
		if err != nil {
			return nil, err
		}
		return &ast.VarPattern{Location: n.loc, Name: name}, nil
	case "wildcard":
		return &ast.WildcardPattern{Location: n.loc}, nil
	case "constructor":
		name, err := n.str("name")
		if err != nil {
			return nil, err
		}
		args, err := decodeList(d, n, "args", d.pattern)
		if err != nil {
			return nil, err
		}
		return &ast.ConstructorPattern{Location: n.loc, Constructor: name, Args: args}, nil
	case "record":
		fields, err := decodeList(d, n, "fields", d.recordPatternField)
		if err != nil {
			return nil, err
		}
		return &ast.RecordPattern{Location: n.loc, Fields: fields}, nil
	case "list":
		elements, err := decodeList(d, n, "elements", d.pattern)
		if err != nil {
			return nil, err
		}
		p := &ast.ListPattern{Location: n.loc, Elements: elements}
		if rest, ok, err := d.optional(n, "rest"); err != nil {
			return nil, err
		} else if ok {
			if p.Rest, err = d.pattern(rest); err != nil {
				return nil, err
			}
		}
		return p, nil
	case "or":
		alternatives, err := decodeList(d, n, "alternatives", d.pattern)
		if err != nil {
			return nil, err
		}
		return &ast.OrPattern{Location: n.loc, Alternatives: alternatives}, nil
	case "tuple":
		elements, err := decodeList(d, n, "elements", d.pattern)
		if err != nil {
			return nil, err
		}
		return &ast.TuplePattern{Location: n.loc, Elements: elements}, nil
	case "annotated":
		inner, err := d.requiredPattern(n, "pattern")
		if err != nil {
			return nil, err
		}
		t, err := d.requiredType(n, "type")
		if err != nil {
			return nil, err
		}
		return &ast.TypeAnnotatedPattern{Location: n.loc, Pattern: inner, Type: t}, nil
	default:
		return nil, n.errorf("unknown pattern kind %q", kind)
	}
}

func (d *decoder) recordPatternField(n node) (ast.RecordPatternField, error) {
	name, err := n.str("name")
	if err != nil {
		return ast.RecordPatternField{}, err
	}
	// `{name: a}` alone binds the field to a variable of the same name
	var p ast.Pattern = &ast.VarPattern{Location: n.loc, Name: name}
	if sub, ok, err := d.optional(n, "pattern"); err != nil {
		return ast.RecordPatternField{}, err
	} else if ok {
		if p, err = d.pattern(sub); err != nil {
			return ast.RecordPatternField{}, err
		}
	}
	return ast.RecordPatternField{Location: n.loc, Name: name, Pattern: p}, nil
}
