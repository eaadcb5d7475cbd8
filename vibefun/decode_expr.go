package vibefun

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
)

func (d *decoder) expr(n node) (ast.Expr, error) {
	if n.isScalar() {
		if n.ShortTag() == "!!str" {
			return &ast.Var{Location: n.loc, Name: n.Value}, nil
		}
		value, err := literal(n, "")
		if err != nil {
			return nil, err
		}
		return &ast.Literal{Location: n.loc, Value: value}, nil
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
		return &ast.Literal{Location: n.loc, Value: value}, nil
	}

	// sub decodes the required child expression under key
	sub := func(key string) (ast.Expr, error) {
		child, err := d.required(n, key)
		if err != nil {
			return nil, err
		}
		return d.expr(child)
	}

	switch kind {
	case "var":
		name, err := n.str("name")
		if err != nil {
			return nil, err
		}
		return &ast.Var{Location: n.loc, Name: name}, nil
	case "let":
		e := &ast.Let{Location: n.loc}
		if e.Pattern, err = d.requiredPattern(n, "pattern"); err != nil {
			return nil, err
		}
		if e.Value, err = sub("value"); err != nil {
			return nil, err
		}
		// lets inside a block have no body of their own
		if body, ok, err := d.optional(n, "body"); err != nil {
			return nil, err
		} else if ok {
			if e.Body, err = d.expr(body); err != nil {
				return nil, err
			}
		}
		if e.Mutable, err = n.flag("mutable"); err != nil {
			return nil, err
		}
		if e.Recursive, err = n.flag("recursive"); err != nil {
			return nil, err
		}
		return e, nil
	case "letrec":
		bindings, err := decodeList(d, n, "bindings", d.letRecBinding)
		if err != nil {
			return nil, err
		}
		body, err := sub("body")
		if err != nil {
			return nil, err
		}
		return &ast.LetRec{Location: n.loc, Bindings: bindings, Body: body}, nil
	case "lambda":
		params, err := decodeList(d, n, "params", d.pattern)
		if err != nil {
			return nil, err
		}
		body, err := sub("body")
		if err != nil {
			return nil, err
		}
		return &ast.Lambda{Location: n.loc, Params: params, Body: body}, nil
	case "app":
		fn, err := sub("func")
		if err != nil {
			return nil, err
		}
		args, err := decodeList(d, n, "args", d.expr)
		if err != nil {
			return nil, err
		}
		return &ast.App{Location: n.loc, Func: fn, Args: args}, nil
	case "if":
		e := &ast.If{Location: n.loc}
		if e.Cond, err = sub("cond"); err != nil {
			return nil, err
		}
		if e.Then, err = sub("then"); err != nil {
			return nil, err
		}
		if otherwise, ok, err := d.optional(n, "else"); err != nil {
			return nil, err
		} else if ok {
			if e.Else, err = d.expr(otherwise); err != nil {
				return nil, err
			}
		}
		return e, nil
	case "match":
		scrutinee, err := sub("scrutinee")
		if err != nil {
			return nil, err
		}
		cases, err := decodeList(d, n, "cases", d.matchCase)
		if err != nil {
			return nil, err
		}
		return &ast.Match{Location: n.loc, Scrutinee: scrutinee, Cases: cases}, nil
	case "record":
		fields, err := decodeList(d, n, "fields", d.recordElement)
		if err != nil {
			return nil, err
		}
		return &ast.Record{Location: n.loc, Fields: fields}, nil
	case "access":
		record, err := sub("record")
		if err != nil {
			return nil, err
		}
		field, err := n.str("field")
		if err != nil {
			return nil, err
		}
		return &ast.RecordAccess{Location: n.loc, Record: record, Field: field}, nil
	case "update":
		record, err := sub("record")
		if err != nil {
			return nil, err
		}
		updates, err := decodeList(d, n, "updates", d.recordElement)
		if err != nil {
			return nil, err
		}
		return &ast.RecordUpdate{Location: n.loc, Record: record, Updates: updates}, nil
	case "list":
		elements, err := decodeList(d, n, "elements", d.listElement)
		if err != nil {
			return nil, err
		}
		return &ast.List{Location: n.loc, Elements: elements}, nil
	case "cons":
		head, err := sub("head")
		if err != nil {
			return nil, err
		}
		tail, err := sub("tail")
		if err != nil {
			return nil, err
		}
		return &ast.ListCons{Location: n.loc, Head: head, Tail: tail}, nil
	case "binop":
		syntax, err := n.str("op")
		if err != nil {
			return nil, err
		}
		op, ok := ast.BinaryOperatorFromSyntax(syntax)
		if !ok {
			return nil, n.errorf("unknown binary operator %q", syntax)
		}
		left, err := sub("left")
		if err != nil {
			return nil, err
		}
		right, err := sub("right")
		if err != nil {
			return nil, err
		}
		return &ast.BinOp{Location: n.loc, Op: op, Left: left, Right: right}, nil
	case "unop":
		name, err := n.str("op")
		if err != nil {
			return nil, err
		}
		op, ok := ast.UnaryOperatorFromName(name)
		if !ok {
			return nil, n.errorf("unknown unary operator %q", name)
		}
		operand, err := sub("operand")
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Location: n.loc, Op: op, Operand: operand}, nil
	case "pipe":
		arg, err := sub("expr")
		if err != nil {
			return nil, err
		}
		fn, err := sub("func")
		if err != nil {
			return nil, err
		}
		return &ast.Pipe{Location: n.loc, Expr: arg, Func: fn}, nil
	case "block":
		exprs, err := decodeList(d, n, "exprs", d.expr)
		if err != nil {
			return nil, err
		}
		return &ast.Block{Location: n.loc, Exprs: exprs}, nil
	case "annotate":
		inner, err := sub("expr")
		if err != nil {
			return nil, err
		}
		t, err := d.requiredType(n, "type")
		if err != nil {
			return nil, err
		}
		return &ast.TypeAnnotation{Location: n.loc, Expr: inner, Type: t}, nil
	case "unsafe":
		inner, err := sub("expr")
		if err != nil {
			return nil, err
		}
		return &ast.Unsafe{Location: n.loc, Expr: inner}, nil
	case "tuple":
		elements, err := decodeList(d, n, "elements", d.expr)
		if err != nil {
			return nil, err
		}
		return &ast.Tuple{Location: n.loc, Elements: elements}, nil
	case "while":
		cond, err := sub("cond")
		if err != nil {
			return nil, err
		}
		body, err := sub("body")
		if err != nil {
			return nil, err
		}
		return &ast.While{Location: n.loc, Cond: cond, Body: body}, nil
	default:
		return nil, n.errorf("unknown expression kind %q", kind)
	}
}

func (d *decoder) letRecBinding(n node) (ast.LetRecBinding, error) {
	pattern, err := d.requiredPattern(n, "pattern")
	if err != nil {
		return ast.LetRecBinding{}, err
	}
	valueNode, err := d.required(n, "value")
	if err != nil {
		return ast.LetRecBinding{}, err
	}
	value, err := d.expr(valueNode)
	if err != nil {
		return ast.LetRecBinding{}, err
	}
	mutable, err := n.flag("mutable")
	if err != nil {
		return ast.LetRecBinding{}, err
	}
	return ast.LetRecBinding{Location: n.loc, Pattern: pattern, Value: value, Mutable: mutable}, nil
}

func (d *decoder) matchCase(n node) (ast.MatchCase, error) {
	c := ast.MatchCase{Location: n.loc}
	var err error
	if c.Pattern, err = d.requiredPattern(n, "pattern"); err != nil {
		return c, err
	}
	if guard, ok, err := d.optional(n, "guard"); err != nil {
		return c, err
	} else if ok {
		if c.Guard, err = d.expr(guard); err != nil {
			return c, err
		}
	}
	body, err := d.required(n, "body")
	if err != nil {
		return c, err
	}
	c.Body, err = d.expr(body)
	return c, err
}

// recordElement decodes `{name: a, value: ...}` or `{kind: spread, expr: ...}`
func (d *decoder) recordElement(n node) (ast.RecordElement, error) {
	if kind, _ := n.get("kind"); kind != nil && kind.Value == "spread" {
		spread, err := d.required(n, "expr")
		if err != nil {
			return nil, err
		}
		e, err := d.expr(spread)
		if err != nil {
			return nil, err
		}
		return &ast.RecordSpread{Location: n.loc, Expr: e}, nil
	}
	name, err := n.str("name")
	if err != nil {
		return nil, err
	}
	value, err := d.required(n, "value")
	if err != nil {
		return nil, err
	}
	e, err := d.expr(value)
	if err != nil {
		return nil, err
	}
	return &ast.RecordField{Location: n.loc, Name: name, Value: e}, nil
}

// listElement decodes `{kind: spread, expr: ...}`, or any expression as a plain element
func (d *decoder) listElement(n node) (ast.ListElement, error) {
	if kind, _ := n.get("kind"); kind != nil && kind.Value == "spread" {
		spread, err := d.required(n, "expr")
		if err != nil {
			return nil, err
		}
		e, err := d.expr(spread)
		if err != nil {
			return nil, err
		}
		return &ast.ListSpread{Location: n.loc, Expr: e}, nil
	}
	e, err := d.expr(n)
	if err != nil {
		return nil, err
	}
	return &ast.ListItem{Location: n.loc, Expr: e}, nil
}
