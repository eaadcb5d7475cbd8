package frontend

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ilerr"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ir"
	"github.com/mbcrawfo/vibefun-sub003/util"
)

// Expr desugars a surface expression into a core expression.
//
// The returned error is either an ilerr.IleError for a malformed construct
// in the user's program, or an *ilerr.Internal
func (d *Desugarer) Expr(expr ast.Expr) (ir.Expr, error) {
	if expr == nil {
		return nil, missingIn(nil, "expression")
	}
	switch e := expr.(type) {
	case *ast.Literal:
		return &ir.Literal{Location: e.Location, Value: e.Value}, nil
	case *ast.Var:
		return &ir.Var{Location: e.Location, Name: e.Name}, nil
	case *ast.Let:
		return d.let(e)
	case *ast.LetRec:
		return d.letRec(e)
	case *ast.Lambda:
		return d.lambda(e)
	case *ast.App:
		fn, err := d.exprOf(e, e.Func)
		if err != nil {
			return nil, err
		}
		args, err := d.exprsOf(e, e.Args)
		if err != nil {
			return nil, err
		}
		return &ir.App{Location: e.Location, Func: fn, Args: args}, nil
	case *ast.If:
		return d.ifExpr(e)
	case *ast.Match:
		return d.match(e)
	case *ast.Record:
		fields, err := d.recordElements(e, e.Fields)
		if err != nil {
			return nil, err
		}
		return &ir.Record{Location: e.Location, Fields: fields}, nil
	case *ast.RecordAccess:
		record, err := d.exprOf(e, e.Record)
		if err != nil {
			return nil, err
		}
		return &ir.RecordAccess{Location: e.Location, Record: record, Field: e.Field}, nil
	case *ast.RecordUpdate:
		record, err := d.exprOf(e, e.Record)
		if err != nil {
			return nil, err
		}
		updates, err := d.recordElements(e, e.Updates)
		if err != nil {
			return nil, err
		}
		return &ir.RecordUpdate{Location: e.Location, Record: record, Updates: updates}, nil
	case *ast.List:
		return d.list(e)
	case *ast.ListCons:
		head, err := d.exprOf(e, e.Head)
		if err != nil {
			return nil, err
		}
		tail, err := d.exprOf(e, e.Tail)
		if err != nil {
			return nil, err
		}
		return ir.Cons(head, tail, e.Location), nil
	case *ast.BinOp:
		return d.binOp(e)
	case *ast.UnaryOp:
		operand, err := d.exprOf(e, e.Operand)
		if err != nil {
			return nil, err
		}
		op, ok := ir.CoreUnaryOperator(e.Op)
		if !ok {
			return nil, ilerr.NewInternal(e.Location, "unknown unary operator %v", e.Op)
		}
		return &ir.UnaryOp{Location: e.Location, Op: op, Operand: operand}, nil
	case *ast.Pipe:
		// x |> f is f(x), multi-argument functions being curried
		arg, err := d.exprOf(e, e.Expr)
		if err != nil {
			return nil, err
		}
		fn, err := d.exprOf(e, e.Func)
		if err != nil {
			return nil, err
		}
		return &ir.App{Location: e.Location, Func: fn, Args: []ir.Expr{arg}}, nil
	case *ast.Block:
		return d.block(e)
	case *ast.TypeAnnotation:
		inner, err := d.exprOf(e, e.Expr)
		if err != nil {
			return nil, err
		}
		t, err := d.typeOf(e, e.Describe(), e.Type)
		if err != nil {
			return nil, err
		}
		return &ir.TypeAnnotation{Location: e.Location, Expr: inner, Type: t}, nil
	case *ast.Unsafe:
		inner, err := d.exprOf(e, e.Expr)
		if err != nil {
			return nil, err
		}
		return &ir.Unsafe{Location: e.Location, Expr: inner}, nil
	case *ast.Tuple:
		elements, err := d.exprsOf(e, e.Elements)
		if err != nil {
			return nil, err
		}
		return &ir.Tuple{Location: e.Location, Elements: elements}, nil
	case *ast.While:
		return d.while(e)
	default:
		return nil, unknownNode(expr, "expression", expr)
	}
}

func (d *Desugarer) let(e *ast.Let) (ir.Expr, error) {
	pattern, err := d.patternOf(e, e.Describe(), e.Pattern)
	if err != nil {
		return nil, err
	}
	value, err := d.exprOf(e, e.Value)
	if err != nil {
		return nil, err
	}
	body, err := d.exprOf(e, e.Body)
	if err != nil {
		return nil, err
	}
	return &ir.Let{
		Location:  e.Location,
		Pattern:   pattern,
		Value:     value,
		Body:      body,
		Mutable:   e.Mutable,
		Recursive: e.Recursive,
	}, nil
}

func (d *Desugarer) letRecBindings(at ast.Positioner, bindings []ast.LetRecBinding) ([]ir.LetRecBinding, error) {
	if len(bindings) == 0 {
		return nil, ilerr.New(ilerr.NewEmptyLetRecGroup{Location: ast.LocOf(at)})
	}
	desugared := make([]ir.LetRecBinding, len(bindings))
	for i, b := range bindings {
		pattern, err := d.patternOf(b, "recursive binding", b.Pattern)
		if err != nil {
			return nil, err
		}
		if b.Value == nil {
			return nil, missingIn(b, "recursive binding")
		}
		value, err := d.Expr(b.Value)
		if err != nil {
			return nil, err
		}
		desugared[i] = ir.LetRecBinding{Location: b.Location, Pattern: pattern, Value: value, Mutable: b.Mutable}
	}
	return desugared, nil
}

func (d *Desugarer) letRec(e *ast.LetRec) (ir.Expr, error) {
	bindings, err := d.letRecBindings(e, e.Bindings)
	if err != nil {
		return nil, err
	}
	body, err := d.exprOf(e, e.Body)
	if err != nil {
		return nil, err
	}
	return &ir.LetRec{Location: e.Location, Bindings: bindings, Body: body}, nil
}

// lambda curries (a, b) => body into (a) => (b) => body
func (d *Desugarer) lambda(e *ast.Lambda) (ir.Expr, error) {
	if len(e.Params) == 0 {
		return nil, ilerr.New(ilerr.NewLambdaWithoutParams{Location: e.Location})
	}
	params := make([]ir.Pattern, len(e.Params))
	for i, p := range e.Params {
		var err error
		if params[i], err = d.patternOf(e, "function parameter", p); err != nil {
			return nil, err
		}
	}
	curried, err := d.exprOf(e, e.Body)
	if err != nil {
		return nil, err
	}
	for param := range util.Reverse(params) {
		curried = &ir.Lambda{Location: e.Location, Param: param, Body: curried}
	}
	return curried, nil
}

// ifExpr lowers `if c then a else b` to `match c { true => a | false => b }`.
// A missing else branch evaluates to ()
func (d *Desugarer) ifExpr(e *ast.If) (ir.Expr, error) {
	cond, err := d.exprOf(e, e.Cond)
	if err != nil {
		return nil, err
	}
	then, err := d.exprOf(e, e.Then)
	if err != nil {
		return nil, err
	}
	var otherwise ir.Expr = ir.UnitLiteral(e.Location)
	if e.Else != nil {
		if otherwise, err = d.Expr(e.Else); err != nil {
			return nil, err
		}
	}
	return &ir.Match{
		Location:  e.Location,
		Scrutinee: cond,
		Cases: []ir.MatchCase{
			{Location: e.Location, Pattern: &ir.LiteralPattern{Location: e.Location, Value: ast.BoolValue(true)}, Body: then},
			{Location: e.Location, Pattern: &ir.LiteralPattern{Location: e.Location, Value: ast.BoolValue(false)}, Body: otherwise},
		},
	}, nil
}

func (d *Desugarer) match(e *ast.Match) (ir.Expr, error) {
	scrutinee, err := d.exprOf(e, e.Scrutinee)
	if err != nil {
		return nil, err
	}
	cases := make([]ir.MatchCase, 0, len(e.Cases))
	for _, c := range e.Cases {
		expanded, err := d.matchCase(c)
		if err != nil {
			return nil, err
		}
		cases = append(cases, expanded...)
	}
	return &ir.Match{Location: e.Location, Scrutinee: scrutinee, Cases: cases}, nil
}

// matchCase produces one core case per alternative of the or-patterns in c.
// Guard and body are desugared again for every alternative, so no two cases share nodes
func (d *Desugarer) matchCase(c ast.MatchCase) ([]ir.MatchCase, error) {
	if c.Pattern == nil || c.Body == nil {
		return nil, missingIn(c, "match case")
	}
	alternatives, err := expandOrPatterns(c.Pattern)
	if err != nil {
		return nil, err
	}
	if len(alternatives) > 1 {
		d.logger.Debug("expanding or-pattern", "at", c.Location, "alternatives", len(alternatives))
	}
	cases := make([]ir.MatchCase, len(alternatives))
	for i, alternative := range alternatives {
		pattern, err := d.Pattern(alternative)
		if err != nil {
			return nil, err
		}
		var guard ir.Expr
		if c.Guard != nil {
			if guard, err = d.Expr(c.Guard); err != nil {
				return nil, err
			}
		}
		body, err := d.Expr(c.Body)
		if err != nil {
			return nil, err
		}
		cases[i] = ir.MatchCase{Location: c.Location, Pattern: pattern, Guard: guard, Body: body}
	}
	return cases, nil
}

func (d *Desugarer) recordElements(parent ast.Expr, elements []ast.RecordElement) ([]ir.RecordElement, error) {
	desugared := make([]ir.RecordElement, len(elements))
	for i, element := range elements {
		switch element := element.(type) {
		case *ast.RecordField:
			value, err := d.exprOf(parent, element.Value)
			if err != nil {
				return nil, err
			}
			desugared[i] = &ir.RecordField{Location: element.Location, Name: element.Name, Value: value}
		case *ast.RecordSpread:
			spread, err := d.exprOf(parent, element.Expr)
			if err != nil {
				return nil, err
			}
			desugared[i] = &ir.RecordSpread{Location: element.Location, Expr: spread}
		case nil:
			return nil, missingIn(parent, parent.Describe())
		default:
			return nil, unknownNode(parent, "record element", element)
		}
	}
	return desugared, nil
}

// list lowers a list literal to Cons and Nil variants.
//
// Without spreads, [a, b] is Cons(a, Cons(b, Nil)). A spread in last position
// becomes the tail: [a, ...xs] is Cons(a, xs). Any other spread concatenates
// the runs of plain elements and the spreads: [a, ...xs, b] is
// concat(Cons(a, Nil), concat(xs, Cons(b, Nil)))
func (d *Desugarer) list(e *ast.List) (ir.Expr, error) {
	exprs := make([]ir.Expr, len(e.Elements))
	isSpread := make([]bool, len(e.Elements))
	spreads := 0
	for i, element := range e.Elements {
		var err error
		switch element := element.(type) {
		case *ast.ListItem:
			exprs[i], err = d.exprOf(e, element.Expr)
		case *ast.ListSpread:
			exprs[i], err = d.exprOf(e, element.Expr)
			isSpread[i] = true
			spreads++
		case nil:
			err = missingIn(e, e.Describe())
		default:
			err = unknownNode(e, "list element", element)
		}
		if err != nil {
			return nil, err
		}
	}

	last := len(exprs) - 1
	switch {
	case spreads == 0:
		return consChain(exprs, ir.Nil(e.Location), e.Location), nil
	case spreads == 1 && isSpread[last]:
		return consChain(exprs[:last], exprs[last], e.Location), nil
	}

	// parts holds each spread and each run of plain elements as a list
	var parts []ir.Expr
	runStart := 0
	for i := range exprs {
		if !isSpread[i] {
			continue
		}
		if runStart < i {
			parts = append(parts, consChain(exprs[runStart:i], ir.Nil(e.Location), e.Location))
		}
		parts = append(parts, exprs[i])
		runStart = i + 1
	}
	if runStart <= last {
		parts = append(parts, consChain(exprs[runStart:], ir.Nil(e.Location), e.Location))
	}

	concatenated := parts[len(parts)-1]
	for part := range util.Reverse(parts[:len(parts)-1]) {
		concatenated = &ir.App{
			Location: e.Location,
			Func:     &ir.Var{Location: e.Location, Name: ast.ConcatFunctionName},
			Args:     []ir.Expr{part, concatenated},
		}
	}
	return concatenated, nil
}

// consChain prepends items, in order, to tail
func consChain(items []ir.Expr, tail ir.Expr, at ast.Location) ir.Expr {
	chain := tail
	for item := range util.Reverse(items) {
		chain = ir.Cons(item, chain, at)
	}
	return chain
}

func (d *Desugarer) binOp(e *ast.BinOp) (ir.Expr, error) {
	left, err := d.exprOf(e, e.Left)
	if err != nil {
		return nil, err
	}
	right, err := d.exprOf(e, e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case ast.OpCons:
		return ir.Cons(left, right, e.Location), nil
	case ast.OpForwardCompose:
		// f >> g is (v) => g(f(v))
		return d.compose(e.Location, right, left), nil
	case ast.OpBackwardCompose:
		// f << g is (v) => f(g(v))
		return d.compose(e.Location, left, right), nil
	}
	op, ok := ir.CoreBinaryOperator(e.Op)
	if !ok {
		return nil, ilerr.NewInternal(e.Location, "binary operator %v has no core counterpart", e.Op)
	}
	return &ir.BinOp{Location: e.Location, Op: op, Left: left, Right: right}, nil
}

// compose builds (v) => outer(inner(v)) for a fresh v
func (d *Desugarer) compose(at ast.Location, outer, inner ir.Expr) ir.Expr {
	param := d.fresh("composed")
	return &ir.Lambda{
		Location: at,
		Param:    &ir.VarPattern{Location: at, Name: param},
		Body: &ir.App{
			Location: at,
			Func:     outer,
			Args: []ir.Expr{&ir.App{
				Location: at,
				Func:     inner,
				Args:     []ir.Expr{&ir.Var{Location: at, Name: param}},
			}},
		},
	}
}

// block lowers `{ let a = 1; let b = 2; e }` to `let a = 1 in let b = 2 in e`.
// The body of a let inside a block is the rest of the block
func (d *Desugarer) block(e *ast.Block) (ir.Expr, error) {
	if len(e.Exprs) == 0 {
		return nil, ilerr.New(ilerr.NewEmptyBlock{Location: e.Location})
	}
	leading := e.Exprs[:len(e.Exprs)-1]
	lets := make([]*ir.Let, len(leading))
	for i, expr := range leading {
		let, ok := expr.(*ast.Let)
		if !ok {
			if expr == nil {
				return nil, missingIn(e, e.Describe())
			}
			return nil, ilerr.New(ilerr.NewNonLetInBlock{Location: expr.Loc(), Found: expr.Describe()})
		}
		if let.Body != nil {
			return nil, ilerr.New(ilerr.NewBlockLetWithBody{Location: let.Location})
		}
		pattern, err := d.patternOf(let, let.Describe(), let.Pattern)
		if err != nil {
			return nil, err
		}
		value, err := d.exprOf(let, let.Value)
		if err != nil {
			return nil, err
		}
		lets[i] = &ir.Let{
			Location:  let.Location,
			Pattern:   pattern,
			Value:     value,
			Mutable:   let.Mutable,
			Recursive: let.Recursive,
		}
	}
	folded, err := d.exprOf(e, e.Exprs[len(e.Exprs)-1])
	if err != nil {
		return nil, err
	}
	for let := range util.Reverse(lets) {
		let.Body = folded
		folded = let
	}
	return folded, nil
}

// while lowers `while c { b }` to a self-recursive loop function:
//
//	let rec $loop = (_) => match c {
//	  | true => let _ = b in $loop(())
//	  | false => ()
//	} in $loop(())
func (d *Desugarer) while(e *ast.While) (ir.Expr, error) {
	cond, err := d.exprOf(e, e.Cond)
	if err != nil {
		return nil, err
	}
	body, err := d.exprOf(e, e.Body)
	if err != nil {
		return nil, err
	}
	loop := d.fresh("loop")
	callLoop := func() ir.Expr {
		return &ir.App{
			Location: e.Location,
			Func:     &ir.Var{Location: e.Location, Name: loop},
			Args:     []ir.Expr{ir.UnitLiteral(e.Location)},
		}
	}
	iteration := &ir.Match{
		Location:  e.Location,
		Scrutinee: cond,
		Cases: []ir.MatchCase{
			{
				Location: e.Location,
				Pattern:  &ir.LiteralPattern{Location: e.Location, Value: ast.BoolValue(true)},
				Body: &ir.Let{
					Location: e.Location,
					Pattern:  &ir.WildcardPattern{Location: e.Location},
					Value:    body,
					Body:     callLoop(),
				},
			},
			{
				Location: e.Location,
				Pattern:  &ir.LiteralPattern{Location: e.Location, Value: ast.BoolValue(false)},
				Body:     ir.UnitLiteral(e.Location),
			},
		},
	}
	return &ir.LetRec{
		Location: e.Location,
		Bindings: []ir.LetRecBinding{{
			Location: e.Location,
			Pattern:  &ir.VarPattern{Location: e.Location, Name: loop},
			Value: &ir.Lambda{
				Location: e.Location,
				Param:    &ir.WildcardPattern{Location: e.Location},
				Body:     iteration,
			},
		}},
		Body: callLoop(),
	}, nil
}
