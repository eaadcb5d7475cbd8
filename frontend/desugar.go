package frontend

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ilerr"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ir"
	"github.com/mbcrawfo/vibefun-sub003/internal/log"
	"log/slog"
)

var logger = slog.New(ir.IRSlogHandler(log.DefaultLogger.Handler())).With("section", "desugar")

// Desugarer lowers surface trees into core trees.
//
// Every name it introduces comes from its FreshNames, so all the trees produced
// by one Desugarer can be combined without clashes.
// Desugaring never modifies its input, and never shares nodes between
// its input and its output
type Desugarer struct {
	names  *FreshNames
	logger *slog.Logger
}

func NewDesugarer(names *FreshNames) *Desugarer {
	if names == nil {
		names = NewFreshNames()
	}
	return &Desugarer{
		names:  names,
		logger: logger,
	}
}

// DesugarExpr desugars a single expression with its own FreshNames
func DesugarExpr(expr ast.Expr) (ir.Expr, error) {
	return NewDesugarer(nil).Expr(expr)
}

// DesugarModule desugars a whole module with a single FreshNames,
// stopping at the first error
func DesugarModule(module ast.Module) (ir.Module, error) {
	return NewDesugarer(nil).Module(module)
}

func (d *Desugarer) fresh(prefix string) string {
	name := d.names.Fresh(prefix)
	d.logger.Debug("fresh name", "name", name)
	return name
}

func missingIn(parent ast.Positioner, in string) error {
	return ilerr.New(ilerr.NewMissingElement{Location: ast.LocOf(parent), In: in})
}

func unknownNode(at ast.Positioner, kind string, node any) error {
	return ilerr.NewInternal(ast.LocOf(at), "unknown %s kind %T", kind, node)
}

// exprOf desugars child, which parent requires
func (d *Desugarer) exprOf(parent ast.Expr, child ast.Expr) (ir.Expr, error) {
	if child == nil {
		return nil, missingIn(parent, parent.Describe())
	}
	return d.Expr(child)
}

func (d *Desugarer) exprsOf(parent ast.Expr, children []ast.Expr) ([]ir.Expr, error) {
	desugared := make([]ir.Expr, len(children))
	for i, child := range children {
		var err error
		if desugared[i], err = d.exprOf(parent, child); err != nil {
			return nil, err
		}
	}
	return desugared, nil
}

func (d *Desugarer) patternOf(parent ast.Positioner, in string, p ast.Pattern) (ir.Pattern, error) {
	if p == nil {
		return nil, missingIn(parent, in)
	}
	return d.Pattern(p)
}

func (d *Desugarer) typeOf(parent ast.Positioner, in string, t ast.TypeExpr) (ir.TypeExpr, error) {
	if t == nil {
		return nil, missingIn(parent, in)
	}
	return d.TypeExpr(t)
}
