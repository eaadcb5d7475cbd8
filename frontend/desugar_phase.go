package frontend

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend/ast"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ilerr"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ir"
	"github.com/pkg/errors"
	"slices"
)

// PhaseConfig tunes DesugarPhase
type PhaseConfig struct {
	// FreshNamesPerDeclaration gives every top-level declaration its own FreshNames.
	// Generated names are then only unique within each declaration
	FreshNamesPerDeclaration bool
}

// DesugarPhase desugars module like Desugarer.Module, but carries on past
// declarations that fail with an ilerr.IleError, collecting their errors.
// The declarations that failed are left out of the returned module.
//
// An internal error stops the phase, and is returned as the error
func DesugarPhase(module ast.Module, config PhaseConfig) (ir.Module, *ilerr.Errors, error) {
	var res *ilerr.Errors
	desugarer := NewDesugarer(nil)
	desugared := ir.Module{Location: module.Location}

	for _, decl := range slices.Concat(module.Imports, module.Declarations) {
		if config.FreshNamesPerDeclaration {
			desugarer = NewDesugarer(nil)
		}
		decls, err := desugarer.Declaration(decl)
		var compileErr ilerr.IleError
		switch {
		case err == nil:
			bucketDeclarations(&desugared, decls)
		case errors.As(err, &compileErr):
			logger.Debug("declaration failed to desugar", "at", ast.LocOf(decl), "error", err)
			res = res.With(compileErr)
		default:
			return ir.Module{}, res, errors.Wrapf(err, "desugaring %s at %v", describe(decl), ast.LocOf(decl))
		}
	}
	logger.Info("desugared module", "declarations", len(desugared.Declarations), "imports", len(desugared.Imports), "errors", res)
	return desugared, res, nil
}

func describe(decl ast.Declaration) string {
	if decl == nil {
		return "declaration"
	}
	return decl.Describe()
}
