package vibefun

import (
	"github.com/mbcrawfo/vibefun-sub003/frontend"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ilerr"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ir"
	"github.com/pkg/errors"
	"os"
)

// Compile loads the module in data and desugars it.
//
// Compile errors in the module are returned in *ilerr.Errors, while the error
// is reserved for documents that cannot be decoded and for internal errors
func Compile(data []byte, file string, config frontend.PhaseConfig) (ir.Module, *ilerr.Errors, error) {
	module, err := LoadModule(data, file)
	if err != nil {
		return ir.Module{}, nil, err
	}
	desugared, compileErrs, err := frontend.DesugarPhase(module, config)
	if err != nil {
		return ir.Module{}, compileErrs, errors.Wrapf(err, "compiling %s", file)
	}
	return desugared, compileErrs, nil
}

// CompileFile reads the module at path and compiles it like Compile
func CompileFile(path string, config frontend.PhaseConfig) (ir.Module, *ilerr.Errors, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ir.Module{}, nil, errors.Wrap(err, "reading module")
	}
	return Compile(data, path, config)
}
