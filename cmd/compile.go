package cmd

import (
	"fmt"
	"github.com/mbcrawfo/vibefun-sub003/frontend"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ilerr"
	"github.com/mbcrawfo/vibefun-sub003/frontend/ir"
	"github.com/mbcrawfo/vibefun-sub003/internal/log"
	"github.com/mbcrawfo/vibefun-sub003/util"
	"github.com/mbcrawfo/vibefun-sub003/vibefun"
	"github.com/spf13/cobra"
	"log/slog"
	"slices"
	"strings"
)

var logger = log.DefaultLogger.With("section", "cli")

// compileOptions are the flags shared by every subcommand that compiles a module
type compileOptions struct {
	logLevel     int
	keepGoing    bool
	resetPerDecl bool
	debugErrors  bool
}

func (o *compileOptions) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.logLevel, "log-level", "l", int(slog.LevelError), "log level")
	cmd.Flags().BoolVarP(&o.keepGoing, "keep-going", "k", false, "report the errors of every declaration, not only the first")
	cmd.Flags().BoolVar(&o.resetPerDecl, "reset-per-decl", false, "use a fresh-name generator per top-level declaration")
	cmd.Flags().BoolVar(&o.debugErrors, "debug-errors", false, "print where in the compiler each error was raised")
}

// errCompilation is returned when the module has compile errors, which were already printed
var errCompilation = fmt.Errorf("errors found during compilation")

// compile loads and desugars the module at path. Compile errors are written to
// cmd's error output, and turn into errCompilation
func (o *compileOptions) compile(cmd *cobra.Command, path string) (ir.Module, error) {
	log.SetLevel(slog.Level(o.logLevel))
	ilerr.SetDebugPrinting(o.debugErrors)

	config := frontend.PhaseConfig{FreshNamesPerDeclaration: o.resetPerDecl}
	module, errs, err := vibefun.CompileFile(path, config)
	if err != nil {
		if ilerr.IsInternal(err) {
			return ir.Module{}, fmt.Errorf("could not compile module (this is a bug and not a compile error): %w", err)
		}
		return ir.Module{}, err
	}
	logger.Info("compiled module", "path", path, "errors", errs)
	if !errs.HasError() {
		return module, nil
	}

	reported := errs.Errors()
	if !o.keepGoing {
		reported = reported[:1]
	}
	formatted := slices.Collect(util.MapIter(slices.Values(reported), ilerr.FormatWithCode))
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), strings.Join(formatted, "\n"))
	return ir.Module{}, errCompilation
}
