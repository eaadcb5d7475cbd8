package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
)

var desugarOpts compileOptions

var DesugarCmd = &cobra.Command{
	Use:          "desugar file.yaml",
	Short:        "Print the core form of a module",
	RunE:         runDesugar,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

func init() {
	desugarOpts.register(DesugarCmd)
}

func runDesugar(cmd *cobra.Command, args []string) error {
	module, err := desugarOpts.compile(cmd, args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), module.String())
	return err
}
