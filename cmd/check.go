package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
)

var checkOpts compileOptions

var CheckCmd = &cobra.Command{
	Use:          "check file.yaml",
	Short:        "Report the errors of a module without printing it",
	RunE:         runCheck,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

func init() {
	checkOpts.register(CheckCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	module, err := checkOpts.compile(cmd, args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d declarations)\n", args[0], len(module.Imports)+len(module.Declarations))
	return err
}
