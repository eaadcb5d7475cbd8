package main

import (
	"github.com/mbcrawfo/vibefun-sub003/cmd"
	"github.com/spf13/cobra"
	"os"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "vibefun [subcommand]",
	Short:        "vibefun desugarer\n lowers surface modules into the core language",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.DesugarCmd)
	rootCmd.AddCommand(cmd.CheckCmd)
}
