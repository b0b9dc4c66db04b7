package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "weekplan",
		Short:        "In-season week planner for team-sport athletes",
		Long:         `weekplan builds a seven-day plan around your team training nights and match day: gym sessions away from the match, recovery the day after.`,
		Version:      "0.1.0",
		SilenceUsage: true,
	}
	cmd.AddCommand(newGenerateCmd(), newDaysCmd())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
