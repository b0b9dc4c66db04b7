package cli

import (
	"fmt"

	"trainbalance/week-planner/internal/domain"

	"github.com/spf13/cobra"
)

func newDaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List accepted day and goal tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Days:")
			for _, d := range domain.Days {
				fmt.Fprintf(out, "  %s  %s\n", d, d.Label())
			}
			fmt.Fprintln(out, "Goals:")
			for _, g := range domain.Goals {
				fmt.Fprintf(out, "  %-10s %s\n", g, g.Label())
			}
			return nil
		},
	}
}
