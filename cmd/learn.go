package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordnest/internal/ui/components"
)

func newLearnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "learn <item-id>...",
		Short: "Record that items were taught",
		Long: "Record that items were taught. New items start on the review " +
			"schedule and count toward today's goal. Items already being " +
			"reviewed go back to the first interval.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			for _, id := range args {
				if _, ok := a.catalog.Lookup(id); !ok {
					warnf(cmd, "%s is not in the catalog; tracking it anyway", id)
				}
				seen := a.progress.State().Ledger.Has(id)
				a.progress.Learn(cmd.Context(), id)
				if seen {
					fmt.Fprintf(out, "re-taught %s: back to stage 0\n", id)
				} else {
					fmt.Fprintf(out, "learned %s\n", id)
				}
			}

			stats := a.progress.State().Stats
			fmt.Fprintln(out, components.DailyGoalBar(stats, 48).View())
			return nil
		},
	}
}
