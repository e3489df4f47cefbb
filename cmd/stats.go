package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordnest/internal/ui/components"
	"github.com/abhisek/wordnest/internal/ui/theme"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show learning statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			st := a.progress.State()
			ladder := a.progress.Ladder()

			graduated := 0
			for _, e := range st.Ledger.Entries() {
				if ladder.IsGraduated(e.Stage) {
					graduated++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, theme.Title.Render("wordnest: "+a.cfg.Storage.Profile))
			fmt.Fprintln(out, components.DailyGoalBar(st.Stats, 48).View())
			fmt.Fprintf(out, "Stars:        %s\n", theme.Stars.Render(fmt.Sprint(st.Stats.Stars)))
			fmt.Fprintf(out, "Mastered:     %d\n", st.Stats.ItemsMastered)
			fmt.Fprintf(out, "Tracked:      %d (%d graduated)\n", st.Ledger.Len(), graduated)
			fmt.Fprintf(out, "Due now:      %d\n", len(a.progress.Due()))
			fmt.Fprintf(out, "Wrong log:    %d\n", len(st.WrongItems))
			fmt.Fprintf(out, "Streak:       %d day(s)\n", st.Stats.StreakDays)
			fmt.Fprintf(out, "Study time:   %d min\n", st.Stats.StudyMinutes)
			fmt.Fprintf(out, "Category:     %s\n", st.CurrentCategory)
			return nil
		},
	}
}
