package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordnest/internal/ui/components"
	"github.com/abhisek/wordnest/internal/ui/theme"
)

func newDueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "List items due for review, most overdue first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			q := a.progress.Queue()
			list := components.ReviewList{
				Entries: q.Due,
				Catalog: a.catalog,
				Ladder:  a.progress.Ladder(),
				Now:     q.Now,
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, list.View())

			if len(q.Due) == 0 && q.HasNext {
				fmt.Fprintln(out, theme.Hint.Render(
					"Next review in "+components.FormatWait(q.Next.Sub(q.Now))))
			}
			return nil
		},
	}
}
