package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review <item-id> (--pass | --fail)",
		Short: "Record the outcome of a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, _ := cmd.Flags().GetBool("pass")
			fail, _ := cmd.Flags().GetBool("fail")
			if pass == fail {
				return errors.New("exactly one of --pass or --fail is required")
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			id := args[0]
			out := cmd.OutOrStdout()
			if !a.progress.State().Ledger.Has(id) {
				fmt.Fprintf(out, "%s has not been learned yet; nothing to review\n", id)
				return nil
			}

			st := a.progress.Review(cmd.Context(), id, pass)
			e, _ := st.Ledger.Get(id)
			ladder := a.progress.Ladder()
			switch {
			case ladder.IsGraduated(e.Stage):
				fmt.Fprintf(out, "%s graduated\n", id)
			case pass:
				fmt.Fprintf(out, "%s moved to stage %d\n", id, e.Stage)
			default:
				fmt.Fprintf(out, "%s back to stage 0\n", id)
			}
			return nil
		},
	}
	cmd.Flags().Bool("pass", false, "The item was recalled correctly")
	cmd.Flags().Bool("fail", false, "The item was missed")
	return cmd
}

func newMissCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "miss <item-id>...",
		Short: "Add items to the wrong-answer log",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			for _, id := range args {
				a.progress.RecordMiss(cmd.Context(), id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrong-answer log: %d entries\n",
				len(a.progress.State().WrongItems))
			return nil
		},
	}
}
