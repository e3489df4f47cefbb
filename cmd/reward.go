package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRewardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reward [--] <stars>",
		Short: "Credit stars earned in a game or quiz",
		Long: "Credit stars earned in a game or quiz. Negative amounts take " +
			"stars away and must follow --, as in: wordnest reward -- -3",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid star count %q: %w", args[0], err)
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			st := a.progress.AddStars(cmd.Context(), n)
			fmt.Fprintf(cmd.OutOrStdout(), "stars: %d\n", st.Stats.Stars)
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w (negative amounts go after --: reward -- -3)", err)
	})
	return cmd
}
