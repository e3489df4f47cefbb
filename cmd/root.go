package cmd

import (
	"github.com/spf13/cobra"
)

// Execute runs the wordnest CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordnest",
		Short: "Vocabulary trainer with spaced repetition",
		Long: "wordnest tracks the words a learner has been taught and schedules " +
			"reviews on an expanding interval ladder.",
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides WORDNEST_DB env var)")
	flags.String("config", "", "Path to config file (default: <user config dir>/wordnest/config.yaml)")
	flags.String("catalog", "", "Path to a catalog JSON file (default: built-in catalog)")
	flags.String("profile", "", "Learner profile to use")
	flags.String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newLearnCmd(),
		newReviewCmd(),
		newMissCmd(),
		newDueCmd(),
		newStatsCmd(),
		newRewardCmd(),
		newCategoryCmd(),
		newCatalogCmd(),
		newResetCmd(),
		newVersionCmd(),
	)
	return rootCmd
}
