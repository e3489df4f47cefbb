package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordnest/internal/store"
)

// version is set via -ldflags at build time.
var version = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "wordnest", version)
			fmt.Fprintln(cmd.OutOrStdout(), "snapshot format", store.FormatVersion)
		},
	}
}
