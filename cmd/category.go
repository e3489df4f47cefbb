package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordnest/internal/spacedrep"
	"github.com/abhisek/wordnest/internal/ui/theme"
)

func newCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "category [name]",
		Short: "Show or change the current category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if len(args) == 1 {
				if _, ok := a.catalog.Category(args[0]); !ok {
					return fmt.Errorf("unknown category %q", args[0])
				}
				a.progress.SetCategory(cmd.Context(), args[0])
			}

			current := a.progress.State().CurrentCategory
			out := cmd.OutOrStdout()
			for _, name := range a.catalog.Names() {
				if name == current {
					fmt.Fprintln(out, theme.Title.Render("▸ "+name))
				} else {
					fmt.Fprintln(out, "  "+name)
				}
			}
			return nil
		},
	}
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalog items and their review stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			only, _ := cmd.Flags().GetString("category")
			if only != "" {
				if _, ok := a.catalog.Category(only); !ok {
					return fmt.Errorf("unknown category %q", only)
				}
			}

			st := a.progress.State()
			ladder := a.progress.Ladder()
			out := cmd.OutOrStdout()
			for _, cat := range a.catalog.Categories {
				if only != "" && cat.Name != only {
					continue
				}
				fmt.Fprintln(out, theme.Title.Render(cat.Name))
				for _, it := range cat.Items {
					fmt.Fprintf(out, "  %-16s %-14s %s  %s\n",
						it.ID, it.Target, it.Native, stageLabel(st.Ledger, ladder, it.ID))
				}
			}
			return nil
		},
	}
	cmd.Flags().String("category", "", "Only list this category")
	return cmd
}

func stageLabel(ledger *spacedrep.Ledger, ladder spacedrep.Ladder, id string) string {
	e, ok := ledger.Get(id)
	switch {
	case !ok:
		return theme.Hint.Render("new")
	case ladder.IsGraduated(e.Stage):
		return theme.Graduated.Render("graduated")
	default:
		return theme.Pending.Render(fmt.Sprintf("stage %d", e.Stage))
	}
}
