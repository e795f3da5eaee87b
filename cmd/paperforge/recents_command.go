package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"paperforge/internal/config"
	"paperforge/internal/locale"
	"paperforge/internal/store"
)

func newRecentsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "recents",
		Short: "List recently touched papers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				summaries, err := st.ListRecent(cmd.Context())
				if err != nil {
					return fmt.Errorf("list recents: %w", err)
				}
				out := cmd.OutOrStdout()
				if len(summaries) == 0 {
					fmt.Fprintln(out, "No recent papers. Create one with `paperforge new`.")
					return nil
				}
				fmt.Fprintln(out, renderRecents(summaries))
				return nil
			})
		},
	}
}

func renderRecents(summaries []store.Summary) string {
	rows := make([][]string, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, []string{
			summary.PaperID,
			truncate(summary.Title, 40),
			truncate(summary.Subject, 24),
			locale.Display(summary.Locale),
			formatTouched(summary.TouchedAt),
		})
	}
	return renderTable(
		[]string{"ID", "Title", "Subject", "Locale", "Last Modified"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	)
}

func formatTouched(touched time.Time) string {
	if touched.IsZero() {
		return "-"
	}
	return touched.Local().Format("2006-01-02 15:04")
}
