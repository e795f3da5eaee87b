package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"paperforge/internal/config"
	"paperforge/internal/store"
)

func newSweepCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Check stored papers for corruption and prune stale index entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				report, err := st.Sweep(cmd.Context())
				if err != nil {
					return fmt.Errorf("sweep workspace: %w", err)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Checked %d papers\n", report.Checked)
				if report.Clean() {
					fmt.Fprintln(out, "Workspace is clean")
					return nil
				}
				for _, id := range report.Corrupt {
					fmt.Fprintf(out, "Corrupt payload: %s\n", id)
				}
				if report.OrphanedRecent > 0 {
					fmt.Fprintf(out, "Pruned %d orphaned recency entries\n", report.OrphanedRecent)
				}
				return nil
			})
		},
	}
}
