package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"paperforge/internal/config"
	"paperforge/internal/store"
)

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <paper-id>",
		Short: "Delete a stored paper and its recency entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				deleted, err := st.DeletePaper(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("delete paper: %w", err)
				}
				if !deleted {
					return fmt.Errorf("paper %s not found", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted paper %s\n", args[0])
				return nil
			})
		},
	}
}
