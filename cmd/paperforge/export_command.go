package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"paperforge/internal/config"
	"paperforge/internal/portable"
	"paperforge/internal/store"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export <paper-id>",
		Short: "Export a paper in the portable document format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				p, err := st.LoadPaper(cmd.Context(), args[0])
				if err != nil {
					if errors.Is(err, store.ErrNotFound) {
						return fmt.Errorf("paper %s not found", args[0])
					}
					return fmt.Errorf("load paper: %w", err)
				}
				payload, err := portable.Encode(p)
				if err != nil {
					return fmt.Errorf("encode paper: %w", err)
				}
				if outputPath == "" {
					fmt.Fprintln(cmd.OutOrStdout(), string(payload))
					return nil
				}
				dest, err := config.ExpandPath(outputPath)
				if err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
				if err := os.WriteFile(dest, payload, 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported paper %s to %s\n", p.ID, dest)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination file (stdout when omitted)")
	return cmd
}
