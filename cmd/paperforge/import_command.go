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

func newImportCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a paper from a portable document file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				source, err := config.ExpandPath(args[0])
				if err != nil {
					return fmt.Errorf("resolve import path: %w", err)
				}
				payload, err := os.ReadFile(source)
				if err != nil {
					return fmt.Errorf("read import file: %w", err)
				}
				p, err := portable.Decode(payload)
				if err != nil {
					if errors.Is(err, portable.ErrMalformed) {
						return fmt.Errorf("%s is not a valid paper document: %w", args[0], err)
					}
					return fmt.Errorf("decode paper: %w", err)
				}

				exists, err := st.HasPaper(cmd.Context(), p.ID)
				if err != nil {
					return fmt.Errorf("check paper: %w", err)
				}
				if exists && !force {
					return fmt.Errorf("paper %s already exists (use --force to overwrite)", p.ID)
				}

				if err := st.SavePaper(cmd.Context(), p); err != nil {
					return fmt.Errorf("save paper: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported paper %s (%s)\n", p.ID, p.Title())
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing paper with the same id")
	return cmd
}
