package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"paperforge/internal/config"
	"paperforge/internal/session"
	"paperforge/internal/store"
)

func newSectionCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Manage sections of a paper",
	}
	cmd.AddCommand(newSectionAddCommand(ctx))
	cmd.AddCommand(newSectionDeleteCommand(ctx))
	cmd.AddCommand(newSectionTitleCommand(ctx))
	cmd.AddCommand(newSectionMoveCommand(ctx))
	cmd.AddCommand(newSectionRelabelCommand(ctx))
	return cmd
}

func newSectionAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <paper-id>",
		Short: "Append a new section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				return withSession(cmd, ctx, st, args[0], func(sess *session.DocumentSession) error {
					id := sess.AddSection()
					fmt.Fprintf(cmd.OutOrStdout(), "Added section %s\n", id)
					return nil
				})
			})
		},
	}
}

func newSectionDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <paper-id> <section-id>",
		Short: "Delete a section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				return withSession(cmd, ctx, st, args[0], func(sess *session.DocumentSession) error {
					if err := sess.DeleteSection(args[1]); err != nil {
						return fmt.Errorf("delete section: %w", err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Deleted section %s\n", args[1])
					return nil
				})
			})
		},
	}
}

func newSectionTitleCommand(ctx *commandContext) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "title <paper-id> <section-id> [title]",
		Short: "Override or restore a section title",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if clear && len(args) == 3 {
				return fmt.Errorf("cannot combine --clear with a new title")
			}
			if !clear && len(args) < 3 {
				return fmt.Errorf("a title argument is required unless --clear is set")
			}
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				return withSession(cmd, ctx, st, args[0], func(sess *session.DocumentSession) error {
					update := session.SectionUpdate{ClearTitleOverride: clear}
					if !clear {
						update.Title = &args[2]
					}
					sess.UpdateSection(args[1], update)
					if clear {
						fmt.Fprintf(cmd.OutOrStdout(), "Restored derived title for section %s\n", args[1])
					} else {
						fmt.Fprintf(cmd.OutOrStdout(), "Updated title of section %s\n", args[1])
					}
					return nil
				})
			})
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Drop the override and restore the derived title")
	return cmd
}

func newSectionMoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "move <paper-id> <from> <to>",
		Short: "Move a section to another position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseMoveIndexes(args[1], args[2])
			if err != nil {
				return err
			}
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				return withSession(cmd, ctx, st, args[0], func(sess *session.DocumentSession) error {
					sess.ReorderSections(from, to)
					fmt.Fprintf(cmd.OutOrStdout(), "Moved section %d to position %d\n", from, to)
					return nil
				})
			})
		},
	}
}

func newSectionRelabelCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "relabel <paper-id>",
		Short: "Re-derive section titles from their current positions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				return withSession(cmd, ctx, st, args[0], func(sess *session.DocumentSession) error {
					sess.RelabelSections()
					fmt.Fprintf(cmd.OutOrStdout(), "Relabelled sections of paper %s\n", args[0])
					return nil
				})
			})
		},
	}
}

func parseMoveIndexes(fromArg, toArg string) (int, int, error) {
	from, err := strconv.Atoi(fromArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid position %q", fromArg)
	}
	to, err := strconv.Atoi(toArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid position %q", toArg)
	}
	return from, to, nil
}
