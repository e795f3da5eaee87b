package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"paperforge/internal/config"
	"paperforge/internal/locale"
	"paperforge/internal/session"
	"paperforge/internal/store"
)

func newLocaleCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locale",
		Short: "Inspect and change paper locales",
	}
	cmd.AddCommand(newLocaleListCommand())
	cmd.AddCommand(newLocaleSetCommand(ctx))
	return cmd
}

func newLocaleListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported locales",
		Annotations: map[string]string{
			"skipConfigLoad": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(locale.All()))
			for _, loc := range locale.All() {
				direction := "left-to-right"
				if locale.RTL(loc) {
					direction = "right-to-left"
				}
				rows = append(rows, []string{string(loc), locale.Display(loc), direction})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Code", "Name", "Direction"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func newLocaleSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <paper-id> <locale>",
		Short: "Switch a paper to another locale, relabelling its structure",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				loc, ok := locale.Parse(args[1])
				if !ok {
					return fmt.Errorf("unknown locale %q (supported: en, bn, hi, ar)", args[1])
				}
				return withSession(cmd, ctx, st, args[0], func(sess *session.DocumentSession) error {
					if err := sess.SetLocale(loc); err != nil {
						return fmt.Errorf("set locale: %w", err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Paper %s is now %s\n", args[0], locale.Display(loc))
					return nil
				})
			})
		},
	}
}

// withSession loads one paper into an editing session, runs fn, and persists
// the result when fn succeeds.
func withSession(cmd *cobra.Command, ctx *commandContext, st *store.Store, paperID string, fn func(*session.DocumentSession) error) error {
	p, err := st.LoadPaper(cmd.Context(), paperID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("paper %s not found", paperID)
		}
		return fmt.Errorf("load paper: %w", err)
	}
	sess := session.New(p, ctx.ensureLogger())
	if err := fn(sess); err != nil {
		return err
	}
	if err := st.SavePaper(cmd.Context(), sess.Snapshot()); err != nil {
		return fmt.Errorf("save paper: %w", err)
	}
	return nil
}
