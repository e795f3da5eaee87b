package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"paperforge/internal/config"
	"paperforge/internal/locale"
	"paperforge/internal/session"
	"paperforge/internal/store"
)

func newNewCommand(ctx *commandContext) *cobra.Command {
	var localeFlag string
	var examName string
	var subject string
	var institution string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create and persist a new exam paper",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				loc := cfg.DefaultPaperLocale()
				if localeFlag != "" {
					parsed, ok := locale.Parse(localeFlag)
					if !ok {
						return fmt.Errorf("unknown locale %q (supported: en, bn, hi, ar)", localeFlag)
					}
					loc = parsed
				}

				sess := session.NewBlank(loc, ctx.ensureLogger())
				sess.UpdateMetadata(session.MetadataUpdate{
					ExamName:    &examName,
					Subject:     &subject,
					Institution: &institution,
				})
				if err := st.SavePaper(cmd.Context(), sess.Snapshot()); err != nil {
					return fmt.Errorf("save paper: %w", err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Created paper %s (%s)\n", sess.PaperID(), locale.Display(loc))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&localeFlag, "locale", "l", "", "Paper locale (en, bn, hi, ar)")
	cmd.Flags().StringVar(&examName, "name", "", "Exam name")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject")
	cmd.Flags().StringVar(&institution, "institution", "", "Institution name")
	return cmd
}
