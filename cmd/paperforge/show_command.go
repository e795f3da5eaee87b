package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"paperforge/internal/config"
	"paperforge/internal/locale"
	"paperforge/internal/paper"
	"paperforge/internal/store"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <paper-id>",
		Short: "Display the structure of a stored paper",
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
				fmt.Fprint(cmd.OutOrStdout(), renderPaper(p.View()))
				return nil
			})
		},
	}
}

func renderPaper(view paper.PaperView) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", view.ID)
	fmt.Fprintf(&b, "  Exam:        %s\n", orDash(view.ExamName))
	fmt.Fprintf(&b, "  Subject:     %s\n", orDash(view.Subject))
	fmt.Fprintf(&b, "  Institution: %s\n", orDash(view.Institution))
	fmt.Fprintf(&b, "  Locale:      %s\n", locale.Display(view.Locale))
	fmt.Fprintf(&b, "  Total marks: %s\n", orDash(view.TotalMarks))
	fmt.Fprintf(&b, "  Duration:    %s\n", orDash(view.Duration))
	fmt.Fprintf(&b, "  Complete:    %.0f%%\n", view.Completion*100)
	fmt.Fprintf(&b, "  Updated:     %s\n", view.UpdatedAt.Local().Format("2006-01-02 15:04"))

	for _, section := range view.Sections {
		fmt.Fprintf(&b, "\n%s  [%s]\n", section.Title, section.ID)
		for _, sq := range section.SubQuestions {
			marks := "-"
			if sq.Marks != nil {
				marks = strconv.Itoa(*sq.Marks)
			}
			heading := sq.Heading
			if heading == "" {
				heading = "(no heading)"
			}
			fmt.Fprintf(&b, "  %s %s  marks=%s  [%s]\n", sq.Label, truncate(heading, 50), marks, sq.ID)
		}
		if len(section.SubQuestions) == 0 {
			fmt.Fprintln(&b, "  (no questions)")
		}
	}
	return b.String()
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
