package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"paperforge/internal/config"
	"paperforge/internal/paper"
	"paperforge/internal/session"
	"paperforge/internal/store"
)

func newQuestionCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "question",
		Short: "Manage sub-questions within a section",
	}
	cmd.AddCommand(newQuestionAddCommand(ctx))
	cmd.AddCommand(newQuestionEditCommand(ctx))
	cmd.AddCommand(newQuestionDeleteCommand(ctx))
	cmd.AddCommand(newQuestionMoveCommand(ctx))
	cmd.AddCommand(newQuestionRelabelCommand(ctx))
	return cmd
}

func newQuestionAddCommand(ctx *commandContext) *cobra.Command {
	var kind string
	var heading string
	var body string
	var marks int
	var headingAfterBody bool

	cmd := &cobra.Command{
		Use:   "add <paper-id> <section-id>",
		Short: "Append a sub-question to a section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				return withSession(cmd, ctx, st, args[0], func(sess *session.DocumentSession) error {
					var tpl *paper.Template
					if kind != "" || heading != "" || body != "" || cmd.Flags().Changed("marks") {
						tpl = &paper.Template{
							Kind:             kind,
							Heading:          heading,
							Body:             body,
							HeadingAfterBody: headingAfterBody,
						}
						if cmd.Flags().Changed("marks") {
							value := marks
							tpl.Marks = &value
						}
					}
					id := sess.AddSubQuestion(args[1], tpl)
					if id == "" {
						return fmt.Errorf("section %s not found", args[1])
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Added question %s\n", id)
					return nil
				})
			})
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Question kind (short-answer, essay, multiple-choice, ...)")
	cmd.Flags().StringVar(&heading, "heading", "", "Question heading")
	cmd.Flags().StringVar(&body, "body", "", "Question body text")
	cmd.Flags().IntVar(&marks, "marks", 0, "Marks awarded (0-99)")
	cmd.Flags().BoolVar(&headingAfterBody, "heading-after-body", false, "Render the heading below the body")
	return cmd
}

func newQuestionEditCommand(ctx *commandContext) *cobra.Command {
	var heading string
	var body string
	var marks int
	var clearMarks bool
	var kind string
	var headingAfterBody bool

	cmd := &cobra.Command{
		Use:   "edit <paper-id> <section-id> <question-id>",
		Short: "Edit fields of a sub-question",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				return withSession(cmd, ctx, st, args[0], func(sess *session.DocumentSession) error {
					update := session.SubQuestionUpdate{ClearMarks: clearMarks}
					if cmd.Flags().Changed("heading") {
						update.Heading = &heading
					}
					if cmd.Flags().Changed("body") {
						update.Body = &body
					}
					if cmd.Flags().Changed("marks") {
						value := marks
						update.Marks = &value
					}
					if cmd.Flags().Changed("kind") {
						update.Kind = &kind
					}
					if cmd.Flags().Changed("heading-after-body") {
						update.HeadingAfterBody = &headingAfterBody
					}
					if err := sess.UpdateSubQuestion(args[1], args[2], update); err != nil {
						return fmt.Errorf("update question: %w", err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Updated question %s\n", args[2])
					return nil
				})
			})
		},
	}

	cmd.Flags().StringVar(&heading, "heading", "", "Question heading")
	cmd.Flags().StringVar(&body, "body", "", "Question body text")
	cmd.Flags().IntVar(&marks, "marks", 0, "Marks awarded (0-99)")
	cmd.Flags().BoolVar(&clearMarks, "clear-marks", false, "Remove the marks value")
	cmd.Flags().StringVar(&kind, "kind", "", "Question kind")
	cmd.Flags().BoolVar(&headingAfterBody, "heading-after-body", false, "Render the heading below the body")
	return cmd
}

func newQuestionDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <paper-id> <section-id> <question-id>",
		Short: "Delete a sub-question",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				return withSession(cmd, ctx, st, args[0], func(sess *session.DocumentSession) error {
					sess.DeleteSubQuestion(args[1], args[2])
					fmt.Fprintf(cmd.OutOrStdout(), "Deleted question %s\n", args[2])
					return nil
				})
			})
		},
	}
}

func newQuestionMoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "move <paper-id> <section-id> <from> <to>",
		Short: "Move a sub-question to another position",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseMoveIndexes(args[2], args[3])
			if err != nil {
				return err
			}
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				return withSession(cmd, ctx, st, args[0], func(sess *session.DocumentSession) error {
					sess.ReorderSubQuestions(args[1], from, to)
					fmt.Fprintf(cmd.OutOrStdout(), "Moved question %d to position %d\n", from, to)
					return nil
				})
			})
		},
	}
}

func newQuestionRelabelCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "relabel <paper-id> <section-id>",
		Short: "Re-derive question labels from their current positions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				return withSession(cmd, ctx, st, args[0], func(sess *session.DocumentSession) error {
					sess.RelabelSubQuestions(args[1])
					fmt.Fprintf(cmd.OutOrStdout(), "Relabelled questions in section %s\n", args[1])
					return nil
				})
			})
		},
	}
}
