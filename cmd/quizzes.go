package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learninghub/internal/quiz"
	"github.com/abhisek/learninghub/internal/store"
)

var quizzesCmd = &cobra.Command{
	Use:     "quizzes",
	Aliases: []string{"quiz"},
	Short:   "List, show, rename and delete saved quizzes",
}

var quizzesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved quizzes, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := pageFlags(cmd)
		if err != nil {
			return err
		}
		d, err := openDeps(cmd, depsOptions{})
		if err != nil {
			return err
		}
		defer d.Close()

		packs, total, err := d.library.ListQuizzes(cmd.Context(), d.profile, page)
		if err != nil {
			return fmt.Errorf("list quizzes: %w", err)
		}

		out := cmd.OutOrStdout()
		if total == 0 {
			fmt.Fprintln(out, "No quizzes yet.")
			return nil
		}

		fmt.Fprintf(out, "%-41s  %-30s  %5s  %s\n", "Pack ID", "Name", "Qs", "Created")
		fmt.Fprintln(out, strings.Repeat("─", 96))
		for _, p := range packs {
			fmt.Fprintf(out, "%-41s  %-30s  %5d  %s\n",
				p.PackID, truncate(p.Name, 30), p.QuestionCount,
				p.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
		fmt.Fprintf(out, "\nPage %d of %d (%d quizzes)\n", page.Number, store.TotalPages(total, page.Size), total)
		return nil
	},
}

var quizzesShowCmd = &cobra.Command{
	Use:   "show <pack-id>",
	Short: "Show a quiz with its answers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, depsOptions{})
		if err != nil {
			return err
		}
		defer d.Close()

		pack, err := d.library.GetQuiz(cmd.Context(), d.profile, args[0])
		if err != nil {
			return fmt.Errorf("get quiz %s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s  (%d questions)\n\n", pack.Name, pack.QuestionCount)
		for i, q := range pack.Questions {
			decoded, err := quiz.Decode(q.Question)
			if err != nil {
				fmt.Fprintf(out, "%2d. Invalid question format\n", i+1)
				continue
			}
			fmt.Fprintf(out, "%2d. %s\n", i+1, decoded.Text)
			for j, opt := range decoded.Options {
				mark := " "
				if strings.EqualFold(opt, q.Answer) {
					mark = "*"
				}
				fmt.Fprintf(out, "   %s %c) %s\n", mark, 'A'+j, opt)
			}
			if !decoded.IsMultipleChoice() {
				fmt.Fprintf(out, "     → %s\n", q.Answer)
			}
		}
		return nil
	},
}

var quizzesRenameCmd = &cobra.Command{
	Use:   "rename <pack-id> <name>",
	Short: "Rename a quiz",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, depsOptions{})
		if err != nil {
			return err
		}
		defer d.Close()

		name := strings.Join(args[1:], " ")
		if err := d.library.RenameQuiz(cmd.Context(), d.profile, args[0], name); err != nil {
			return fmt.Errorf("rename quiz: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %q\n", args[0], strings.TrimSpace(name))
		return nil
	},
}

var quizzesDeleteCmd = &cobra.Command{
	Use:   "delete <pack-id>",
	Short: "Delete a quiz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, depsOptions{})
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.library.DeleteQuiz(cmd.Context(), d.profile, args[0]); err != nil {
			return fmt.Errorf("delete quiz: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	},
}

// pageFlags reads --page and --size.
func pageFlags(cmd *cobra.Command) (store.Page, error) {
	page, _ := cmd.Flags().GetInt("page")
	size, _ := cmd.Flags().GetInt("size")
	if page < 1 {
		return store.Page{}, fmt.Errorf("--page must be at least 1")
	}
	if size < 1 || size > 50 {
		return store.Page{}, fmt.Errorf("--size must be between 1 and 50")
	}
	return store.Page{Number: page, Size: size}, nil
}

func addPageFlags(cmd *cobra.Command, size int) {
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().Int("size", size, "Rows per page")
}

func init() {
	addPageFlags(quizzesListCmd, store.DefaultPageSize)

	quizzesCmd.AddCommand(quizzesListCmd)
	quizzesCmd.AddCommand(quizzesShowCmd)
	quizzesCmd.AddCommand(quizzesRenameCmd)
	quizzesCmd.AddCommand(quizzesDeleteCmd)
}
