package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/learninghub/internal/store"
)

var flashcardsCmd = &cobra.Command{
	Use:     "flashcards",
	Aliases: []string{"cards"},
	Short:   "List and delete saved flashcards",
}

var flashcardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved flashcards, newest first",
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

		cards, total, err := d.library.ListFlashcards(cmd.Context(), d.profile, page)
		if err != nil {
			return fmt.Errorf("list flashcards: %w", err)
		}

		out := cmd.OutOrStdout()
		if total == 0 {
			fmt.Fprintln(out, "No flashcards yet.")
			return nil
		}
		for _, c := range cards {
			fmt.Fprintf(out, "#%-5d %s\n       → %s\n", c.ID, c.Question, c.Answer)
		}
		fmt.Fprintf(out, "\nPage %d of %d (%d flashcards)\n", page.Number, store.TotalPages(total, page.Size), total)
		return nil
	},
}

var flashcardsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a flashcard by its number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		d, err := openDeps(cmd, depsOptions{})
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.library.DeleteFlashcard(cmd.Context(), d.profile, id); err != nil {
			return fmt.Errorf("delete flashcard: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted flashcard #%d\n", id)
		return nil
	},
}

func init() {
	addPageFlags(flashcardsListCmd, 10)

	flashcardsCmd.AddCommand(flashcardsListCmd)
	flashcardsCmd.AddCommand(flashcardsDeleteCmd)
}
