package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every quiz and flashcard of the profile and zero its usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, depsOptions{})
		if err != nil {
			return err
		}
		defer d.Close()

		out := cmd.OutOrStdout()
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Fprintf(out, "Delete all data for profile %q? [y/N] ", d.profile)
			line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if !strings.EqualFold(strings.TrimSpace(line), "y") {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		quizRows, cards, err := d.library.ResetProfile(cmd.Context(), d.profile)
		if err != nil {
			return fmt.Errorf("reset profile: %w", err)
		}
		fmt.Fprintf(out, "Removed %d quiz questions and %d flashcards.\n", quizRows, cards)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
