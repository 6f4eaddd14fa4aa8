package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/learninghub/internal/store"
)

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Show or change the profile's generation allowances",
	RunE: func(cmd *cobra.Command, args []string) error {
		return limitsShowCmd.RunE(cmd, args)
	},
}

var limitsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show allowances and usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, depsOptions{})
		if err != nil {
			return err
		}
		defer d.Close()

		u, err := d.library.Usage(cmd.Context(), d.profile)
		if err != nil {
			return err
		}
		printUsage(cmd, u)
		return nil
	},
}

var limitsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change allowances",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, depsOptions{})
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		u, err := d.library.Usage(ctx, d.profile)
		if err != nil {
			return err
		}
		limits := store.Limits{QuizLimit: u.QuizLimit, FlashcardLimit: u.FlashcardLimit}
		if cmd.Flags().Changed("quizzes") {
			limits.QuizLimit, _ = cmd.Flags().GetInt("quizzes")
		}
		if cmd.Flags().Changed("flashcards") {
			limits.FlashcardLimit, _ = cmd.Flags().GetInt("flashcards")
		}

		if err := d.library.SetLimits(ctx, d.profile, limits); err != nil {
			return err
		}
		u, err = d.library.Usage(ctx, d.profile)
		if err != nil {
			return err
		}
		printUsage(cmd, u)
		return nil
	},
}

var limitsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Zero the usage counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, depsOptions{})
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.library.ResetUsage(cmd.Context(), d.profile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Usage reset for profile %q\n", d.profile)
		return nil
	},
}

func printUsage(cmd *cobra.Command, u *store.Usage) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Profile:     %s\n", u.UserID)
	fmt.Fprintf(out, "Quizzes:     %d of %d used (%d left)\n", u.QuizCount, u.QuizLimit, u.QuizzesRemaining())
	fmt.Fprintf(out, "Flashcards:  %d of %d used (%d left)\n", u.FlashcardCount, u.FlashcardLimit, u.FlashcardsRemaining())
}

func init() {
	limitsSetCmd.Flags().Int("quizzes", 0, "Quiz allowance")
	limitsSetCmd.Flags().Int("flashcards", 0, "Flashcard allowance")

	limitsCmd.AddCommand(limitsShowCmd)
	limitsCmd.AddCommand(limitsSetCmd)
	limitsCmd.AddCommand(limitsResetCmd)
}
