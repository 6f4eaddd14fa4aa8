package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/learninghub/internal/library"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a quiz or flashcards from text",
}

var generateQuizCmd = &cobra.Command{
	Use:   "quiz [file|-]",
	Short: "Generate a quiz from a text file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readSource(cmd, args)
		if err != nil {
			return err
		}

		d, err := openDeps(cmd, depsOptions{requireLLM: true})
		if err != nil {
			return err
		}
		defer d.Close()

		fmt.Fprintln(cmd.ErrOrStderr(), "Generating quiz...")
		res, err := d.library.GenerateQuiz(cmd.Context(), d.profile, text)
		if err != nil {
			return describeGenerateErr(err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Saved %q (%d questions) as %s\n", res.Name, res.Questions, res.PackID)
		if res.Dropped > 0 {
			fmt.Fprintf(out, "%d generated questions were invalid and dropped.\n", res.Dropped)
		}
		fmt.Fprintf(out, "Take it with: learninghub take %s\n", res.PackID)
		return nil
	},
}

var generateFlashcardsCmd = &cobra.Command{
	Use:   "flashcards [file|-]",
	Short: "Generate flashcards from a text file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		detailed, _ := cmd.Flags().GetBool("detailed")
		text, err := readSource(cmd, args)
		if err != nil {
			return err
		}

		d, err := openDeps(cmd, depsOptions{requireLLM: true})
		if err != nil {
			return err
		}
		defer d.Close()

		fmt.Fprintln(cmd.ErrOrStderr(), "Generating flashcards...")
		res, err := d.library.GenerateFlashcards(cmd.Context(), d.profile, text, detailed)
		if err != nil {
			return describeGenerateErr(err)
		}

		out := cmd.OutOrStdout()
		for i, c := range res.Cards {
			fmt.Fprintf(out, "%2d. %s\n    → %s\n", i+1, c.Question, c.Answer)
		}
		fmt.Fprintf(out, "\nSaved %d flashcards as %s\n", len(res.Cards), res.PackID)
		return nil
	},
}

// readSource reads the named file, or stdin when the argument is "-" or
// missing.
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}

func describeGenerateErr(err error) error {
	switch {
	case errors.Is(err, library.ErrEmptyInput):
		return fmt.Errorf("source text is empty")
	case errors.Is(err, library.ErrLimitReached):
		return fmt.Errorf("%w (see `learninghub limits`)", err)
	default:
		return err
	}
}

func init() {
	generateFlashcardsCmd.Flags().Bool("detailed", false, "Ask for fuller, example-rich answers")

	generateCmd.AddCommand(generateQuizCmd)
	generateCmd.AddCommand(generateFlashcardsCmd)
}
