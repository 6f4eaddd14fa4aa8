package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learninghub/internal/quiz"
)

var takeCmd = &cobra.Command{
	Use:   "take <pack-id>",
	Short: "Take a saved quiz in the terminal, one line per answer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, depsOptions{})
		if err != nil {
			return err
		}
		defer d.Close()

		records, err := d.library.LoadQuiz(cmd.Context(), d.profile, args[0])
		if err != nil {
			return fmt.Errorf("load quiz %s: %w", args[0], err)
		}

		sum := runQuiz(cmd.InOrStdin(), cmd.OutOrStdout(), records)
		printSummary(cmd.OutOrStdout(), sum)
		return nil
	},
}

// runQuiz drives a session from line input. For multiple-choice questions a
// single letter A-D selects that option; any other line is submitted as is.
// Input ending early abandons the attempt.
func runQuiz(in io.Reader, out io.Writer, records []quiz.Record) quiz.Summary {
	session := quiz.NewSession()
	session.Start(records)
	defer session.Reset()

	if session.Phase() == quiz.PhaseEmpty {
		fmt.Fprintln(out, "This quiz has no questions.")
		return quiz.Summarize(session.State())
	}

	scanner := bufio.NewScanner(in)
	for session.Phase() == quiz.PhaseInProgress {
		rec, _ := session.Current()
		q, err := quiz.Decode(rec.PromptRaw)

		fmt.Fprintf(out, "── Question %d/%d ──\n", session.CurrentIndex()+1, session.Len())
		switch {
		case err != nil:
			fmt.Fprintln(out, "Invalid question format")
		case q.IsMultipleChoice():
			fmt.Fprintln(out, q.Text)
			for i, opt := range q.Options {
				fmt.Fprintf(out, "  %c) %s\n", 'A'+i, opt)
			}
		default:
			fmt.Fprintln(out, q.Text)
		}

		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		answer := strings.TrimSuffix(scanner.Text(), "\r")
		if err == nil && q.IsMultipleChoice() {
			answer = resolveLetter(answer, q.Options)
		}

		result, _ := session.SubmitAnswer(answer)
		if result.IsCorrect {
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %s\n", result.CorrectAnswer)
		}
		fmt.Fprintln(out)
	}

	return quiz.Summarize(session.State())
}

// resolveLetter maps a lone option letter to that option's text.
func resolveLetter(answer string, options []string) string {
	if len(answer) != 1 {
		return answer
	}
	i := int(strings.ToUpper(answer)[0]) - 'A'
	if i < 0 || i >= len(options) {
		return answer
	}
	return options[i]
}

func printSummary(out io.Writer, sum quiz.Summary) {
	fmt.Fprintf(out, "── Summary: %d/%d correct (%d%%) ──\n", sum.Score, sum.Total, sum.Percent)
	if sum.Answered < sum.Total {
		fmt.Fprintf(out, "%d of %d questions answered.\n", sum.Answered, sum.Total)
	}
	for _, e := range sum.Entries {
		if e.IsCorrect {
			continue
		}
		text := e.Question.Text
		if e.DecodeErr != nil {
			text = "Invalid question format"
		}
		fmt.Fprintf(out, "  ✗ %d. %s\n      you: %s · correct: %s\n", e.Index+1, text, e.UserAnswer, e.CorrectAnswer)
	}
}
