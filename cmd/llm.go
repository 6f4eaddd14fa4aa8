package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/learninghub/internal/llm"
	"github.com/abhisek/learninghub/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded generation requests and their cost",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent generation requests, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		since, _ := cmd.Flags().GetDuration("since")
		failedOnly, _ := cmd.Flags().GetBool("failed")

		_, s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := store.QueryOpts{Limit: limit, Purpose: purpose}
		if since > 0 {
			opts.From = time.Now().Add(-since)
		}
		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if failedOnly {
			kept := events[:0]
			for _, e := range events {
				if !e.Success {
					kept = append(kept, e)
				}
			}
			events = kept
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No requests recorded.")
			return nil
		}

		row := "%-5s  %-16s  %-13s  %-10s  %-26s  %6s  %6s  %6s  %s\n"
		fmt.Fprintf(out, row, "ID", "When", "Purpose", "Provider", "Model", "In", "Out", "Ms", "OK")
		rule(out, 104)
		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗ " + truncate(e.ErrorMessage, 40)
			}
			fmt.Fprintf(out, row,
				strconv.Itoa(e.ID),
				e.Timestamp.Local().Format("01-02 15:04:05"),
				truncate(e.Purpose, 13),
				truncate(e.Provider, 10),
				truncate(e.Model, 26),
				strconv.Itoa(e.InputTokens),
				strconv.Itoa(e.OutputTokens),
				strconv.FormatInt(e.LatencyMs, 10),
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full prompt and response of one request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		_, s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		out := cmd.OutOrStdout()
		field := func(label string, v any) { fmt.Fprintf(out, "%-10s %v\n", label+":", v) }
		field("ID", e.ID)
		field("Time", e.Timestamp.Local().Format(time.DateTime))
		field("Purpose", e.Purpose)
		field("Provider", e.Provider)
		field("Model", e.Model)
		field("Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens))
		if c := llm.LookupCost(e.Model); c != nil {
			field("Cost", formatCost(c.Cost(e.InputTokens, e.OutputTokens)))
		}
		field("Latency", time.Duration(e.LatencyMs)*time.Millisecond)
		field("Success", e.Success)
		if e.ErrorMessage != "" {
			field("Error", e.ErrorMessage)
		}

		section(out, "REQUEST", e.RequestBody)
		section(out, "RESPONSE", e.ResponseBody)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage by purpose and estimated cost by model",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(byPurpose) == 0 {
			fmt.Fprintln(out, "No requests recorded yet.")
			return nil
		}

		row := "%-16s  %6v  %10v  %10v  %8v\n"
		fmt.Fprintln(out, "By purpose")
		rule(out, 58)
		fmt.Fprintf(out, row, "Purpose", "Calls", "Input", "Output", "Avg ms")
		rule(out, 58)
		var calls, in, outTok int
		for _, u := range byPurpose {
			fmt.Fprintf(out, row, u.Purpose, u.Calls, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
			calls += u.Calls
			in += u.InputTokens
			outTok += u.OutputTokens
		}
		rule(out, 58)
		fmt.Fprintf(out, row, "TOTAL", calls, in, outTok, "")

		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) == 0 {
			return nil
		}

		row = "%-30s  %6v  %10v  %10v  %10v\n"
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Estimated cost (USD)")
		rule(out, 74)
		fmt.Fprintf(out, row, "Model", "Calls", "Input", "Output", "Cost")
		rule(out, 74)

		var total float64
		var unpriced []string
		for _, u := range byModel {
			cost := "?"
			if c := llm.LookupCost(u.Model); c != nil {
				v := c.Cost(u.InputTokens, u.OutputTokens)
				total += v
				cost = formatCost(v)
			} else {
				unpriced = append(unpriced, u.Model)
			}
			fmt.Fprintf(out, row, truncate(u.Model, 30), u.Calls, u.InputTokens, u.OutputTokens, cost)
		}
		rule(out, 74)
		label := "TOTAL"
		if len(unpriced) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Fprintf(out, row, label, "", "", "", formatCost(total))
		if len(unpriced) > 0 {
			fmt.Fprintf(out, "\nNo pricing for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func rule(w io.Writer, n int) {
	fmt.Fprintln(w, strings.Repeat("─", n))
}

func section(w io.Writer, title, body string) {
	fmt.Fprintln(w)
	rule(w, 60)
	fmt.Fprintln(w, title)
	rule(w, 60)
	if body == "" {
		body = "(not captured)"
	}
	fmt.Fprintln(w, body)
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only this purpose (quiz-gen, flashcard-gen)")
	llmListCmd.Flags().Duration("since", 0, "Only requests newer than this, e.g. 24h")
	llmListCmd.Flags().Bool("failed", false, "Only failed requests")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
