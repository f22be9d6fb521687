package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fadi/mendly/internal/llm"
	"github.com/fadi/mendly/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect requests the companion made to the chat model",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent companion model requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		writeEventList(cmd.OutOrStdout(), events, purpose)
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one request with the companion's decoded reply",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(context.Background(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}
		writeEvent(cmd.OutOrStdout(), e)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show companion token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No model usage recorded yet.")
			return nil
		}
		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		w := cmd.OutOrStdout()
		writePurposeUsage(w, byPurpose)
		if len(byModel) > 0 {
			fmt.Fprintln(w)
			writeModelCost(w, byModel)
		}
		return nil
	},
}

func writeEventList(w io.Writer, events []store.LLMRequestEvent, purpose string) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No model requests recorded.")
		return
	}
	fmt.Fprintf(w, "%-5s  %-19s  %-10s  %-28s  %5s  %5s  %6s  %s\n",
		"ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "OK")
	fmt.Fprintln(w, rule(92))
	for _, e := range events {
		if purpose != "" && e.Purpose != purpose {
			continue
		}
		ok := "✓"
		if !e.Success {
			ok = "✗"
		}
		fmt.Fprintf(w, "%-5d  %-19s  %-10s  %-28s  %5d  %5d  %6d  %s\n",
			e.ID, e.Timestamp.Local().Format(timeLayout), truncate(e.Purpose, 10),
			truncate(e.Model, 28), e.InputTokens, e.OutputTokens, e.LatencyMs, ok)
	}
}

func writeEvent(w io.Writer, e *store.LLMRequestEvent) {
	fmt.Fprintf(w, "ID:        %d\n", e.ID)
	fmt.Fprintf(w, "Time:      %s\n", e.Timestamp.Local().Format(timeLayout))
	fmt.Fprintf(w, "Provider:  %s\n", e.Provider)
	fmt.Fprintf(w, "Model:     %s\n", e.Model)
	fmt.Fprintf(w, "Purpose:   %s\n", e.Purpose)
	fmt.Fprintf(w, "Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
	if c := llm.LookupCost(e.Model); c != nil {
		fmt.Fprintf(w, "Cost:      %s\n", formatCost(c.Cost(e.InputTokens, e.OutputTokens)))
	}
	fmt.Fprintf(w, "Latency:   %dms\n", e.LatencyMs)
	if !e.Success {
		fmt.Fprintf(w, "Error:     %s\n", e.ErrorMessage)
	}

	section(w, "CONVERSATION")
	fmt.Fprintln(w, orNotCaptured(e.RequestBody))
	section(w, "REPLY")
	fmt.Fprintln(w, describeResponse(e.ResponseBody))
}

// describeResponse renders a companion-reply body as the reply text and
// mood estimate. Bodies of any other shape are shown verbatim.
func describeResponse(body string) string {
	if body == "" {
		return orNotCaptured(body)
	}
	var out struct {
		Reply     *string `json:"reply"`
		MoodScore *int    `json:"mood_score"`
	}
	if err := json.Unmarshal([]byte(body), &out); err != nil || out.Reply == nil {
		return body
	}
	mood := "not estimated"
	if out.MoodScore != nil {
		mood = fmt.Sprintf("%d/10", *out.MoodScore)
	}
	return fmt.Sprintf("%s\n\nMood:      %s", strings.TrimSpace(*out.Reply), mood)
}

func writePurposeUsage(w io.Writer, stats []store.PurposeUsage) {
	fmt.Fprintln(w, "Usage by Purpose")
	fmt.Fprintln(w, rule(72))
	fmt.Fprintf(w, "%-16s  %6s  %10s  %10s  %10s  %8s\n",
		"Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
	fmt.Fprintln(w, rule(72))

	var calls, in, out int
	for _, st := range stats {
		fmt.Fprintf(w, "%-16s  %6d  %10d  %10d  %10d  %8d\n",
			st.Purpose, st.Calls, st.InputTokens, st.OutputTokens,
			st.InputTokens+st.OutputTokens, st.AvgLatencyMs)
		calls += st.Calls
		in += st.InputTokens
		out += st.OutputTokens
	}
	fmt.Fprintln(w, rule(72))
	fmt.Fprintf(w, "%-16s  %6d  %10d  %10d  %10d\n", "TOTAL", calls, in, out, in+out)
}

func writeModelCost(w io.Writer, usage []store.ModelUsage) {
	fmt.Fprintln(w, "Estimated Cost (USD)")
	fmt.Fprintln(w, rule(72))
	fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %10s\n", "Model", "Calls", "Input", "Output", "Cost")
	fmt.Fprintln(w, rule(72))

	var total float64
	var unpriced []string
	for _, mu := range usage {
		cost := "?"
		if c := llm.LookupCost(mu.Model); c != nil {
			usd := c.Cost(mu.InputTokens, mu.OutputTokens)
			total += usd
			cost = formatCost(usd)
		} else {
			unpriced = append(unpriced, mu.Model)
		}
		fmt.Fprintf(w, "%-32s  %6d  %10d  %10d  %10s\n",
			truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, cost)
	}
	fmt.Fprintln(w, rule(72))
	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Fprintf(w, "%-32s  %6s  %10s  %10s  %10s\n", label, "", "", "", formatCost(total))
	if len(unpriced) > 0 {
		fmt.Fprintf(w, "\nPricing unavailable for: %s\n", strings.Join(unpriced, ", "))
	}
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule(60))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule(60))
}

func rule(n int) string {
	return strings.Repeat("─", n)
}

func orNotCaptured(s string) string {
	if s == "" {
		return "(not captured)"
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show one purpose (e.g. companion)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
