package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// PurposeUsage aggregates LLM requests sharing a purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM requests served by one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

type usageRow struct {
	Key          string  `sql:"key"`
	Calls        int     `sql:"calls"`
	InputTokens  int     `sql:"input_tokens"`
	OutputTokens int     `sql:"output_tokens"`
	AvgLatency   float64 `sql:"avg_latency"`
}

func (r *eventRepo) llmUsage(ctx context.Context, by string) ([]usageRow, error) {
	b := builder()
	sel := b.Select(
		entsql.As(by, "key"),
		entsql.As(entsql.Count("*"), "calls"),
		entsql.As(entsql.Sum("input_tokens"), "input_tokens"),
		entsql.As(entsql.Sum("output_tokens"), "output_tokens"),
		entsql.As(entsql.Avg("latency_ms"), "avg_latency"),
	).
		From(b.Table(tableLLMRequest)).
		GroupBy(by).
		OrderBy(by)

	var rows []usageRow
	if err := r.query(ctx, sel, &rows); err != nil {
		return nil, fmt.Errorf("aggregate LLM usage by %s: %w", by, err)
	}
	return rows, nil
}

// LLMUsageByPurpose sums token usage per request purpose.
func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	rows, err := r.llmUsage(ctx, "purpose")
	if err != nil {
		return nil, err
	}
	out := make([]PurposeUsage, 0, len(rows))
	for _, row := range rows {
		out = append(out, PurposeUsage{
			Purpose:      row.Key,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.AvgLatency + 0.5),
		})
	}
	return out, nil
}

// LLMUsageByModel sums token usage per model.
func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := r.llmUsage(ctx, "model")
	if err != nil {
		return nil, err
	}
	out := make([]ModelUsage, 0, len(rows))
	for _, row := range rows {
		out = append(out, ModelUsage{
			Model:        row.Key,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
		})
	}
	return out, nil
}
