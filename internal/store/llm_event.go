package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

type llmRequestRow struct {
	ID           int    `sql:"id"`
	Sequence     int64  `sql:"sequence"`
	Timestamp    int64  `sql:"timestamp"`
	Provider     string `sql:"provider"`
	Model        string `sql:"model"`
	Purpose      string `sql:"purpose"`
	InputTokens  int    `sql:"input_tokens"`
	OutputTokens int    `sql:"output_tokens"`
	LatencyMs    int64  `sql:"latency_ms"`
	Success      bool   `sql:"success"`
	ErrorMessage string `sql:"error_message"`
	RequestBody  string `sql:"request_body"`
	ResponseBody string `sql:"response_body"`
}

var llmRequestColumns = []string{
	"provider", "model", "purpose", "input_tokens", "output_tokens", "latency_ms",
	"success", "error_message", "request_body", "response_body",
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.insert(ctx, tableLLMRequest, r.now(), llmRequestColumns, []any{
		data.Provider,
		data.Model,
		data.Purpose,
		data.InputTokens,
		data.OutputTokens,
		data.LatencyMs,
		data.Success,
		data.ErrorMessage,
		data.RequestBody,
		data.ResponseBody,
	})
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	return r.queryLLMEvents(ctx, opts)
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	events, err := r.queryLLMEvents(ctx, QueryOpts{Limit: 1}, entsql.EQ(colID, id))
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}

func (r *eventRepo) queryLLMEvents(ctx context.Context, opts QueryOpts, preds ...*entsql.Predicate) ([]LLMRequestEvent, error) {
	var rows []llmRequestRow
	if err := r.query(ctx, selectEvents(tableLLMRequest, llmRequestColumns, opts, preds...), &rows); err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	out := make([]LLMRequestEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, LLMRequestEvent{
			Event: Event{ID: row.ID, Sequence: row.Sequence, Timestamp: fromMillis(row.Timestamp)},
			LLMRequestEventData: LLMRequestEventData{
				Provider:     row.Provider,
				Model:        row.Model,
				Purpose:      row.Purpose,
				InputTokens:  row.InputTokens,
				OutputTokens: row.OutputTokens,
				LatencyMs:    row.LatencyMs,
				Success:      row.Success,
				ErrorMessage: row.ErrorMessage,
				RequestBody:  row.RequestBody,
				ResponseBody: row.ResponseBody,
			},
		})
	}
	return out, nil
}
