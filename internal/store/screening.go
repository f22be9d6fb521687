package store

import (
	"context"
	"encoding/json"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

type screeningRow struct {
	ID           int    `sql:"id"`
	Sequence     int64  `sql:"sequence"`
	Timestamp    int64  `sql:"timestamp"`
	Kind         string `sql:"kind"`
	Answers      string `sql:"answers"`
	Total        int    `sql:"total"`
	Severity     string `sql:"severity"`
	SelfHarmRisk bool   `sql:"self_harm_risk"`
	NeedsSupport bool   `sql:"needs_support"`
}

var screeningColumns = []string{"kind", "answers", "total", "severity", "self_harm_risk", "needs_support"}

func (r *eventRepo) AppendScreening(ctx context.Context, data ScreeningEventData) (int64, error) {
	answers, err := json.Marshal(data.Answers)
	if err != nil {
		return 0, fmt.Errorf("marshal answers: %w", err)
	}
	seq, err := r.insert(ctx, tableScreening, r.now(), screeningColumns, []any{
		data.Kind, string(answers), data.Total, data.Severity, data.SelfHarmRisk, data.NeedsSupport,
	})
	if err != nil {
		return 0, fmt.Errorf("save screening event: %w", err)
	}
	return seq, nil
}

func (r *eventRepo) QueryScreenings(ctx context.Context, opts QueryOpts) ([]ScreeningEvent, error) {
	return r.queryScreenings(ctx, opts)
}

func (r *eventRepo) LatestScreening(ctx context.Context, kind string) (*ScreeningEvent, error) {
	var preds []*entsql.Predicate
	if kind != "" {
		preds = append(preds, entsql.EQ("kind", kind))
	}
	events, err := r.queryScreenings(ctx, QueryOpts{Limit: 1}, preds...)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}

func (r *eventRepo) queryScreenings(ctx context.Context, opts QueryOpts, preds ...*entsql.Predicate) ([]ScreeningEvent, error) {
	var rows []screeningRow
	if err := r.query(ctx, selectEvents(tableScreening, screeningColumns, opts, preds...), &rows); err != nil {
		return nil, fmt.Errorf("query screening events: %w", err)
	}
	out := make([]ScreeningEvent, 0, len(rows))
	for _, row := range rows {
		var answers []int
		if row.Answers != "" {
			if err := json.Unmarshal([]byte(row.Answers), &answers); err != nil {
				return nil, fmt.Errorf("decode answers of screening %d: %w", row.ID, err)
			}
		}
		out = append(out, ScreeningEvent{
			Event: Event{ID: row.ID, Sequence: row.Sequence, Timestamp: fromMillis(row.Timestamp)},
			ScreeningEventData: ScreeningEventData{
				Kind:         row.Kind,
				Answers:      answers,
				Total:        row.Total,
				Severity:     row.Severity,
				SelfHarmRisk: row.SelfHarmRisk,
				NeedsSupport: row.NeedsSupport,
			},
		})
	}
	return out, nil
}
