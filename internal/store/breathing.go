package store

import (
	"context"
	"fmt"
)

type breathingRow struct {
	ID               int    `sql:"id"`
	Sequence         int64  `sql:"sequence"`
	Timestamp        int64  `sql:"timestamp"`
	SessionID        string `sql:"session_id"`
	ProgramID        string `sql:"program_id"`
	CyclesCompleted  int    `sql:"cycles_completed"`
	TotalCycles      int    `sql:"total_cycles"`
	SecondsPracticed int    `sql:"seconds_practiced"`
	Completed        bool   `sql:"completed"`
}

var breathingColumns = []string{
	"session_id", "program_id", "cycles_completed", "total_cycles", "seconds_practiced", "completed",
}

func (r *eventRepo) AppendBreathing(ctx context.Context, data BreathingEventData) (int64, error) {
	seq, err := r.insert(ctx, tableBreathing, r.now(), breathingColumns, []any{
		data.SessionID, data.ProgramID, data.CyclesCompleted, data.TotalCycles, data.SecondsPracticed, data.Completed,
	})
	if err != nil {
		return 0, fmt.Errorf("save breathing event: %w", err)
	}
	return seq, nil
}

func (r *eventRepo) QueryBreathing(ctx context.Context, opts QueryOpts) ([]BreathingEvent, error) {
	var rows []breathingRow
	if err := r.query(ctx, selectEvents(tableBreathing, breathingColumns, opts), &rows); err != nil {
		return nil, fmt.Errorf("query breathing events: %w", err)
	}
	out := make([]BreathingEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, BreathingEvent{
			Event: Event{ID: row.ID, Sequence: row.Sequence, Timestamp: fromMillis(row.Timestamp)},
			BreathingEventData: BreathingEventData{
				SessionID:        row.SessionID,
				ProgramID:        row.ProgramID,
				CyclesCompleted:  row.CyclesCompleted,
				TotalCycles:      row.TotalCycles,
				SecondsPracticed: row.SecondsPracticed,
				Completed:        row.Completed,
			},
		})
	}
	return out, nil
}
