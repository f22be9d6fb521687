package store

import (
	"context"
	"fmt"
)

type moodRow struct {
	ID        int    `sql:"id"`
	Sequence  int64  `sql:"sequence"`
	Timestamp int64  `sql:"timestamp"`
	Score     int    `sql:"score"`
	Label     string `sql:"label"`
	Note      string `sql:"note"`
	Source    string `sql:"source"`
}

var moodColumns = []string{"score", "label", "note", "source"}

func (r *eventRepo) AppendMood(ctx context.Context, data MoodEntryData) (int64, error) {
	seq, err := r.insert(ctx, tableMood, data.CapturedAt, moodColumns,
		[]any{data.Score, data.Label, data.Note, data.Source})
	if err != nil {
		return 0, fmt.Errorf("save mood entry: %w", err)
	}
	return seq, nil
}

func (r *eventRepo) QueryMood(ctx context.Context, opts QueryOpts) ([]MoodEntry, error) {
	var rows []moodRow
	if err := r.query(ctx, selectEvents(tableMood, moodColumns, opts), &rows); err != nil {
		return nil, fmt.Errorf("query mood entries: %w", err)
	}
	out := make([]MoodEntry, 0, len(rows))
	for _, row := range rows {
		ts := fromMillis(row.Timestamp)
		out = append(out, MoodEntry{
			Event: Event{ID: row.ID, Sequence: row.Sequence, Timestamp: ts},
			MoodEntryData: MoodEntryData{
				Score:      row.Score,
				Label:      row.Label,
				Note:       row.Note,
				Source:     row.Source,
				CapturedAt: ts,
			},
		})
	}
	return out, nil
}
