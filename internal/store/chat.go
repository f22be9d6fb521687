package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

type chatRow struct {
	ID        int    `sql:"id"`
	Sequence  int64  `sql:"sequence"`
	Timestamp int64  `sql:"timestamp"`
	SessionID string `sql:"session_id"`
	Role      string `sql:"role"`
	Content   string `sql:"content"`
	Responder string `sql:"responder"`
}

var chatColumns = []string{"session_id", "role", "content", "responder"}

func (r *eventRepo) AppendChat(ctx context.Context, data ChatEventData) (int64, error) {
	seq, err := r.insert(ctx, tableChat, r.now(), chatColumns, []any{
		data.SessionID, data.Role, data.Content, data.Responder,
	})
	if err != nil {
		return 0, fmt.Errorf("save chat event: %w", err)
	}
	return seq, nil
}

func (r *eventRepo) QueryChat(ctx context.Context, sessionID string, opts QueryOpts) ([]ChatEvent, error) {
	var preds []*entsql.Predicate
	if sessionID != "" {
		preds = append(preds, entsql.EQ("session_id", sessionID))
	}
	var rows []chatRow
	if err := r.query(ctx, selectEvents(tableChat, chatColumns, opts, preds...), &rows); err != nil {
		return nil, fmt.Errorf("query chat events: %w", err)
	}
	// Rows arrive newest first; transcripts read oldest first.
	out := make([]ChatEvent, len(rows))
	for i, row := range rows {
		out[len(rows)-1-i] = ChatEvent{
			Event: Event{ID: row.ID, Sequence: row.Sequence, Timestamp: fromMillis(row.Timestamp)},
			ChatEventData: ChatEventData{
				SessionID: row.SessionID,
				Role:      row.Role,
				Content:   row.Content,
				Responder: row.Responder,
			},
		}
	}
	return out, nil
}
