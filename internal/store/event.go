package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter manages the global monotonic sequence number shared across
// all event tables. Per-table auto-increment IDs can't order a mood entry
// against the chat turn that produced it; the shared counter can.
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

var timeNow = time.Now

// eventRepo implements every repository interface over one driver and the
// global sequence counter.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
	now func() time.Time
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// insert appends one event row, assigning sequence and timestamp.
// A zero at uses the repo clock.
func (r *eventRepo) insert(ctx context.Context, table string, at time.Time, cols []string, vals []any) (int64, error) {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return 0, err
	}
	if at.IsZero() {
		at = r.now()
	}
	q, args := builder().Insert(table).
		Columns(append([]string{colSequence, colTimestamp}, cols...)...).
		Values(append([]any{seq, toMillis(at)}, vals...)...).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return 0, fmt.Errorf("insert into %s: %w", table, err)
	}
	return seq, nil
}

// selectEvents builds a query over an event table honouring opts.
// Results are newest first.
func selectEvents(table string, cols []string, opts QueryOpts, preds ...*entsql.Predicate) *entsql.Selector {
	b := builder()
	sel := b.Select(append([]string{colID, colSequence, colTimestamp}, cols...)...).
		From(b.Table(table))

	if opts.After > 0 {
		preds = append(preds, entsql.GT(colSequence, opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT(colSequence, opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE(colTimestamp, toMillis(opts.From)))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE(colTimestamp, toMillis(opts.To)))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	sel.OrderBy(entsql.Desc(colSequence))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	return sel
}

// query runs sel and scans every row into dst, a pointer to a slice of
// structs tagged with `sql` column names.
func (r *eventRepo) query(ctx context.Context, sel *entsql.Selector, dst any) error {
	q, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return err
	}
	defer rows.Close()
	return entsql.ScanSlice(rows, dst)
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
