package mood

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fadi/mendly/internal/store"
)

// ErrScoreOutOfRange is returned for an explicit score outside 0..10.
var ErrScoreOutOfRange = errors.New("score must be between 0 and 10")

// StatsWindow is how far back Entries reads entries for statistics.
const StatsWindow = 30 * 24 * time.Hour

// Saved is the outcome of a recorded check-in.
type Saved struct {
	Sequence int64
	Score    int
	Label    string
	Adherence
}

// Service records check-ins and reads mood history.
type Service struct {
	repo store.MoodRepo
	now  func() time.Time
}

// NewService creates a Service over a mood repository.
func NewService(repo store.MoodRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Record scores and saves a check-in, then returns updated adherence.
func (s *Service) Record(ctx context.Context, c Checkin) (*Saved, error) {
	if c.Score != nil && (*c.Score < MinScore || *c.Score > MaxScore) {
		return nil, fmt.Errorf("%w: got %d", ErrScoreOutOfRange, *c.Score)
	}
	score := FinalScore(c)
	label := strings.TrimSpace(c.Label)

	seq, err := s.repo.AppendMood(ctx, store.MoodEntryData{
		Score:  score,
		Label:  label,
		Note:   strings.TrimSpace(c.Note),
		Source: store.SourceCheckin,
	})
	if err != nil {
		return nil, err
	}

	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return &Saved{
		Sequence:  seq,
		Score:     score,
		Label:     label,
		Adherence: ComputeAdherence(entries, s.now()),
	}, nil
}

// Entries returns the entries of the last StatsWindow and one extra day.
// Streaks longer than that are reported at the window length.
func (s *Service) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := s.repo.QueryMood(ctx, store.QueryOpts{
		From: s.now().Add(-StatsWindow - 24*time.Hour),
	})
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, Entry{Score: r.Score, Label: r.Label, At: r.CapturedAt.In(s.now().Location())})
	}
	return out, nil
}
