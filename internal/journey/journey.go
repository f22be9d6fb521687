// Package journey builds the overview of recent wellness activity.
package journey

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fadi/mendly/internal/mood"
	"github.com/fadi/mendly/internal/store"
)

// Window sizes used by the overview.
const (
	SeriesDays    = 7
	LabelDays     = 14
	TopLabelCount = 3
	BreathingDays = 7
)

// BreathingSummary counts practice sessions in the last BreathingDays days.
type BreathingSummary struct {
	Sessions  int
	Completed int
	Seconds   int
}

// Overview is everything the journey screen and stats command show.
type Overview struct {
	mood.Adherence

	Series     []mood.DaySummary
	TopLabels  []mood.LabelCount
	TodayCount int
	TodayAvg   float64

	Breathing BreathingSummary

	// LatestScreening is nil until a questionnaire has been completed.
	LatestScreening *store.ScreeningEvent

	GeneratedAt time.Time
}

// Service assembles overviews from the store.
type Service struct {
	moods      *mood.Service
	breathing  store.BreathingRepo
	screenings store.ScreeningRepo
	now        func() time.Time
}

// NewService creates a journey service.
func NewService(moods *mood.Service, breathing store.BreathingRepo, screenings store.ScreeningRepo) *Service {
	return &Service{moods: moods, breathing: breathing, screenings: screenings, now: time.Now}
}

// Load runs the mood, breathing and screening queries concurrently and
// combines them. The first failing query cancels the rest.
func (s *Service) Load(ctx context.Context) (*Overview, error) {
	now := s.now()
	ov := &Overview{GeneratedAt: now}

	var (
		entries  []mood.Entry
		sessions []store.BreathingEvent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.moods.Entries(gctx)
		if err != nil {
			return fmt.Errorf("load mood entries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sessions, err = s.breathing.QueryBreathing(gctx, store.QueryOpts{
			From: now.Add(-BreathingDays * 24 * time.Hour),
		})
		if err != nil {
			return fmt.Errorf("load breathing sessions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		latest, err := s.screenings.LatestScreening(gctx, "")
		if err != nil {
			return fmt.Errorf("load latest screening: %w", err)
		}
		ov.LatestScreening = latest
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ov.Adherence = mood.ComputeAdherence(entries, now)
	ov.Series = mood.Series(entries, now, SeriesDays)
	ov.TopLabels = mood.TopLabels(entries, now, LabelDays, TopLabelCount)
	ov.TodayCount, ov.TodayAvg = mood.Today(entries, now)
	ov.Breathing = summarize(sessions)
	return ov, nil
}

func summarize(sessions []store.BreathingEvent) BreathingSummary {
	var out BreathingSummary
	for _, e := range sessions {
		out.Sessions++
		out.Seconds += e.SecondsPracticed
		if e.Completed {
			out.Completed++
		}
	}
	return out
}
