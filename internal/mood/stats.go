package mood

import (
	"sort"
	"time"
)

// Entry is the part of a stored mood entry the statistics need.
type Entry struct {
	Score int
	Label string
	At    time.Time
}

// DaySummary aggregates one calendar day.
type DaySummary struct {
	Date  time.Time
	Avg   float64
	Count int
}

// LabelCount is how often a label was chosen.
type LabelCount struct {
	Label string
	Count int
}

// Adherence summarises check-in habits.
type Adherence struct {
	StreakDays int
	Avg7       *float64
	Avg14      *float64
	Avg30      *float64
}

// Day boundaries follow now's location.
func dayOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Streak counts consecutive days, ending today, with at least one entry.
// Entries dated after today are ignored.
func Streak(entries []Entry, now time.Time) int {
	loc := now.Location()
	days := make(map[time.Time]bool, len(entries))
	for _, e := range entries {
		days[dayOf(e.At, loc)] = true
	}
	streak := 0
	for cursor := dayOf(now, loc); days[cursor]; cursor = cursor.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// Average returns the mean score of entries captured in the last days
// days. It reports false when there are none.
func Average(entries []Entry, now time.Time, days int) (float64, bool) {
	cut := now.Add(-time.Duration(days) * 24 * time.Hour)
	sum, n := 0, 0
	for _, e := range entries {
		if e.At.Before(cut) || e.At.After(now) {
			continue
		}
		sum += e.Score
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// Series returns one summary per day for the last days days including
// today, oldest first. Days without entries have a zero count.
func Series(entries []Entry, now time.Time, days int) []DaySummary {
	if days <= 0 {
		return nil
	}
	loc := now.Location()
	today := dayOf(now, loc)
	first := today.AddDate(0, 0, -(days - 1))

	out := make([]DaySummary, days)
	sums := make([]int, days)
	for i := range out {
		out[i].Date = first.AddDate(0, 0, i)
	}
	for _, e := range entries {
		d := dayOf(e.At, loc)
		if d.Before(first) || d.After(today) {
			continue
		}
		i := daysBetween(first, d)
		sums[i] += e.Score
		out[i].Count++
	}
	for i := range out {
		if out[i].Count > 0 {
			out[i].Avg = float64(sums[i]) / float64(out[i].Count)
		}
	}
	return out
}

// daysBetween counts calendar days from a to b, both at local midnight.
func daysBetween(a, b time.Time) int {
	n := 0
	for a.Before(b) {
		a = a.AddDate(0, 0, 1)
		n++
	}
	return n
}

// TopLabels returns the n most chosen labels of the last days days, most
// frequent first and alphabetical among ties.
func TopLabels(entries []Entry, now time.Time, days, n int) []LabelCount {
	cut := now.Add(-time.Duration(days) * 24 * time.Hour)
	counts := make(map[string]int)
	for _, e := range entries {
		if e.Label == "" || e.At.Before(cut) || e.At.After(now) {
			continue
		}
		counts[e.Label]++
	}
	out := make([]LabelCount, 0, len(counts))
	for l, c := range counts {
		out = append(out, LabelCount{Label: l, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Today returns the number of entries captured today and their mean.
func Today(entries []Entry, now time.Time) (int, float64) {
	loc := now.Location()
	today := dayOf(now, loc)
	sum, n := 0, 0
	for _, e := range entries {
		if dayOf(e.At, loc).Equal(today) {
			sum += e.Score
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return n, float64(sum) / float64(n)
}

// ComputeAdherence returns the streak and rolling averages.
func ComputeAdherence(entries []Entry, now time.Time) Adherence {
	a := Adherence{StreakDays: Streak(entries, now)}
	for _, w := range []struct {
		days int
		dst  **float64
	}{{7, &a.Avg7}, {14, &a.Avg14}, {30, &a.Avg30}} {
		if avg, ok := Average(entries, now, w.days); ok {
			v := avg
			*w.dst = &v
		}
	}
	return a
}
