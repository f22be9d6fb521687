package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fadi/mendly/internal/journey"
	"github.com/fadi/mendly/internal/mood"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your recent wellness overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		moods := mood.NewService(st.MoodRepo())
		ov, err := journey.NewService(moods, st.BreathingRepo(), st.ScreeningRepo()).Load(context.Background())
		if err != nil {
			return fmt.Errorf("load overview: %w", err)
		}
		printOverview(ov)
		return nil
	},
}

func avgString(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func printOverview(ov *journey.Overview) {
	sep := strings.Repeat("─", 40)

	fmt.Println("Mood")
	fmt.Println(sep)
	fmt.Printf("Streak:         %d day(s)\n", ov.StreakDays)
	if ov.TodayCount > 0 {
		fmt.Printf("Today:          %d check-in(s), avg %.1f\n", ov.TodayCount, ov.TodayAvg)
	} else {
		fmt.Println("Today:          no check-ins yet")
	}
	fmt.Printf("Average:        7d %s  14d %s  30d %s\n", avgString(ov.Avg7), avgString(ov.Avg14), avgString(ov.Avg30))
	fmt.Printf("Last %d days:    %s\n", journey.SeriesDays, journey.Sparkline(ov.Series))
	if len(ov.TopLabels) > 0 {
		labels := make([]string, 0, len(ov.TopLabels))
		for _, l := range ov.TopLabels {
			labels = append(labels, fmt.Sprintf("%s (%d)", l.Label, l.Count))
		}
		fmt.Printf("Often feeling:  %s\n", strings.Join(labels, ", "))
	}

	fmt.Println()
	fmt.Println("Practice")
	fmt.Println(sep)
	b := ov.Breathing
	fmt.Printf("Breathing:      %d session(s), %d completed, %d min\n", b.Sessions, b.Completed, b.Seconds/60)
	if s := ov.LatestScreening; s != nil {
		line := fmt.Sprintf("%s %d", s.Kind, s.Total)
		if s.Severity != "" {
			line += " (" + s.Severity + ")"
		}
		fmt.Printf("Questionnaire:  %s, %s\n", line, s.Timestamp.Local().Format("Jan 2"))
	} else {
		fmt.Println("Questionnaire:  not taken yet")
	}
}
