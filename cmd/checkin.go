package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fadi/mendly/internal/mood"
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record a mood check-in",
	Long: `Record how you feel. Every flag is optional: an explicit score wins,
then the label, then keywords found in the note.

Labels: ` + strings.Join(mood.Labels, ", "),
	RunE: func(cmd *cobra.Command, args []string) error {
		var c mood.Checkin
		if cmd.Flags().Changed("score") {
			score, _ := cmd.Flags().GetInt("score")
			c.Score = &score
		}
		c.Label, _ = cmd.Flags().GetString("label")
		c.Note, _ = cmd.Flags().GetString("note")

		if c.Label != "" {
			if _, ok := mood.LabelScore(c.Label); !ok {
				return fmt.Errorf("unknown label %q (want one of: %s)", c.Label, strings.Join(mood.Labels, ", "))
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		saved, err := mood.NewService(st.MoodRepo()).Record(context.Background(), c)
		if err != nil {
			return fmt.Errorf("record check-in: %w", err)
		}

		fmt.Printf("%s  Mood %d/10 (%s)\n", mood.Emoji(saved.Score), saved.Score, mood.ScoreLabel(saved.Score))
		fmt.Printf("Streak: %d day(s)\n", saved.StreakDays)
		if saved.Avg7 != nil {
			fmt.Printf("7-day average: %.1f\n", *saved.Avg7)
		}
		return nil
	},
}

func init() {
	checkinCmd.Flags().IntP("score", "s", 0, "Mood score from 0 to 10")
	checkinCmd.Flags().StringP("label", "l", "", "Mood label")
	checkinCmd.Flags().StringP("note", "n", "", "A few words about how you feel")
}
