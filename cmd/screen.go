package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fadi/mendly/internal/screening"
	"github.com/fadi/mendly/internal/store"
)

var screenCmd = &cobra.Command{
	Use:   "screen <phq2|phq9>",
	Short: "Score a PHQ-2 or PHQ-9 questionnaire",
	Long: `Score a depression self-screening questionnaire from comma-separated
answers, one per item, each from 0 (not at all) to 3 (nearly every day).

Without --answers the items are listed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := screening.Lookup(args[0])
		if err != nil {
			return err
		}

		raw, _ := cmd.Flags().GetString("answers")
		if raw == "" {
			printItems(in)
			return nil
		}
		answers, err := screening.ParseAnswers(raw)
		if err != nil {
			return err
		}
		res, err := screening.Score(in, answers)
		if err != nil {
			return err
		}

		fmt.Println(res.Summary())
		if res.Next == screening.NextPHQ9 {
			fmt.Println("Consider taking the fuller PHQ-9: mendly screen phq9")
		}
		if res.NeedsSupport {
			fmt.Println()
			fmt.Println(screening.SupportMessage)
		}

		if noSave, _ := cmd.Flags().GetBool("no-save"); noSave {
			return nil
		}
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		_, err = st.ScreeningRepo().AppendScreening(context.Background(), store.ScreeningEventData{
			Kind:         string(res.Kind),
			Answers:      res.Answers,
			Total:        res.Total,
			Severity:     string(res.Severity),
			SelfHarmRisk: res.SelfHarmRisk,
			NeedsSupport: res.NeedsSupport,
		})
		if err != nil {
			return fmt.Errorf("save result: %w", err)
		}
		return nil
	},
}

func printItems(in screening.Instrument) {
	fmt.Println(in.Prompt)
	fmt.Println()
	for i, item := range in.Items {
		fmt.Printf("%d. %s\n", i+1, item)
	}
	fmt.Println()
	scale := make([]string, len(screening.Scale))
	for v, label := range screening.Scale {
		scale[v] = fmt.Sprintf("%d = %s", v, label)
	}
	fmt.Println(strings.Join(scale, ", "))
}

func init() {
	screenCmd.Flags().StringP("answers", "a", "", "Comma-separated answers, e.g. 0,1,2")
	screenCmd.Flags().Bool("no-save", false, "Do not record the result")
}
