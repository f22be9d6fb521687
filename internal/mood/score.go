// Package mood scores check-ins and computes adherence statistics over
// mood entries.
package mood

import "strings"

// Score bounds.
const (
	MinScore     = 0
	MaxScore     = 10
	NeutralScore = 5
)

// Labels offered by the check-in picker, lowest to highest score.
var Labels = []string{"anxious", "stressed", "tired", "calm", "excited", "happy"}

var labelScores = map[string]int{
	"anxious":  1,
	"stressed": 3,
	"tired":    5,
	"calm":     7,
	"excited":  9,
	"happy":    10,
}

type keywordRule struct {
	keywords []string
	score    int
}

// noteRules are tried in order; the first rule with a keyword contained in
// the note wins. Ordered strongest negative to strongest positive.
var noteRules = []keywordRule{
	{[]string{"depressed", "miserable", "hopeless", "suicidal"}, 1},
	{[]string{"very sad", "so sad", "really sad"}, 2},
	{[]string{"sad", "down", "crying", "lonely", "unhappy"}, 3},
	{[]string{"panic attack", "panic"}, 2},
	{[]string{"very anxious", "super anxious"}, 2},
	{[]string{"anxious", "anxiety", "worried", "stressed", "overwhelmed"}, 3},
	{[]string{"exhausted", "burnt out", "burned out"}, 3},
	{[]string{"tired", "drained", "no energy"}, 4},
	{[]string{"meh", "bored"}, 5},
	{[]string{"fine", "okay", "ok", "calm"}, 7},
	{[]string{"good day", "feeling good"}, 7},
	{[]string{"happy", "better", "grateful", "relieved"}, 9},
	{[]string{"amazing", "fantastic", "great", "awesome", "wonderful"}, 10},
}

// Checkin is the user input for one check-in. Every field is optional.
type Checkin struct {
	Score *int
	Label string
	Note  string
}

// LabelScore returns the score for a picker label.
func LabelScore(label string) (int, bool) {
	s, ok := labelScores[normalize(label)]
	return s, ok
}

// ScoreFromNote infers a score from keywords in a free-text note.
func ScoreFromNote(note string) (int, bool) {
	text := normalize(note)
	if text == "" {
		return 0, false
	}
	for _, rule := range noteRules {
		for _, k := range rule.keywords {
			if strings.Contains(text, k) {
				return rule.score, true
			}
		}
	}
	return 0, false
}

// FinalScore decides the score to save: the explicit score, else the
// label's score, else a score inferred from the note, else neutral.
func FinalScore(c Checkin) int {
	if c.Score != nil {
		return clamp(*c.Score)
	}
	if s, ok := LabelScore(c.Label); ok {
		return s
	}
	if s, ok := ScoreFromNote(c.Note); ok {
		return s
	}
	return NeutralScore
}

// ScoreLabel describes a score in words.
func ScoreLabel(score int) string {
	switch {
	case score >= 8:
		return "Very positive"
	case score >= 6:
		return "Positive"
	case score >= 4:
		return "Neutral / mixed"
	case score >= 2:
		return "Low / sad"
	default:
		return "Very low"
	}
}

// Emoji returns the face shown for a score.
func Emoji(score int) string {
	switch {
	case score >= 10:
		return "😍"
	case score >= 9:
		return "😊"
	case score >= 7:
		return "🙂"
	case score >= 5:
		return "😐"
	case score >= 3:
		return "☹️"
	default:
		return "😞"
	}
}

func clamp(s int) int {
	if s < MinScore {
		return MinScore
	}
	if s > MaxScore {
		return MaxScore
	}
	return s
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
