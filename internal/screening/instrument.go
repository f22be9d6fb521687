// Package screening scores the PHQ-2 and PHQ-9 depression questionnaires.
package screening

import (
	"fmt"
	"strings"
)

// Kind identifies a questionnaire.
type Kind string

const (
	KindPHQ2 Kind = "PHQ-2"
	KindPHQ9 Kind = "PHQ-9"
)

// MinAnswer and MaxAnswer bound every item response.
const (
	MinAnswer = 0
	MaxAnswer = 3
)

// Scale is the label for each answer value, indexed by value.
var Scale = [...]string{
	"Not at all",
	"Several days",
	"More than half the days",
	"Nearly every day",
}

// Instrument is a fixed questionnaire.
type Instrument struct {
	Kind   Kind
	Prompt string
	Items  []string
}

var phq9Items = []string{
	"Little interest or pleasure in doing things",
	"Feeling down, depressed or hopeless",
	"Trouble falling or staying asleep, or sleeping too much",
	"Feeling tired or having little energy",
	"Poor appetite or overeating",
	"Feeling bad about yourself, or that you are a failure or have let yourself or your family down",
	"Trouble concentrating on things, such as reading the newspaper or watching television",
	"Moving or speaking so slowly that other people could have noticed, or being so fidgety or restless that you have been moving around a lot more than usual",
	"Thoughts that you would be better off dead, or of hurting yourself in some way",
}

const prompt = "Over the last 2 weeks, how often have you been bothered by the following problems?"

// PHQ2 is the two-item pre-screen.
var PHQ2 = Instrument{Kind: KindPHQ2, Prompt: prompt, Items: phq9Items[:2]}

// PHQ9 is the full nine-item questionnaire.
var PHQ9 = Instrument{Kind: KindPHQ9, Prompt: prompt, Items: phq9Items}

// Lookup returns the instrument for a kind name. It accepts "phq2",
// "PHQ-2" and similar spellings.
func Lookup(name string) (Instrument, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "phq2":
		return PHQ2, nil
	case "phq9":
		return PHQ9, nil
	}
	return Instrument{}, fmt.Errorf("unknown questionnaire %q", name)
}

// MaxScore returns the highest possible total.
func (in Instrument) MaxScore() int {
	return len(in.Items) * MaxAnswer
}
