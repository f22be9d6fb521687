package screening

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrIncomplete is returned when the number of answers does not match
	// the number of items.
	ErrIncomplete = errors.New("questionnaire incomplete")

	// ErrOutOfRange is returned when an answer is outside 0..3.
	ErrOutOfRange = errors.New("answer out of range")
)

// Severity is a PHQ-9 band.
type Severity string

const (
	SeverityNone             Severity = ""
	SeverityMinimal          Severity = "minimal"
	SeverityMild             Severity = "mild"
	SeverityModerate         Severity = "moderate"
	SeverityModeratelySevere Severity = "moderately severe"
	SeveritySevere           Severity = "severe"
)

// Next is the follow-up suggested after a questionnaire.
type Next string

const (
	NextJourney Next = "journey"
	NextPHQ9    Next = "phq9"
)

const (
	// PHQ2FollowUp is the PHQ-2 total at which the PHQ-9 is offered.
	PHQ2FollowUp = 3

	// SupportThreshold is the PHQ-9 total at which the support prompt is
	// shown, the lower bound of the moderate band.
	SupportThreshold = 10
)

// Result is a scored questionnaire.
type Result struct {
	Kind         Kind
	Answers      []int
	Total        int
	Severity     Severity
	SelfHarmRisk bool
	Next         Next
	NeedsSupport bool
}

// Score validates the answers and computes the result.
func Score(in Instrument, answers []int) (Result, error) {
	if len(answers) != len(in.Items) {
		return Result{}, fmt.Errorf("%w: %s needs %d answers, got %d", ErrIncomplete, in.Kind, len(in.Items), len(answers))
	}
	total := 0
	for i, a := range answers {
		if a < MinAnswer || a > MaxAnswer {
			return Result{}, fmt.Errorf("%w: item %d = %d", ErrOutOfRange, i+1, a)
		}
		total += a
	}

	r := Result{
		Kind:    in.Kind,
		Answers: append([]int(nil), answers...),
		Total:   total,
		Next:    NextJourney,
	}
	switch in.Kind {
	case KindPHQ2:
		if total >= PHQ2FollowUp {
			r.Next = NextPHQ9
		}
	case KindPHQ9:
		r.Severity = SeverityFor(total)
		r.SelfHarmRisk = answers[8] > 0
		r.NeedsSupport = r.SelfHarmRisk || total >= SupportThreshold
	}
	return r, nil
}

// SeverityFor maps a PHQ-9 total onto its band.
func SeverityFor(total int) Severity {
	switch {
	case total >= 20:
		return SeveritySevere
	case total >= 15:
		return SeverityModeratelySevere
	case total >= 10:
		return SeverityModerate
	case total >= 5:
		return SeverityMild
	default:
		return SeverityMinimal
	}
}

// ParseAnswers parses a comma-separated answer list such as "0,1,3".
func ParseAnswers(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse answer %q: %w", p, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Summary returns a one-line description of the result.
func (r Result) Summary() string {
	switch r.Kind {
	case KindPHQ9:
		return fmt.Sprintf("%s score %d/27 (%s)", r.Kind, r.Total, r.Severity)
	default:
		return fmt.Sprintf("%s score %d/6", r.Kind, r.Total)
	}
}

// SupportMessage is shown when NeedsSupport is set.
const SupportMessage = `Your answers suggest that you might be going through a difficult time right now. You deserve support and you don't have to handle everything alone.

This app can't provide emergency help or replace professional care. If you ever feel at risk of harming yourself or others, please contact local emergency services or a trusted person right away.`
