package screening

import (
	"errors"
	"testing"
)

func TestScore_PHQ2(t *testing.T) {
	tests := []struct {
		answers []int
		total   int
		next    Next
	}{
		{[]int{0, 0}, 0, NextJourney},
		{[]int{1, 1}, 2, NextJourney},
		{[]int{1, 2}, 3, NextPHQ9},
		{[]int{3, 3}, 6, NextPHQ9},
	}
	for _, tt := range tests {
		r, err := Score(PHQ2, tt.answers)
		if err != nil {
			t.Fatalf("Score(%v): %v", tt.answers, err)
		}
		if r.Total != tt.total || r.Next != tt.next {
			t.Errorf("Score(%v) = total %d next %s, want %d %s", tt.answers, r.Total, r.Next, tt.total, tt.next)
		}
		if r.Severity != SeverityNone || r.NeedsSupport {
			t.Errorf("PHQ-2 result has PHQ-9 fields: %+v", r)
		}
	}
}

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		total int
		want  Severity
	}{
		{0, SeverityMinimal},
		{4, SeverityMinimal},
		{5, SeverityMild},
		{9, SeverityMild},
		{10, SeverityModerate},
		{14, SeverityModerate},
		{15, SeverityModeratelySevere},
		{19, SeverityModeratelySevere},
		{20, SeveritySevere},
		{27, SeveritySevere},
	}
	for _, tt := range tests {
		if got := SeverityFor(tt.total); got != tt.want {
			t.Errorf("SeverityFor(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestScore_PHQ9Support(t *testing.T) {
	tests := []struct {
		name    string
		answers []int
		risk    bool
		support bool
	}{
		{"minimal", []int{0, 0, 0, 1, 0, 0, 1, 0, 0}, false, false},
		{"mild below cutpoint", []int{1, 1, 1, 1, 1, 1, 1, 2, 0}, false, false},
		{"moderate", []int{2, 1, 1, 1, 1, 1, 1, 2, 0}, false, true},
		{"item nine only", []int{0, 0, 0, 0, 0, 0, 0, 0, 1}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Score(PHQ9, tt.answers)
			if err != nil {
				t.Fatalf("Score: %v", err)
			}
			if r.SelfHarmRisk != tt.risk {
				t.Errorf("SelfHarmRisk = %v, want %v", r.SelfHarmRisk, tt.risk)
			}
			if r.NeedsSupport != tt.support {
				t.Errorf("NeedsSupport = %v, want %v (total %d)", r.NeedsSupport, tt.support, r.Total)
			}
			if r.Next != NextJourney {
				t.Errorf("Next = %q, want journey", r.Next)
			}
		})
	}
}

func TestScore_Errors(t *testing.T) {
	if _, err := Score(PHQ2, []int{1}); !errors.Is(err, ErrIncomplete) {
		t.Errorf("short answers: err = %v, want ErrIncomplete", err)
	}
	if _, err := Score(PHQ9, make([]int, 10)); !errors.Is(err, ErrIncomplete) {
		t.Errorf("long answers: err = %v, want ErrIncomplete", err)
	}
	if _, err := Score(PHQ2, []int{1, 4}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("answer 4: err = %v, want ErrOutOfRange", err)
	}
	if _, err := Score(PHQ2, []int{-1, 0}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("answer -1: err = %v, want ErrOutOfRange", err)
	}
}

func TestScore_CopiesAnswers(t *testing.T) {
	in := []int{1, 2}
	r, _ := Score(PHQ2, in)
	in[0] = 3
	if r.Answers[0] != 1 {
		t.Error("result aliases caller's answers")
	}
}

func TestParseAnswers(t *testing.T) {
	got, err := ParseAnswers(" 0, 1,3 ")
	if err != nil {
		t.Fatalf("ParseAnswers: %v", err)
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 3 {
		t.Errorf("ParseAnswers = %v", got)
	}
	if _, err := ParseAnswers("1,x"); err == nil {
		t.Error("expected error for non-numeric answer")
	}
	if got, err := ParseAnswers(""); err != nil || got != nil {
		t.Errorf("ParseAnswers(empty) = %v, %v", got, err)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"phq2", "PHQ-2", "Phq2"} {
		in, err := Lookup(name)
		if err != nil || in.Kind != KindPHQ2 {
			t.Errorf("Lookup(%q) = %v, %v", name, in.Kind, err)
		}
	}
	if in, _ := Lookup("phq-9"); len(in.Items) != 9 || in.MaxScore() != 27 {
		t.Errorf("PHQ-9 items = %d max = %d", len(in.Items), in.MaxScore())
	}
	if _, err := Lookup("gad7"); err == nil {
		t.Error("expected error for unknown questionnaire")
	}
}
