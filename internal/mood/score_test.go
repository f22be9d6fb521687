package mood

import "testing"

func intPtr(v int) *int { return &v }

func TestFinalScore_Precedence(t *testing.T) {
	tests := []struct {
		name string
		in   Checkin
		want int
	}{
		{"explicit score wins", Checkin{Score: intPtr(2), Label: "happy", Note: "amazing"}, 2},
		{"explicit zero", Checkin{Score: intPtr(0), Label: "happy"}, 0},
		{"label", Checkin{Label: "Calm", Note: "hopeless"}, 7},
		{"unknown label falls to note", Checkin{Label: "sleepy", Note: "so tired"}, 4},
		{"note", Checkin{Note: "I feel hopeless"}, 1},
		{"nothing", Checkin{}, NeutralScore},
		{"unmatched note", Checkin{Note: "went to the shop"}, NeutralScore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FinalScore(tt.in); got != tt.want {
				t.Errorf("FinalScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLabelScore(t *testing.T) {
	want := map[string]int{"anxious": 1, "stressed": 3, "tired": 5, "calm": 7, "excited": 9, "happy": 10}
	for _, l := range Labels {
		got, ok := LabelScore(l)
		if !ok || got != want[l] {
			t.Errorf("LabelScore(%q) = %d, %v; want %d", l, got, ok, want[l])
		}
	}
	if _, ok := LabelScore("grumpy"); ok {
		t.Error("expected unknown label")
	}
}

func TestScoreFromNote_FirstRuleWins(t *testing.T) {
	tests := []struct {
		note string
		want int
	}{
		{"really sad today", 2},
		{"a bit sad", 3},
		{"had a panic attack", 2},
		{"worried about exams", 3},
		{"burned out", 3},
		{"no energy", 4},
		{"meh", 5},
		{"I'm fine", 7},
		{"feeling good", 7},
		{"grateful for friends", 9},
		{"AMAZING day", 10},
		// sad outranks happy because negative rules come first
		{"happy but sad", 3},
	}
	for _, tt := range tests {
		got, ok := ScoreFromNote(tt.note)
		if !ok || got != tt.want {
			t.Errorf("ScoreFromNote(%q) = %d, %v; want %d", tt.note, got, ok, tt.want)
		}
	}
	if _, ok := ScoreFromNote("   "); ok {
		t.Error("blank note matched")
	}
}

func TestScoreLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{10, "Very positive"},
		{8, "Very positive"},
		{7, "Positive"},
		{6, "Positive"},
		{5, "Neutral / mixed"},
		{4, "Neutral / mixed"},
		{3, "Low / sad"},
		{2, "Low / sad"},
		{1, "Very low"},
		{0, "Very low"},
	}
	for _, tt := range tests {
		if got := ScoreLabel(tt.score); got != tt.want {
			t.Errorf("ScoreLabel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestEmoji(t *testing.T) {
	if Emoji(10) == Emoji(1) {
		t.Error("expected different faces for extremes")
	}
	if Emoji(7) != "🙂" {
		t.Errorf("Emoji(7) = %q", Emoji(7))
	}
}
