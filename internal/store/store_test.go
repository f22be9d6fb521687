package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

// fixedClock makes the repo stamp events at base, base+1m, base+2m...
func fixedClock(s *Store, base time.Time) {
	n := 0
	s.repo.now = func() time.Time {
		t := base.Add(time.Duration(n) * time.Minute)
		n++
		return t
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, name := range []string{
		"mood_entries", "screening_events", "breathing_events",
		"chat_events", "llm_request_events", "global_sequence",
	} {
		var got string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", name,
		).Scan(&got)
		require.NoError(t, err, "table %s", name)
		assert.Equal(t, name, got)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), seq)
	}
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seq1, err := s.MoodRepo().AppendMood(ctx, MoodEntryData{Score: 7, Source: SourceCheckin})
	require.NoError(t, err)
	seq2, err := s.ChatRepo().AppendChat(ctx, ChatEventData{SessionID: "c1", Role: RoleUser, Content: "hi"})
	require.NoError(t, err)
	seq3, err := s.BreathingRepo().AppendBreathing(ctx, BreathingEventData{ProgramID: "box"})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 3}, []int64{seq1, seq2, seq3})
}

func TestMoodAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.MoodRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		_, err := repo.AppendMood(ctx, MoodEntryData{
			Score:      i + 3,
			Label:      "calm",
			Note:       "note",
			Source:     SourceCheckin,
			CapturedAt: base.AddDate(0, 0, i),
		})
		require.NoError(t, err)
	}

	all, err := repo.QueryMood(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, 6, all[0].Score, "newest first")
	assert.True(t, all[0].CapturedAt.Equal(base.AddDate(0, 0, 3)))
	assert.Equal(t, SourceCheckin, all[0].Source)

	recent, err := repo.QueryMood(ctx, QueryOpts{From: base.AddDate(0, 0, 2)})
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	limited, err := repo.QueryMood(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, int64(4), limited[0].Sequence)

	window, err := repo.QueryMood(ctx, QueryOpts{After: 1, Before: 4})
	require.NoError(t, err)
	assert.Len(t, window, 2)
}

func TestScreeningLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScreeningRepo()
	ctx := context.Background()

	none, err := repo.LatestScreening(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = repo.AppendScreening(ctx, ScreeningEventData{Kind: "PHQ-2", Answers: []int{2, 1}, Total: 3})
	require.NoError(t, err)
	_, err = repo.AppendScreening(ctx, ScreeningEventData{
		Kind: "PHQ-9", Answers: []int{1, 1, 1, 1, 1, 1, 1, 1, 1}, Total: 9,
		Severity: "mild", SelfHarmRisk: true, NeedsSupport: true,
	})
	require.NoError(t, err)

	latest, err := repo.LatestScreening(ctx, "")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "PHQ-9", latest.Kind)
	assert.True(t, latest.SelfHarmRisk)
	assert.True(t, latest.NeedsSupport)
	assert.Len(t, latest.Answers, 9)

	phq2, err := repo.LatestScreening(ctx, "PHQ-2")
	require.NoError(t, err)
	require.NotNil(t, phq2)
	assert.Equal(t, []int{2, 1}, phq2.Answers)
	assert.False(t, phq2.NeedsSupport)
}

func TestBreathingQuery(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	fixedClock(s, base)
	repo := s.BreathingRepo()
	ctx := context.Background()

	_, err := repo.AppendBreathing(ctx, BreathingEventData{
		SessionID: "b1", ProgramID: "478", CyclesCompleted: 4, TotalCycles: 4, SecondsPracticed: 76, Completed: true,
	})
	require.NoError(t, err)
	_, err = repo.AppendBreathing(ctx, BreathingEventData{
		SessionID: "b2", ProgramID: "box", CyclesCompleted: 1, TotalCycles: 6, SecondsPracticed: 20,
	})
	require.NoError(t, err)

	events, err := repo.QueryBreathing(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "box", events[0].ProgramID)
	assert.False(t, events[0].Completed)
	assert.True(t, events[1].Completed)
	assert.Equal(t, 76, events[1].SecondsPracticed)
	assert.True(t, events[1].Timestamp.Equal(base))

	later, err := repo.QueryBreathing(ctx, QueryOpts{From: base.Add(30 * time.Second)})
	require.NoError(t, err)
	assert.Len(t, later, 1)
}

func TestChatTranscriptOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.ChatRepo()
	ctx := context.Background()

	turns := []ChatEventData{
		{SessionID: "a", Role: RoleUser, Content: "I feel tired"},
		{SessionID: "b", Role: RoleUser, Content: "other session"},
		{SessionID: "a", Role: RoleAssistant, Content: "You sound drained.", Responder: "scripted"},
	}
	for _, turn := range turns {
		_, err := repo.AppendChat(ctx, turn)
		require.NoError(t, err)
	}

	got, err := repo.QueryChat(ctx, "a", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, RoleUser, got[0].Role)
	assert.Equal(t, "You sound drained.", got[1].Content)
	assert.Equal(t, "scripted", got[1].Responder)

	all, err := repo.QueryChat(ctx, "", QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock-model", Purpose: "companion",
		InputTokens: 10, OutputTokens: 5, LatencyMs: 12, Success: true,
		RequestBody: "[user]\nhello", ResponseBody: `{"reply":"hi"}`,
	})
	require.NoError(t, err)
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Purpose: "companion", ErrorMessage: "rate limited",
	})
	require.NoError(t, err)

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.False(t, events[0].Success)
	assert.Equal(t, "rate limited", events[0].ErrorMessage)

	e, err := repo.GetLLMEvent(ctx, events[1].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, `{"reply":"hi"}`, e.ResponseBody)
	assert.Equal(t, 10, e.InputTokens)

	missing, err := repo.GetLLMEvent(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, d := range []LLMRequestEventData{
		{Model: "model-a", Purpose: "companion", InputTokens: 10, OutputTokens: 4, LatencyMs: 10, Success: true},
		{Model: "model-a", Purpose: "companion", InputTokens: 20, OutputTokens: 6, LatencyMs: 21, Success: true},
		{Model: "model-b", Purpose: "summary", InputTokens: 5, OutputTokens: 1, LatencyMs: 7, Success: true},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, d))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	assert.Equal(t, []PurposeUsage{
		{Purpose: "companion", Calls: 2, InputTokens: 30, OutputTokens: 10, AvgLatencyMs: 16},
		{Purpose: "summary", Calls: 1, InputTokens: 5, OutputTokens: 1, AvgLatencyMs: 7},
	}, byPurpose)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	assert.Equal(t, []ModelUsage{
		{Model: "model-a", Calls: 2, InputTokens: 30, OutputTokens: 10},
		{Model: "model-b", Calls: 1, InputTokens: 5, OutputTokens: 1},
	}, byModel)
}

func TestReopenKeepsData(t *testing.T) {
	path := t.TempDir() + "/mendly.db"
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.MoodRepo().AppendMood(ctx, MoodEntryData{Score: 8, Source: SourceCheckin})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	entries, err := s.MoodRepo().QueryMood(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 8, entries[0].Score)

	seq, err := s.MoodRepo().AppendMood(ctx, MoodEntryData{Score: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(2), seq)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("MENDLY_DB", dir+"/custom/m.db")
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, dir+"/custom/m.db", p)

	t.Setenv("MENDLY_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, dir+"/mendly/mendly.db", p)
}
