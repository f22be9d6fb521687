package companion

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadi/mendly/internal/llm"
	"github.com/fadi/mendly/internal/mood"
	"github.com/fadi/mendly/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSession_SavesTurnsAndMood(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()
	s := NewSession(Scripted{}, st.ChatRepo(), st.MoodRepo(), nil)

	reply, err := s.Send(ctx, "  I feel sad  ")
	require.NoError(t, err)
	assert.Equal(t, ResponderScripted, reply.Responder)

	turns, err := st.ChatRepo().QueryChat(ctx, s.ID(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, store.RoleUser, turns[0].Role)
	assert.Equal(t, "I feel sad", turns[0].Content)
	assert.Equal(t, store.RoleAssistant, turns[1].Role)
	assert.Equal(t, reply.Text, turns[1].Content)
	assert.Equal(t, ResponderScripted, turns[1].Responder)

	moods, err := st.MoodRepo().QueryMood(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, moods, 1)
	assert.Equal(t, 3, moods[0].Score)
	assert.Equal(t, mood.ScoreLabel(3), moods[0].Label)
	assert.Equal(t, store.SourceChat, moods[0].Source)

	assert.Len(t, s.History(), 2)
}

func TestSession_PrefersModelMoodScore(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"reply":"Glad to hear it!","mood_score":8}`),
	})
	s := NewSession(NewLLM(mock, DefaultLLMConfig(), nil), st.ChatRepo(), st.MoodRepo(), nil)

	reply, err := s.Send(ctx, "I feel sad")
	require.NoError(t, err)
	assert.Equal(t, "Glad to hear it!", reply.Text)

	moods, err := st.MoodRepo().QueryMood(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, moods, 1)
	assert.Equal(t, 8, moods[0].Score)
}

func TestSession_SendsPriorTurns(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"reply":"one","mood_score":5}`)},
		llm.MockResponse{Content: json.RawMessage(`{"reply":"two","mood_score":5}`)},
	)
	s := NewSession(NewLLM(mock, DefaultLLMConfig(), nil), nil, nil, nil)
	ctx := context.Background()

	_, err := s.Send(ctx, "first")
	require.NoError(t, err)
	_, err = s.Send(ctx, "second")
	require.NoError(t, err)

	require.Equal(t, 2, mock.CallCount())
	msgs := mock.Calls[1].Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "one", msgs[1].Content)
	assert.Equal(t, "second", msgs[2].Content)
}

func TestSession_EmptyMessageIsIgnored(t *testing.T) {
	s := NewSession(nil, nil, nil, nil)
	reply, err := s.Send(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, reply.Text)
	assert.Empty(t, s.History())
}

type failingRepo struct{}

func (failingRepo) AppendChat(context.Context, store.ChatEventData) (int64, error) {
	return 0, errors.New("disk full")
}

func (failingRepo) QueryChat(context.Context, string, store.QueryOpts) ([]store.ChatEvent, error) {
	return nil, errors.New("disk full")
}

func (failingRepo) AppendMood(context.Context, store.MoodEntryData) (int64, error) {
	return 0, errors.New("disk full")
}

func (failingRepo) QueryMood(context.Context, store.QueryOpts) ([]store.MoodEntry, error) {
	return nil, errors.New("disk full")
}

func TestSession_SaveFailuresDoNotBlock(t *testing.T) {
	s := NewSession(Scripted{}, failingRepo{}, failingRepo{}, nil)
	reply, err := s.Send(context.Background(), "hello")
	require.NoError(t, err)
	assert.NotEmpty(t, reply.Text)
	assert.Len(t, s.History(), 2)
}

func TestRecentUserText(t *testing.T) {
	var history []Turn
	for _, m := range []string{"a", "b", "c"} {
		history = append(history, Turn{Role: RoleUser, Content: m}, Turn{Role: RoleAssistant, Content: "x"})
	}
	assert.Equal(t, "c\nb", recentUserText(history, 2))
}
