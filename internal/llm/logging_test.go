package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fadi/mendly/internal/store"
)

func TestLoggingProvider_RecordsEvents(t *testing.T) {
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	core, logs := observer.New(zap.DebugLevel)
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"reply":"hi","mood_score":6}`),
			Usage:   Usage{InputTokens: 12, OutputTokens: 4},
		},
		MockResponse{Err: &ErrRateLimit{}},
	)
	p := WithLogging(mock, ProviderMock, st.EventRepo(), zap.New(core))

	ctx := WithPurpose(context.Background(), "companion")
	req := Request{
		System:   "be kind",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
		Schema:   &Schema{Name: "companion-reply", Definition: map[string]any{"type": "object"}},
	}

	_, err = p.Generate(ctx, req)
	require.NoError(t, err)
	_, err = p.Generate(ctx, req)
	require.Error(t, err)

	events, err := st.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	failed, ok := events[0], events[1]
	assert.False(t, failed.Success)
	assert.Contains(t, failed.ErrorMessage, "rate limited")

	assert.True(t, ok.Success)
	assert.Equal(t, "companion", ok.Purpose)
	assert.Equal(t, ProviderMock, ok.Provider)
	assert.Equal(t, "mock", ok.Model)
	assert.Equal(t, 12, ok.InputTokens)
	assert.Equal(t, `{"reply":"hi","mood_score":6}`, ok.ResponseBody)
	assert.True(t, strings.HasPrefix(ok.RequestBody, "[system]\nbe kind"))
	assert.Contains(t, ok.RequestBody, "[user]\nhello")
	assert.Contains(t, ok.RequestBody, "[schema: companion-reply]")

	assert.Equal(t, 1, logs.FilterMessage("llm request").Len())
	assert.Equal(t, 1, logs.FilterMessage("llm request failed").Len())
}

func TestLoggingProvider_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, ProviderMock, nil, nil)
	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestTimeoutProvider(t *testing.T) {
	p := WithTimeout(slowProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "slow", p.ModelID())

	assert.Equal(t, Provider(slowProvider{}), WithTimeout(slowProvider{}, 0))
}
