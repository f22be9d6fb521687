package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Event is the header shared by every stored event.
type Event struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// Mood entry sources.
const (
	SourceCheckin = "checkin"
	SourceChat    = "chat"
)

// MoodEntryData is one mood observation, from a check-in or a chat turn.
type MoodEntryData struct {
	Score      int
	Label      string
	Note       string
	Source     string
	CapturedAt time.Time // zero means now
}

// MoodEntry is a stored mood observation.
type MoodEntry struct {
	Event
	MoodEntryData
}

// MoodRepo stores mood entries.
type MoodRepo interface {
	AppendMood(ctx context.Context, data MoodEntryData) (int64, error)
	QueryMood(ctx context.Context, opts QueryOpts) ([]MoodEntry, error)
}

// ScreeningEventData is a scored questionnaire.
type ScreeningEventData struct {
	Kind         string
	Answers      []int
	Total        int
	Severity     string
	SelfHarmRisk bool
	NeedsSupport bool
}

// ScreeningEvent is a stored questionnaire result.
type ScreeningEvent struct {
	Event
	ScreeningEventData
}

// ScreeningRepo stores questionnaire results.
type ScreeningRepo interface {
	AppendScreening(ctx context.Context, data ScreeningEventData) (int64, error)
	QueryScreenings(ctx context.Context, opts QueryOpts) ([]ScreeningEvent, error)

	// LatestScreening returns the newest result of the given kind, or
	// nil if there is none. An empty kind matches any questionnaire.
	LatestScreening(ctx context.Context, kind string) (*ScreeningEvent, error)
}

// BreathingEventData records one practice session, completed or abandoned.
type BreathingEventData struct {
	SessionID        string
	ProgramID        string
	CyclesCompleted  int
	TotalCycles      int
	SecondsPracticed int
	Completed        bool
}

// BreathingEvent is a stored practice session.
type BreathingEvent struct {
	Event
	BreathingEventData
}

// BreathingRepo stores practice sessions.
type BreathingRepo interface {
	AppendBreathing(ctx context.Context, data BreathingEventData) (int64, error)
	QueryBreathing(ctx context.Context, opts QueryOpts) ([]BreathingEvent, error)
}

// Chat roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatEventData is one chat turn.
type ChatEventData struct {
	SessionID string
	Role      string
	Content   string
	Responder string
}

// ChatEvent is a stored chat turn.
type ChatEvent struct {
	Event
	ChatEventData
}

// ChatRepo stores chat transcripts.
type ChatRepo interface {
	AppendChat(ctx context.Context, data ChatEventData) (int64, error)

	// QueryChat returns turns of one session, oldest first. An empty
	// session matches every session.
	QueryChat(ctx context.Context, sessionID string, opts QueryOpts) ([]ChatEvent, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request.
type LLMRequestEvent struct {
	Event
	LLMRequestEventData
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns the event with the given id, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
