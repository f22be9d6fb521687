package companion

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fadi/mendly/internal/mood"
	"github.com/fadi/mendly/internal/store"
)

// Session is one chat conversation. It keeps the transcript in memory,
// persists each turn and records a mood estimate for every user message.
type Session struct {
	id        string
	responder Responder
	chat      store.ChatRepo
	mood      store.MoodRepo
	log       *zap.Logger

	mu      sync.Mutex
	history []Turn
}

// NewSession starts a conversation. Nil repos disable persistence.
func NewSession(responder Responder, chat store.ChatRepo, moods store.MoodRepo, log *zap.Logger) *Session {
	if responder == nil {
		responder = Scripted{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		id:        uuid.NewString(),
		responder: responder,
		chat:      chat,
		mood:      moods,
		log:       log,
	}
}

// ID returns the session identifier stored with every turn.
func (s *Session) ID() string { return s.id }

// History returns a copy of the transcript so far.
func (s *Session) History() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Turn(nil), s.history...)
}

// Send delivers a user message and returns the companion's reply.
// Persistence failures are logged and never returned.
func (s *Session) Send(ctx context.Context, message string) (Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{}, nil
	}

	s.mu.Lock()
	history := append([]Turn(nil), Bound(s.history)...)
	s.mu.Unlock()

	reply, err := s.responder.Reply(ctx, message, history)
	if err != nil {
		return Reply{}, err
	}

	s.mu.Lock()
	s.history = append(s.history,
		Turn{Role: RoleUser, Content: message},
		Turn{Role: RoleAssistant, Content: reply.Text},
	)
	recent := recentUserText(s.history, moodWindow)
	s.mu.Unlock()

	s.save(ctx, message, reply, recent)
	return reply, nil
}

func (s *Session) save(ctx context.Context, message string, reply Reply, recent string) {
	if s.chat != nil {
		if _, err := s.chat.AppendChat(ctx, store.ChatEventData{
			SessionID: s.id, Role: store.RoleUser, Content: message,
		}); err != nil {
			s.log.Warn("save chat turn", zap.String("role", store.RoleUser), zap.Error(err))
		}
		if _, err := s.chat.AppendChat(ctx, store.ChatEventData{
			SessionID: s.id, Role: store.RoleAssistant, Content: reply.Text, Responder: reply.Responder,
		}); err != nil {
			s.log.Warn("save chat turn", zap.String("role", store.RoleAssistant), zap.Error(err))
		}
	}

	if s.mood == nil {
		return
	}
	score := reply.MoodScore
	if score < mood.MinScore || score > mood.MaxScore {
		score = EstimateMood(recent)
	}
	if _, err := s.mood.AppendMood(ctx, store.MoodEntryData{
		Score:  score,
		Label:  mood.ScoreLabel(score),
		Note:   truncate(message, 280),
		Source: store.SourceChat,
	}); err != nil {
		s.log.Warn("save chat mood", zap.Error(err))
	}
}

func recentUserText(history []Turn, n int) string {
	var parts []string
	for i := len(history) - 1; i >= 0 && len(parts) < n; i-- {
		if history[i].Role == RoleUser {
			parts = append(parts, history[i].Content)
		}
	}
	// newest first, so the latest message wins keyword matching
	return strings.Join(parts, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
