package companion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fadi/mendly/internal/llm"
)

// ResponderLLM names the model-backed responder.
const ResponderLLM = "llm"

// ErrEmptyReply is returned when the model produced no reply text.
var ErrEmptyReply = errors.New("companion: empty reply")

// LLMConfig holds tuning parameters for the model-backed responder.
type LLMConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultLLMConfig returns sensible defaults.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		MaxTokens:   512,
		Temperature: 0.7,
	}
}

const systemPrompt = `You are Mendly, a warm and supportive wellness companion in a terminal app.
Listen without judgment, reflect what the user shares, and offer one small,
practical next step when it helps. Keep replies under 120 words. You are not
a therapist and never diagnose. If the user mentions self-harm or suicide,
encourage them to contact a local crisis line or emergency services now.

Also estimate the user's current mood from the conversation on a 0-10 scale
(0 very low, 5 neutral, 10 very positive).`

var replySchema = &llm.Schema{
	Name:        "companion-reply",
	Description: "A supportive chat reply and a mood estimate for the user",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply": map[string]any{
				"type":        "string",
				"description": "The message to show the user",
			},
			"mood_score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     10,
				"description": "Estimated mood of the user, 0 to 10",
			},
		},
		"required":             []any{"reply", "mood_score"},
		"additionalProperties": false,
	},
}

type replyOutput struct {
	Reply     string `json:"reply"`
	MoodScore int    `json:"mood_score"`
}

// LLM is a Responder backed by a language model. Provider failures fall
// back to the scripted responder so the conversation never stalls.
type LLM struct {
	provider llm.Provider
	fallback Responder
	cfg      LLMConfig
	log      *zap.Logger
}

// NewLLM creates a model-backed responder.
func NewLLM(provider llm.Provider, cfg LLMConfig, log *zap.Logger) *LLM {
	if log == nil {
		log = zap.NewNop()
	}
	return &LLM{provider: provider, fallback: Scripted{}, cfg: cfg, log: log}
}

// Reply asks the model for a reply, or falls back on any failure.
func (r *LLM) Reply(ctx context.Context, message string, history []Turn) (Reply, error) {
	out, err := r.generate(ctx, message, history)
	if err != nil {
		if ctx.Err() != nil {
			return Reply{}, ctx.Err()
		}
		r.log.Warn("companion model unavailable, using scripted reply", zap.Error(err))
		return r.fallback.Reply(ctx, message, history)
	}
	return Reply{Text: out.Reply, MoodScore: out.MoodScore, Responder: ResponderLLM}, nil
}

func (r *LLM) generate(ctx context.Context, message string, history []Turn) (*replyOutput, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeCompanion)

	bounded := Bound(history)
	msgs := make([]llm.Message, 0, len(bounded)+1)
	for _, t := range bounded {
		role := llm.RoleUser
		if t.Role == RoleAssistant {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Content})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: message})

	resp, err := r.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    msgs,
		Schema:      replySchema,
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate reply: %w", err)
	}

	var out replyOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse reply: %w", err)
	}
	out.Reply = strings.TrimSpace(out.Reply)
	if out.Reply == "" {
		return nil, ErrEmptyReply
	}
	if out.MoodScore < 0 || out.MoodScore > 10 {
		out.MoodScore = -1
	}
	return &out, nil
}
