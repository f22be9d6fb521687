// Package companion implements the supportive chat companion.
package companion

import "context"

// MaxHistory is the number of prior turns sent with each message.
const MaxHistory = 30

// moodWindow is the number of recent user messages used to estimate mood.
const moodWindow = 10

// Role identifies the author of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a conversation.
type Turn struct {
	Role    Role
	Content string
}

// Reply is the companion's answer to one message.
type Reply struct {
	Text string

	// MoodScore is the responder's estimate of the user's mood on a 0..10
	// scale, or -1 when it has none.
	MoodScore int

	// Responder names the implementation that produced the reply.
	Responder string
}

// Responder produces a reply to a message given the prior conversation.
type Responder interface {
	Reply(ctx context.Context, message string, history []Turn) (Reply, error)
}

// Bound returns at most the last MaxHistory turns.
func Bound(history []Turn) []Turn {
	if len(history) <= MaxHistory {
		return history
	}
	return history[len(history)-MaxHistory:]
}

func lastAssistant(history []Turn) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == RoleAssistant {
			return history[i].Content
		}
	}
	return ""
}
