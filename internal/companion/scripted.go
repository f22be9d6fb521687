package companion

import (
	"context"
	"strings"
)

// ResponderScripted names the rule-based responder.
const ResponderScripted = "scripted"

// AltAngle is appended when a reply would repeat the previous one verbatim.
const AltAngle = "If you'd like, we can try a different angle: what outcome would feel 10% better?"

type rule struct {
	keywords []string
	text     string
}

func (r rule) matches(lower string) bool {
	for _, k := range r.keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

var empathyRules = []rule{
	{[]string{"sad", "down", "depressed", "low", "lonely"},
		"I'm really sorry you're feeling low. It's okay to have days like this. Do you want to share what made today feel heavy?"},
	{[]string{"anxious", "anxiety", "worried", "nervous", "stressed", "overwhelmed"},
		"Anxiety and stress can feel intense. Let's slow things down for a moment. What thought or situation is most in front of you right now?"},
	{[]string{"angry", "mad", "frustrated", "furious"},
		"It sounds like you're really frustrated or angry. Those feelings are valid. What happened just before the anger showed up?"},
	{[]string{"tired", "exhausted", "burnt out", "burned out", "fatigued"},
		"You sound drained. Fatigue can make everything feel harder. Is it mental load, lack of sleep, or something specific today?"},
	{[]string{"sick", "ill", "fever", "pain", "hurts"},
		"Not feeling well is rough. How are your symptoms right now, and do you have support if you need it?"},
	{[]string{"confused", "lost", "stuck"},
		"Feeling stuck or confused is normal when things are complex. Tell me the goal in one sentence and we'll map a next step."},
	{[]string{"bored", "meh", "nothing to do"},
		"Boredom can hide behind low energy. What's one tiny, doable activity you wouldn't hate for 10 minutes?"},
	{[]string{"proud", "grateful", "happy", "good", "great", "excited"},
		"I love hearing that. What exactly made you feel this way? Let's highlight it so you can revisit it later."},
	{[]string{"thank"},
		"You're welcome, I'm here anytime. Is there anything else you want to explore right now?"},
	{[]string{"help", "advice", "tips", "tip"},
		"I'll do my best to help. Can you describe the situation in a few bullet points so we can get specific?"},
}

const defaultEmpathy = "Thank you for sharing. I'm here to listen and support you without judgment. What feels most important to talk about next?"

var tipRules = []rule{
	{[]string{"angry", "furious", "mad", "frustrated"},
		"Try a 90-second reset: slow inhale 4s, hold 4s, long exhale 6-8s. Shake out the shoulders."},
	{[]string{"anxious", "anxiety", "worried", "panic", "stressed", "overwhelmed"},
		"Grounding tip: name 5 things you can see, 4 you can feel, 3 you can hear, 2 you can smell, 1 you can taste."},
	{[]string{"sad", "down", "unhappy", "low", "lonely"},
		"Tiny lift: step outside for 2 minutes of fresh air or light, then message someone you trust one sentence."},
	{[]string{"tired", "exhausted", "burnt out", "burned out", "fatigued"},
		"Micro-recharge: 20-minute break with phone away, drink water, blink slowly 10 times."},
	{[]string{"sick", "ill", "fever", "pain", "hurts"},
		"Be gentle today. Hydrate, rest if you can, and consider a quick check-in with a clinician if symptoms persist."},
	{[]string{"bored", "meh"},
		"Pick a 10-minute task with a clear finish, then reward yourself. Momentum beats motivation."},
	{[]string{"confused", "lost"},
		"Write 3 bullet points: what you know, what you don't, and one next step."},
	{[]string{"proud", "grateful", "happy", "excited", "great", "good"},
		"Savor this! Take a breath and note one specific detail you appreciate right now."},
}

const defaultTip = "Small steps count. Pick one doable action for the next 10 minutes, then come back and we'll reflect."

var moodRules = []struct {
	rule
	score int
}{
	{rule{keywords: []string{"very happy", "amazing", "fantastic", "wonderful", "ecstatic"}}, 9},
	{rule{keywords: []string{"happy", "good", "great", "excited", "grateful", "proud"}}, 7},
	{rule{keywords: []string{"depressed", "terrible", "awful", "hopeless", "miserable"}}, 1},
	{rule{keywords: []string{"angry", "furious", "mad", "rage", "frustrated"}}, 2},
	{rule{keywords: []string{"anxious", "anxiety", "worried", "panic", "stressed", "overwhelmed"}}, 4},
	{rule{keywords: []string{"sad", "down", "unhappy", "low", "lonely"}}, 3},
	{rule{keywords: []string{"tired", "exhausted", "burnt out", "burned out", "fatigued"}}, 4},
	{rule{keywords: []string{"sick", "ill", "fever", "pain", "hurts"}}, 3},
	{rule{keywords: []string{"bored", "meh", "nothing to do"}}, 5},
	{rule{keywords: []string{"confused", "lost", "don't know"}}, 4},
}

func pick(rules []rule, lower, fallback string) string {
	for _, r := range rules {
		if r.matches(lower) {
			return r.text
		}
	}
	return fallback
}

func normalize(s string) string {
	s = strings.ReplaceAll(s, "’", "'")
	return strings.ToLower(strings.TrimSpace(s))
}

// Tip returns a short, actionable suggestion tailored to the text.
func Tip(text string) string {
	return pick(tipRules, normalize(text), defaultTip)
}

// EstimateMood scores the mood expressed in chat text on a 0..10 scale.
// Text with no recognised words scores 5.
func EstimateMood(text string) int {
	lower := normalize(text)
	for _, r := range moodRules {
		if r.matches(lower) {
			return r.score
		}
	}
	return 5
}

// Scripted is a rule-based Responder that needs no network access.
type Scripted struct{}

// Reply answers with an empathetic line chosen by keyword and a tip.
func (Scripted) Reply(_ context.Context, message string, history []Turn) (Reply, error) {
	lower := normalize(message)
	text := pick(empathyRules, lower, defaultEmpathy) + "\n\n💡 Tip: " + Tip(message)

	if prev := lastAssistant(Bound(history)); prev != "" && strings.TrimSpace(prev) == strings.TrimSpace(text) {
		text += "\n\n" + AltAngle
	}
	return Reply{Text: text, MoodScore: -1, Responder: ResponderScripted}, nil
}
