package llm

import "context"

// Purposes recorded on LLM events.
const (
	PurposeCompanion = "companion"
	PurposeUnknown   = "unknown"
)

type purposeKey struct{}

// WithPurpose tags requests made with ctx so events can be grouped by
// feature in `mendly llm stats`.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose tag on ctx, or PurposeUnknown.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return PurposeUnknown
}
