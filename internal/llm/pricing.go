package llm

// ModelCost holds per-million-token pricing for a model, in USD.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost calculates the total USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns the pricing for a model, or nil if unknown. Both the
// resolved model IDs recorded on events and the friendly names accepted in
// config are recognised.
func LookupCost(model string) *ModelCost {
	for _, m := range []map[string]string{anthropicModels, openaiModels, geminiModels} {
		if id, ok := m[model]; ok {
			model = id
			break
		}
	}
	if c, ok := modelCosts[model]; ok {
		return &c
	}
	return nil
}

// modelCosts prices the models the companion can be configured with.
// Source: provider price pages, 2026-02.
var modelCosts = map[string]ModelCost{
	"claude-haiku-4-5-20251001": {1, 5},
	"claude-sonnet-4-20250514":  {3, 15},

	"gpt-4o":      {2.5, 10},
	"gpt-4o-mini": {0.15, 0.6},

	"gemini-2.0-flash": {0.1, 0.4},
	"gemini-2.5-pro":   {1.25, 10},

	// OpenRouter's experimental Gemini route is free.
	"google/gemini-2.0-flash-exp": {0, 0},

	"mock": {0, 0},
}
