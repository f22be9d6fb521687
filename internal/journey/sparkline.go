package journey

import "github.com/fadi/mendly/internal/mood"

var bars = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws one character per day, scaled over the 0..10 score
// range. Days without entries are drawn as a dot.
func Sparkline(series []mood.DaySummary) string {
	out := make([]rune, 0, len(series))
	for _, d := range series {
		if d.Count == 0 {
			out = append(out, '·')
			continue
		}
		i := int(d.Avg/mood.MaxScore*float64(len(bars)-1) + 0.5)
		if i < 0 {
			i = 0
		}
		if i >= len(bars) {
			i = len(bars) - 1
		}
		out = append(out, bars[i])
	}
	return string(out)
}
